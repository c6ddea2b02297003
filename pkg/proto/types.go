package proto

// MessagePayload is implemented by every concrete message body. The
// command id is a property of the type, not a separate header field: the
// wire's leading u16 and CommandID() always agree on encode, and decode
// dispatches purely on the wire value.
type MessagePayload interface {
	CommandID() CommandID
}

// Message pairs the wire command id actually read with the decoded body,
// since decode does not re-derive the id from the body (see
// StudentInteractiveData, whose declared outer id and inner id may
// legitimately differ).
type Message struct {
	Command CommandID
	Body    MessagePayload
}

type GameStatus struct {
	GameType            GameType
	GameProgress        GameProgress
	StageRemainingTime  uint16
	SyncTimestamp       uint64
}

func (GameStatus) CommandID() CommandID { return CmdGameStatus }

func decodeGameStatus(r *bitReader) (GameStatus, error) {
	var m GameStatus
	b, err := r.readBits(4)
	if err != nil {
		return m, err
	}
	m.GameType = GameType(b)
	b, err = r.readBits(4)
	if err != nil {
		return m, err
	}
	m.GameProgress = GameProgress(b)
	if m.StageRemainingTime, err = r.readU16(); err != nil {
		return m, err
	}
	if m.SyncTimestamp, err = r.readU64(); err != nil {
		return m, err
	}
	return m, nil
}

func encodeGameStatus(w *bitWriter, m GameStatus) {
	w.writeBits(uint32(m.GameType), 4)
	w.writeBits(uint32(m.GameProgress), 4)
	w.writeU16(m.StageRemainingTime)
	w.writeU64(m.SyncTimestamp)
}

type GameResult struct {
	Winner Winner
}

func (GameResult) CommandID() CommandID { return CmdGameResult }

func decodeGameResult(r *bitReader) (GameResult, error) {
	v, err := r.readU8()
	return GameResult{Winner: Winner(v)}, err
}

func encodeGameResult(w *bitWriter, m GameResult) {
	w.writeU8(uint8(m.Winner))
}

// TeamHP is one side's per-robot and structure hit points.
type TeamHP struct {
	Robot1   uint16
	Robot2   uint16
	Robot3   uint16
	Robot4   uint16
	Robot5   uint16
	Robot7   uint16
	Outpost  uint16
	Base     uint16
}

func decodeTeamHP(r *bitReader) (TeamHP, error) {
	var t TeamHP
	fields := []*uint16{&t.Robot1, &t.Robot2, &t.Robot3, &t.Robot4, &t.Robot5, &t.Robot7, &t.Outpost, &t.Base}
	for _, f := range fields {
		v, err := r.readU16()
		if err != nil {
			return t, err
		}
		*f = v
	}
	return t, nil
}

func encodeTeamHP(w *bitWriter, t TeamHP) {
	for _, v := range []uint16{t.Robot1, t.Robot2, t.Robot3, t.Robot4, t.Robot5, t.Robot7, t.Outpost, t.Base} {
		w.writeU16(v)
	}
}

type GameRobotHP struct {
	Red  TeamHP
	Blue TeamHP
}

func (GameRobotHP) CommandID() CommandID { return CmdGameRobotHP }

func decodeGameRobotHP(r *bitReader) (GameRobotHP, error) {
	var m GameRobotHP
	var err error
	if m.Red, err = decodeTeamHP(r); err != nil {
		return m, err
	}
	if m.Blue, err = decodeTeamHP(r); err != nil {
		return m, err
	}
	return m, nil
}

func encodeGameRobotHP(w *bitWriter, m GameRobotHP) {
	encodeTeamHP(w, m.Red)
	encodeTeamHP(w, m.Blue)
}

// EventData is an 11-flag bitmap packed into a 32-bit field (21 trailing
// padding bits).
type EventData struct {
	SupplierZoneOccupied     bool
	SupplierRefillOccupied   bool
	PowerRuneActivated       bool
	SmallPowerRuneHit        bool
	BigPowerRuneHit          bool
	RingHighlandOccupied     bool
	TrapezoidHighlandOccupied bool
	BaseShielded             bool
	OutpostAlive             bool
	SentryAlive              bool
	CenterGainOccupied       bool
}

func (EventData) CommandID() CommandID { return CmdEventData }

func decodeEventData(r *bitReader) (EventData, error) {
	var m EventData
	flags := []*bool{
		&m.SupplierZoneOccupied, &m.SupplierRefillOccupied, &m.PowerRuneActivated,
		&m.SmallPowerRuneHit, &m.BigPowerRuneHit, &m.RingHighlandOccupied,
		&m.TrapezoidHighlandOccupied, &m.BaseShielded, &m.OutpostAlive,
		&m.SentryAlive, &m.CenterGainOccupied,
	}
	for _, f := range flags {
		v, err := r.readBool()
		if err != nil {
			return m, err
		}
		*f = v
	}
	if err := r.skipBits(21); err != nil {
		return m, err
	}
	return m, nil
}

func encodeEventData(w *bitWriter, m EventData) {
	for _, v := range []bool{
		m.SupplierZoneOccupied, m.SupplierRefillOccupied, m.PowerRuneActivated,
		m.SmallPowerRuneHit, m.BigPowerRuneHit, m.RingHighlandOccupied,
		m.TrapezoidHighlandOccupied, m.BaseShielded, m.OutpostAlive,
		m.SentryAlive, m.CenterGainOccupied,
	} {
		w.writeBool(v)
	}
	w.padBits(21)
}

type SupplyProjectileAction struct {
	SupplierID      ProjectileSupplier
	ReloadingRobot  ProjectileReloadingRobot
	OutletStatus    ProjectileOutletStatus
	SuppliedNumber  SuppliedProjectileNumber
}

func (SupplyProjectileAction) CommandID() CommandID { return CmdSupplyProjectileAction }

func decodeSupplyProjectileAction(r *bitReader) (SupplyProjectileAction, error) {
	var m SupplyProjectileAction
	a, err := r.readU8()
	if err != nil {
		return m, err
	}
	m.SupplierID = ProjectileSupplier(a)
	b, err := r.readU8()
	if err != nil {
		return m, err
	}
	m.ReloadingRobot = b
	c, err := r.readU8()
	if err != nil {
		return m, err
	}
	m.OutletStatus = ProjectileOutletStatus(c)
	d, err := r.readU8()
	if err != nil {
		return m, err
	}
	m.SuppliedNumber = d
	return m, nil
}

func encodeSupplyProjectileAction(w *bitWriter, m SupplyProjectileAction) {
	w.writeU8(uint8(m.SupplierID))
	w.writeU8(m.ReloadingRobot)
	w.writeU8(uint8(m.OutletStatus))
	w.writeU8(m.SuppliedNumber)
}

// RefereeWarning's payload is a fixed 2 bytes regardless of level: yellow
// and red cards carry a foul robot id in the second byte, forfeiture a
// padding byte. The codec writes and reads that byte verbatim from
// FoulRobotID for every level; it does not zero it for forfeiture.
type RefereeWarning struct {
	Level       RefereeWarningLevel
	FoulRobotID uint8
}

func (RefereeWarning) CommandID() CommandID { return CmdRefereeWarning }

func decodeRefereeWarning(r *bitReader) (RefereeWarning, error) {
	var m RefereeWarning
	lvl, err := r.readU8()
	if err != nil {
		return m, err
	}
	m.Level = RefereeWarningLevel(lvl)
	if m.Level < RefereeWarningYellowCard || m.Level > RefereeWarningForfeiture {
		return m, &ErrUnknownEnumValue{Context: "RefereeWarningLevel", Value: uint16(lvl)}
	}
	b, err := r.readU8()
	if err != nil {
		return m, err
	}
	m.FoulRobotID = b
	return m, nil
}

func encodeRefereeWarning(w *bitWriter, m RefereeWarning) {
	w.writeU8(uint8(m.Level))
	w.writeU8(m.FoulRobotID)
}

type DartRemainingTime struct {
	Seconds uint8
}

func (DartRemainingTime) CommandID() CommandID { return CmdDartRemainingTime }

func decodeDartRemainingTime(r *bitReader) (DartRemainingTime, error) {
	v, err := r.readU8()
	return DartRemainingTime{Seconds: v}, err
}

func encodeDartRemainingTime(w *bitWriter, m DartRemainingTime) {
	w.writeU8(m.Seconds)
}

type GameRobotStatus struct {
	RobotID              uint8
	RobotLevel           uint8
	CurrentHP            uint16
	MaxHP                uint16
	ShooterCoolingRate   [3]uint16
	ShooterHeatLimit     [3]uint16
	ShooterSpeedLimit    [3]uint16
	ChassisPowerLimit    uint16
	MainsGimbalOutput    bool
	MainsChassisOutput   bool
	MainsShooterOutput   bool
}

func (GameRobotStatus) CommandID() CommandID { return CmdGameRobotStatus }

func decodeGameRobotStatus(r *bitReader) (GameRobotStatus, error) {
	var m GameRobotStatus
	var err error
	if m.RobotID, err = r.readU8(); err != nil {
		return m, err
	}
	if m.RobotLevel, err = r.readU8(); err != nil {
		return m, err
	}
	if m.CurrentHP, err = r.readU16(); err != nil {
		return m, err
	}
	if m.MaxHP, err = r.readU16(); err != nil {
		return m, err
	}
	for i := range m.ShooterCoolingRate {
		if m.ShooterCoolingRate[i], err = r.readU16(); err != nil {
			return m, err
		}
	}
	for i := range m.ShooterHeatLimit {
		if m.ShooterHeatLimit[i], err = r.readU16(); err != nil {
			return m, err
		}
	}
	for i := range m.ShooterSpeedLimit {
		if m.ShooterSpeedLimit[i], err = r.readU16(); err != nil {
			return m, err
		}
	}
	if m.ChassisPowerLimit, err = r.readU16(); err != nil {
		return m, err
	}
	if m.MainsGimbalOutput, err = r.readBool(); err != nil {
		return m, err
	}
	if m.MainsChassisOutput, err = r.readBool(); err != nil {
		return m, err
	}
	if m.MainsShooterOutput, err = r.readBool(); err != nil {
		return m, err
	}
	if err = r.skipBits(5); err != nil {
		return m, err
	}
	return m, nil
}

func encodeGameRobotStatus(w *bitWriter, m GameRobotStatus) {
	w.writeU8(m.RobotID)
	w.writeU8(m.RobotLevel)
	w.writeU16(m.CurrentHP)
	w.writeU16(m.MaxHP)
	for _, v := range m.ShooterCoolingRate {
		w.writeU16(v)
	}
	for _, v := range m.ShooterHeatLimit {
		w.writeU16(v)
	}
	for _, v := range m.ShooterSpeedLimit {
		w.writeU16(v)
	}
	w.writeU16(m.ChassisPowerLimit)
	w.writeBool(m.MainsGimbalOutput)
	w.writeBool(m.MainsChassisOutput)
	w.writeBool(m.MainsShooterOutput)
	w.padBits(5)
}

type PowerHeatData struct {
	ChassisVolt        float32
	ChassisCurrent     float32
	ChassisPower       float32
	ChassisPowerBuffer uint16
	ShooterBarrelHeat  [3]uint16
}

func (PowerHeatData) CommandID() CommandID { return CmdPowerHeatData }

func decodePowerHeatData(r *bitReader) (PowerHeatData, error) {
	var m PowerHeatData
	var err error
	if m.ChassisVolt, err = r.readF32(); err != nil {
		return m, err
	}
	if m.ChassisCurrent, err = r.readF32(); err != nil {
		return m, err
	}
	if m.ChassisPower, err = r.readF32(); err != nil {
		return m, err
	}
	if m.ChassisPowerBuffer, err = r.readU16(); err != nil {
		return m, err
	}
	for i := range m.ShooterBarrelHeat {
		if m.ShooterBarrelHeat[i], err = r.readU16(); err != nil {
			return m, err
		}
	}
	return m, nil
}

func encodePowerHeatData(w *bitWriter, m PowerHeatData) {
	w.writeF32(m.ChassisVolt)
	w.writeF32(m.ChassisCurrent)
	w.writeF32(m.ChassisPower)
	w.writeU16(m.ChassisPowerBuffer)
	for _, v := range m.ShooterBarrelHeat {
		w.writeU16(v)
	}
}

type GameRobotPos struct {
	X, Y, Z, Yaw float32
}

func (GameRobotPos) CommandID() CommandID { return CmdGameRobotPos }

func decodeGameRobotPos(r *bitReader) (GameRobotPos, error) {
	var m GameRobotPos
	var err error
	if m.X, err = r.readF32(); err != nil {
		return m, err
	}
	if m.Y, err = r.readF32(); err != nil {
		return m, err
	}
	if m.Z, err = r.readF32(); err != nil {
		return m, err
	}
	if m.Yaw, err = r.readF32(); err != nil {
		return m, err
	}
	return m, nil
}

func encodeGameRobotPos(w *bitWriter, m GameRobotPos) {
	w.writeF32(m.X)
	w.writeF32(m.Y)
	w.writeF32(m.Z)
	w.writeF32(m.Yaw)
}

type PowerRuneBuff struct {
	ChassisHighCurrentEnabled bool
	ShooterHighHeatEnabled    bool
	MainsHighVoltEnabled      bool
	SoftKillEnabled           bool
}

func (PowerRuneBuff) CommandID() CommandID { return CmdPowerRuneBuff }

func decodePowerRuneBuff(r *bitReader) (PowerRuneBuff, error) {
	var m PowerRuneBuff
	flags := []*bool{&m.ChassisHighCurrentEnabled, &m.ShooterHighHeatEnabled, &m.MainsHighVoltEnabled, &m.SoftKillEnabled}
	for _, f := range flags {
		v, err := r.readBool()
		if err != nil {
			return m, err
		}
		*f = v
	}
	if err := r.skipBits(4); err != nil {
		return m, err
	}
	return m, nil
}

func encodePowerRuneBuff(w *bitWriter, m PowerRuneBuff) {
	for _, v := range []bool{m.ChassisHighCurrentEnabled, m.ShooterHighHeatEnabled, m.MainsHighVoltEnabled, m.SoftKillEnabled} {
		w.writeBool(v)
	}
	w.padBits(4)
}

type AerialRobotEnergy struct {
	AttackTimeRemaining uint8
}

func (AerialRobotEnergy) CommandID() CommandID { return CmdAerialRobotEnergy }

func decodeAerialRobotEnergy(r *bitReader) (AerialRobotEnergy, error) {
	v, err := r.readU8()
	return AerialRobotEnergy{AttackTimeRemaining: v}, err
}

func encodeAerialRobotEnergy(w *bitWriter, m AerialRobotEnergy) {
	w.writeU8(m.AttackTimeRemaining)
}

type RobotHurt struct {
	// ArmorOrModule is the low nibble (armor id or module index); Reason
	// is the high nibble (damage source).
	ArmorOrModule uint8
	Reason        uint8
}

func (RobotHurt) CommandID() CommandID { return CmdRobotHurt }

func decodeRobotHurt(r *bitReader) (RobotHurt, error) {
	var m RobotHurt
	lo, err := r.readBits(4)
	if err != nil {
		return m, err
	}
	m.ArmorOrModule = uint8(lo)
	hi, err := r.readBits(4)
	if err != nil {
		return m, err
	}
	m.Reason = uint8(hi)
	return m, nil
}

func encodeRobotHurt(w *bitWriter, m RobotHurt) {
	w.writeBits(uint32(m.ArmorOrModule), 4)
	w.writeBits(uint32(m.Reason), 4)
}

// ShootData and BulletRemaining are carried as opaque fixed-length blobs;
// the protocol's internal field layout for these two is not specified
// beyond their size.
type ShootData struct {
	Raw [6]byte
}

func (ShootData) CommandID() CommandID { return CmdShootData }

func decodeShootData(r *bitReader) (ShootData, error) {
	var m ShootData
	b, err := r.readBytes(6)
	if err != nil {
		return m, err
	}
	copy(m.Raw[:], b)
	return m, nil
}

func encodeShootData(w *bitWriter, m ShootData) {
	w.writeBytes(m.Raw[:])
}

type BulletRemaining struct {
	Raw [2]byte
}

func (BulletRemaining) CommandID() CommandID { return CmdBulletRemaining }

func decodeBulletRemaining(r *bitReader) (BulletRemaining, error) {
	var m BulletRemaining
	b, err := r.readBytes(2)
	if err != nil {
		return m, err
	}
	copy(m.Raw[:], b)
	return m, nil
}

func encodeBulletRemaining(w *bitWriter, m BulletRemaining) {
	w.writeBytes(m.Raw[:])
}

// RFIDStatus is seven independent detection flags padded to 32 bits total.
type RFIDStatus struct {
	OwnBaseAura          bool
	OwnHighlandAura      bool
	EnemyHighlandAura    bool
	OwnTrapezoidAura     bool
	EnemyTrapezoidAura   bool
	OwnFortAura          bool
	OwnOutpostAura       bool
}

func (RFIDStatus) CommandID() CommandID { return CmdRFIDStatus }

func decodeRFIDStatus(r *bitReader) (RFIDStatus, error) {
	var m RFIDStatus
	flags := []*bool{
		&m.OwnBaseAura, &m.OwnHighlandAura, &m.EnemyHighlandAura,
		&m.OwnTrapezoidAura, &m.EnemyTrapezoidAura, &m.OwnFortAura, &m.OwnOutpostAura,
	}
	for _, f := range flags {
		v, err := r.readBool()
		if err != nil {
			return m, err
		}
		*f = v
	}
	if err := r.skipBits(25); err != nil {
		return m, err
	}
	return m, nil
}

func encodeRFIDStatus(w *bitWriter, m RFIDStatus) {
	for _, v := range []bool{
		m.OwnBaseAura, m.OwnHighlandAura, m.EnemyHighlandAura,
		m.OwnTrapezoidAura, m.EnemyTrapezoidAura, m.OwnFortAura, m.OwnOutpostAura,
	} {
		w.writeBool(v)
	}
	w.padBits(25)
}

type DartClientCmd struct {
	DartLaunchOpeningStatus uint8
	TargetChangeCount       uint8
	LatestLaunchCmdTime     uint16
	OperateLaunchCmdTime    uint16
}

func (DartClientCmd) CommandID() CommandID { return CmdDartClientCmd }

func decodeDartClientCmd(r *bitReader) (DartClientCmd, error) {
	var m DartClientCmd
	var err error
	if m.DartLaunchOpeningStatus, err = r.readU8(); err != nil {
		return m, err
	}
	if m.TargetChangeCount, err = r.readU8(); err != nil {
		return m, err
	}
	if m.LatestLaunchCmdTime, err = r.readU16(); err != nil {
		return m, err
	}
	if m.OperateLaunchCmdTime, err = r.readU16(); err != nil {
		return m, err
	}
	return m, nil
}

func encodeDartClientCmd(w *bitWriter, m DartClientCmd) {
	w.writeU8(m.DartLaunchOpeningStatus)
	w.writeU8(m.TargetChangeCount)
	w.writeU16(m.LatestLaunchCmdTime)
	w.writeU16(m.OperateLaunchCmdTime)
}

// GroundRobotPosition carries (x, y) for five ground robots.
type GroundRobotPosition struct {
	Hero, Engineer, Infantry3, Infantry4, Infantry5 [2]float32
}

func (GroundRobotPosition) CommandID() CommandID { return CmdGroundRobotPosition }

func decodeGroundRobotPosition(r *bitReader) (GroundRobotPosition, error) {
	var m GroundRobotPosition
	slots := []*[2]float32{&m.Hero, &m.Engineer, &m.Infantry3, &m.Infantry4, &m.Infantry5}
	for _, s := range slots {
		x, err := r.readF32()
		if err != nil {
			return m, err
		}
		y, err := r.readF32()
		if err != nil {
			return m, err
		}
		s[0], s[1] = x, y
	}
	return m, nil
}

func encodeGroundRobotPosition(w *bitWriter, m GroundRobotPosition) {
	for _, s := range [][2]float32{m.Hero, m.Engineer, m.Infantry3, m.Infantry4, m.Infantry5} {
		w.writeF32(s[0])
		w.writeF32(s[1])
	}
}

type RadarMarkData struct {
	Hero, Engineer, Infantry3, Infantry4, Infantry5, Sentry uint8
}

func (RadarMarkData) CommandID() CommandID { return CmdRadarMarkData }

func decodeRadarMarkData(r *bitReader) (RadarMarkData, error) {
	var m RadarMarkData
	fields := []*uint8{&m.Hero, &m.Engineer, &m.Infantry3, &m.Infantry4, &m.Infantry5, &m.Sentry}
	for _, f := range fields {
		v, err := r.readU8()
		if err != nil {
			return m, err
		}
		*f = v
	}
	return m, nil
}

func encodeRadarMarkData(w *bitWriter, m RadarMarkData) {
	for _, v := range []uint8{m.Hero, m.Engineer, m.Infantry3, m.Infantry4, m.Infantry5, m.Sentry} {
		w.writeU8(v)
	}
}

// CustomControllerInteractiveData is an opaque blob whose length is taken
// directly from the frame's data_length.
type CustomControllerInteractiveData struct {
	Data []byte
}

func (CustomControllerInteractiveData) CommandID() CommandID {
	return CmdCustomControllerInteractiveData
}

func decodeCustomControllerInteractiveData(r *bitReader, bodyLen int) (CustomControllerInteractiveData, error) {
	b, err := r.readBytes(bodyLen)
	return CustomControllerInteractiveData{Data: b}, err
}

func encodeCustomControllerInteractiveData(w *bitWriter, m CustomControllerInteractiveData) {
	w.writeBytes(m.Data)
}

// MapTargetKind distinguishes the two historically conflicting shapes for
// command id 0x0303: one source snapshot labels it MapCommand (f32 target
// triple), a later one MinimapTransmission (i32 target triple). The codec
// neither detects nor reads this kind: it carries the raw lanes, and the
// caller picks a reading through MapCommand's AsFloat32 or AsInt32.
type MapTargetKind uint8

const (
	MapTargetFloat32 MapTargetKind = iota
	MapTargetInt32
)

// MapCommand is command id 0x0303. TargetX/Y/Z hold the raw 32-bit lanes;
// the codec has no setting for their numeric interpretation (float or
// integer) and never converts them. AsFloat32 and AsInt32 give either view.
type MapCommand struct {
	TargetX, TargetY, TargetZ uint32
	Keyboard                  uint8
	TargetRobotID             uint16
}

func (MapCommand) CommandID() CommandID { return CmdMapCommand }

// AsFloat32 interprets the three target lanes as IEEE-754 floats.
func (m MapCommand) AsFloat32() (x, y, z float32) {
	return float32FromBits(m.TargetX), float32FromBits(m.TargetY), float32FromBits(m.TargetZ)
}

// AsInt32 interprets the three target lanes as signed 32-bit integers.
func (m MapCommand) AsInt32() (x, y, z int32) {
	return int32(m.TargetX), int32(m.TargetY), int32(m.TargetZ)
}

// NewMapCommandFloat32 builds a MapCommand from float targets.
func NewMapCommandFloat32(x, y, z float32, keyboard uint8, targetRobotID uint16) MapCommand {
	return MapCommand{
		TargetX: float32ToBits(x), TargetY: float32ToBits(y), TargetZ: float32ToBits(z),
		Keyboard: keyboard, TargetRobotID: targetRobotID,
	}
}

func decodeMapCommand(r *bitReader) (MapCommand, error) {
	var m MapCommand
	var err error
	if m.TargetX, err = r.readU32(); err != nil {
		return m, err
	}
	if m.TargetY, err = r.readU32(); err != nil {
		return m, err
	}
	if m.TargetZ, err = r.readU32(); err != nil {
		return m, err
	}
	if m.Keyboard, err = r.readU8(); err != nil {
		return m, err
	}
	if m.TargetRobotID, err = r.readU16(); err != nil {
		return m, err
	}
	return m, nil
}

func encodeMapCommand(w *bitWriter, m MapCommand) {
	w.writeU32(m.TargetX)
	w.writeU32(m.TargetY)
	w.writeU32(m.TargetZ)
	w.writeU8(m.Keyboard)
	w.writeU16(m.TargetRobotID)
}

// RemoteControl carries raw mouse/button/keyboard state.
type RemoteControl struct {
	MouseX, MouseY, MouseZ uint16
	ButtonLeft             bool
	ButtonRight            bool
	Keyboard               uint16 // 16 packed key-down flags
}

func (RemoteControl) CommandID() CommandID { return CmdRemoteControl }

func decodeRemoteControl(r *bitReader) (RemoteControl, error) {
	var m RemoteControl
	var err error
	if m.MouseX, err = r.readU16(); err != nil {
		return m, err
	}
	if m.MouseY, err = r.readU16(); err != nil {
		return m, err
	}
	if m.MouseZ, err = r.readU16(); err != nil {
		return m, err
	}
	b, err := r.readU8()
	if err != nil {
		return m, err
	}
	m.ButtonLeft = b != 0
	b, err = r.readU8()
	if err != nil {
		return m, err
	}
	m.ButtonRight = b != 0
	if m.Keyboard, err = r.readU16(); err != nil {
		return m, err
	}
	return m, nil
}

func encodeRemoteControl(w *bitWriter, m RemoteControl) {
	w.writeU16(m.MouseX)
	w.writeU16(m.MouseY)
	w.writeU16(m.MouseZ)
	if m.ButtonLeft {
		w.writeU8(1)
	} else {
		w.writeU8(0)
	}
	if m.ButtonRight {
		w.writeU8(1)
	} else {
		w.writeU8(0)
	}
	w.writeU16(m.Keyboard)
}

// MinimapReceipt is the outbound message a client sends to mark a point on
// the referee system's minimap for a given robot. Coordinates are in the
// range x ∈ [0, 28), y ∈ [0, 15), origin at the map's lower-left corner.
type MinimapReceipt struct {
	TargetRobotID uint16
	X, Y          float32
}

func (MinimapReceipt) CommandID() CommandID { return CmdMinimapReceipt }

func decodeMinimapReceipt(r *bitReader) (MinimapReceipt, error) {
	var m MinimapReceipt
	var err error
	if m.TargetRobotID, err = r.readU16(); err != nil {
		return m, err
	}
	if m.X, err = r.readF32(); err != nil {
		return m, err
	}
	if m.Y, err = r.readF32(); err != nil {
		return m, err
	}
	return m, nil
}

func encodeMinimapReceipt(w *bitWriter, m MinimapReceipt) {
	w.writeU16(m.TargetRobotID)
	w.writeF32(m.X)
	w.writeF32(m.Y)
}
