package proto

// GameType is the low nibble of GameStatus's first byte.
type GameType uint8

const (
	GameTypeRMUC GameType = iota + 1
	GameTypeRMUT
	GameTypeRMUA
	GameTypeRMUL3v3
	GameTypeRMUL1v1
)

// GameProgress is the high nibble of GameStatus's first byte.
type GameProgress uint8

const (
	GameProgressNotStarted GameProgress = iota
	GameProgressPreparation
	GameProgressSelfCheck
	GameProgressCountdown
	GameProgressRunning
	GameProgressSettling
)

// Winner is GameResult's sole field.
type Winner uint8

const (
	WinnerDraw Winner = iota
	WinnerRed
	WinnerBlue
)

// ProjectileSupplier identifies which of the two supply booths acted.
type ProjectileSupplier uint8

const (
	ProjectileSupplier1 ProjectileSupplier = iota + 1
	ProjectileSupplier2
)

// ProjectileReloadingRobot identifies which robot the supply action
// targets. It carries the same red/blue robot id domain as the rest of
// the protocol; use RobotID to split it into side and job.
type ProjectileReloadingRobot = uint8

// ProjectileOutletStatus.
type ProjectileOutletStatus uint8

const (
	ProjectileOutletClosed ProjectileOutletStatus = iota
	ProjectileOutletPreparing
	ProjectileOutletReleasing
)

// SuppliedProjectileNumber is a raw count; any u8 value is valid so it is
// not a restricted enum, just an alias kept for readability at call sites.
type SuppliedProjectileNumber = uint8

// RefereeWarningLevel.
type RefereeWarningLevel uint8

const (
	RefereeWarningYellowCard  RefereeWarningLevel = 1
	RefereeWarningRedCard     RefereeWarningLevel = 2
	RefereeWarningForfeiture  RefereeWarningLevel = 3
)
