package proto

// GraphicAddOperation is the 3-bit operate_type field shared by every
// drawing command.
type GraphicAddOperation uint8

const (
	GraphicOpNop GraphicAddOperation = iota
	GraphicOpAdd
	GraphicOpModify
	GraphicOpDelete
)

// GraphicDeleteOperation is the operate type used by the standalone
// graphic-delete student interactive command (content id 0x0100), a
// different 3-value domain from GraphicAddOperation.
type GraphicDeleteOperation uint8

const (
	GraphicDeleteNop GraphicDeleteOperation = iota
	GraphicDeleteOne
	GraphicDeleteAll
)

// GraphicEnum is the 3-bit graphic_type field selecting one of eight shapes.
type GraphicEnum uint8

const (
	GraphicStraightLine GraphicEnum = iota
	GraphicRectangle
	GraphicCircle
	GraphicEllipse
	GraphicArc
	GraphicFloatingNumber
	GraphicInteger
	GraphicCharacter
)

// GraphicColor is the 4-bit color field. The wire carries nine distinct
// values, 0 through 8; two historical source snapshots disagreed on
// whether the last two names collide at 7 or are distinct (7, 8) — this
// client treats 0..8 as the canonical domain and rejects anything else.
type GraphicColor uint8

const (
	GraphicColorRedAndBlue GraphicColor = iota
	GraphicColorYellow
	GraphicColorGreen
	GraphicColorOrange
	GraphicColorPurplishRed
	GraphicColorPink
	GraphicColorCyan
	GraphicColorBlack
	GraphicColorWhite
)

func validGraphicColor(v uint8) bool {
	return v <= uint8(GraphicColorWhite)
}

// GraphicData is the 15-byte (120-bit) envelope shared by every drawing
// shape. The eight GraphicEnum shapes all decode into the same raw field
// set; callers interpret the fields according to GraphicType rather than
// the codec maintaining eight parallel struct layouts.
type GraphicData struct {
	Name        [3]byte
	OperateType GraphicAddOperation
	GraphicType GraphicEnum
	Layer       uint8 // 4 bits, 0..15
	Color       GraphicColor

	// Shared 82-bit shape region. Semantics depend on GraphicType; see the
	// StartPoint/EndPoint/Value accessor methods below.
	StartAngle int16 // 9 bits, signed angle in degrees
	EndAngle   int16 // 9 bits, signed angle in degrees
	Width      uint16 // 10 bits, line width
	StartX     uint16 // 11 bits
	StartY     uint16 // 11 bits
	Radius     uint16 // 10 bits
	EndX       uint16 // 11 bits
	EndY       uint16 // 11 bits
}

// StartPoint returns (StartX, StartY) as the draw origin used by every
// shape.
func (g GraphicData) StartPoint() (x, y uint16) { return g.StartX, g.StartY }

// EndPoint returns (EndX, EndY), meaningful for line/rectangle/ellipse/arc
// shapes; Integer/FloatingNumber shapes instead fold these 22 bits plus
// Radius's 10 bits into a single 32-bit Value.
func (g GraphicData) EndPoint() (x, y uint16) { return g.EndX, g.EndY }

// Value reassembles the 32-bit signed payload used by FloatingNumber and
// Integer shapes from the Radius/EndX/EndY bit range (10+11+11 = 32 bits),
// the last 32 bits of the 120-bit record (bits 88..119).
func (g GraphicData) Value() int32 {
	return int32(uint32(g.Radius) | uint32(g.EndX)<<10 | uint32(g.EndY)<<21)
}

// WithValue returns a copy of g with Radius/EndX/EndY packed from v.
func (g GraphicData) WithValue(v int32) GraphicData {
	u := uint32(v)
	g.Radius = uint16(u & 0x3FF)
	g.EndX = uint16((u >> 10) & 0x7FF)
	g.EndY = uint16((u >> 21) & 0x7FF)
	return g
}

const graphicDataBits = 120

func decodeGraphicData(r *bitReader) (GraphicData, error) {
	var g GraphicData
	if r.remainingBits() < graphicDataBits {
		return g, ErrShortPayload
	}
	name, err := r.readBytes(3)
	if err != nil {
		return g, err
	}
	copy(g.Name[:], name)

	ot, err := r.readBits(3)
	if err != nil {
		return g, err
	}
	g.OperateType = GraphicAddOperation(ot)

	gt, err := r.readBits(3)
	if err != nil {
		return g, err
	}
	g.GraphicType = GraphicEnum(gt)

	layer, err := r.readBits(4)
	if err != nil {
		return g, err
	}
	g.Layer = uint8(layer)

	color, err := r.readBits(4)
	if err != nil {
		return g, err
	}
	if !validGraphicColor(uint8(color)) {
		return g, &ErrUnknownEnumValue{Context: "GraphicColor", Value: uint16(color)}
	}
	g.Color = GraphicColor(color)

	startAngle, err := r.readBits(9)
	if err != nil {
		return g, err
	}
	g.StartAngle = signExtend(startAngle, 9)

	endAngle, err := r.readBits(9)
	if err != nil {
		return g, err
	}
	g.EndAngle = signExtend(endAngle, 9)

	width, err := r.readBits(10)
	if err != nil {
		return g, err
	}
	g.Width = uint16(width)

	startX, err := r.readBits(11)
	if err != nil {
		return g, err
	}
	g.StartX = uint16(startX)

	startY, err := r.readBits(11)
	if err != nil {
		return g, err
	}
	g.StartY = uint16(startY)

	radius, err := r.readBits(10)
	if err != nil {
		return g, err
	}
	g.Radius = uint16(radius)

	endX, err := r.readBits(11)
	if err != nil {
		return g, err
	}
	g.EndX = uint16(endX)

	endY, err := r.readBits(11)
	if err != nil {
		return g, err
	}
	g.EndY = uint16(endY)

	return g, nil
}

func encodeGraphicData(w *bitWriter, g GraphicData) {
	w.writeBytes(g.Name[:])
	w.writeBits(uint32(g.OperateType), 3)
	w.writeBits(uint32(g.GraphicType), 3)
	w.writeBits(uint32(g.Layer), 4)
	w.writeBits(uint32(g.Color), 4)
	w.writeBits(uint32(uint16(g.StartAngle))&0x1FF, 9)
	w.writeBits(uint32(uint16(g.EndAngle))&0x1FF, 9)
	w.writeBits(uint32(g.Width), 10)
	w.writeBits(uint32(g.StartX), 11)
	w.writeBits(uint32(g.StartY), 11)
	w.writeBits(uint32(g.Radius), 10)
	w.writeBits(uint32(g.EndX), 11)
	w.writeBits(uint32(g.EndY), 11)
}

// signExtend interprets the low `bits` bits of v as a two's-complement
// signed integer.
func signExtend(v uint32, bits int) int16 {
	sign := uint32(1) << uint(bits-1)
	v &= (sign << 1) - 1
	if v&sign != 0 {
		v -= sign << 1
	}
	return int16(int32(v))
}
