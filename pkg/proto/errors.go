package proto

import "fmt"

// ErrShortPayload is returned when a payload ends before a declared field
// can be read in full.
var ErrShortPayload = fmt.Errorf("proto: short payload")

// ErrInvalidBitfield is returned when a byte-aligned read is attempted from
// a bit cursor that is not byte-aligned (a caller or codec bug, not
// something a peer on the wire can trigger under normal operation).
var ErrInvalidBitfield = fmt.Errorf("proto: bit cursor not byte-aligned")

// ErrUnknownCommand is returned when the payload's leading command id does
// not match any known Message variant.
type ErrUnknownCommand struct {
	ID uint16
}

func (e *ErrUnknownCommand) Error() string {
	return fmt.Sprintf("proto: unknown command id 0x%04x", e.ID)
}

// ErrUnknownEnumValue is returned when a restricted-domain field (game
// type, graphic color, warning level, ...) holds a value outside its
// canonical set.
type ErrUnknownEnumValue struct {
	Context string
	Value   uint16
}

func (e *ErrUnknownEnumValue) Error() string {
	return fmt.Sprintf("proto: unknown %s value %d", e.Context, e.Value)
}

// ErrTrailingBytes is returned when a decode consumes fewer bits than the
// payload declared.
type ErrTrailingBytes struct {
	N int
}

func (e *ErrTrailingBytes) Error() string {
	return fmt.Sprintf("proto: %d trailing byte(s) after decode", e.N)
}
