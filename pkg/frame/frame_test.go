package frame

import (
	"testing"

	"github.com/librescoot/rmrefd/pkg/crc"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	body := []byte{0xAA, 0xBB, 0xCC}
	wire, err := Encode(5, 0x0305, body)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(wire) != WireLen(len(body)) {
		t.Fatalf("wire length = %d, want %d", len(wire), WireLen(len(body)))
	}

	d := NewDeframer()
	d.Feed(wire)
	f, err := d.Next()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if f == nil {
		t.Fatal("expected a frame, got nil")
	}
	if f.Seq != 5 || f.CommandID != 0x0305 || string(f.Body) != string(body) {
		t.Fatalf("frame mismatch: %+v", f)
	}
	if d.Buffered() != 0 {
		t.Fatalf("%d bytes left over after a clean decode", d.Buffered())
	}
}

func TestEncodeRejectsOversizeBody(t *testing.T) {
	body := make([]byte, MaxDataLength+1)
	if _, err := Encode(0, 0x0001, body); err == nil {
		t.Fatal("expected an error for an oversize body")
	}
}

// TestResyncAfterGarbage mirrors the concrete scenario: a false SoF with a
// bad CRC-8 is skipped one byte at a time; a valid frame following it is
// still decoded on a later call.
func TestResyncAfterGarbage(t *testing.T) {
	d := NewDeframer()
	garbage := []byte{0xDE, 0xAD, 0xA5, 0xFF, 0xFF}
	d.Feed(garbage)
	if f, err := d.Next(); f != nil || err != nil {
		t.Fatalf("expected NeedMore on garbage alone, got frame=%v err=%v", f, err)
	}

	valid, err := Encode(1, 0x0001, []byte{0x01})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	d.Feed(valid)
	f, err := d.Next()
	if err != nil {
		t.Fatalf("decode after garbage: %v", err)
	}
	if f == nil {
		t.Fatal("expected a frame after appending a valid one")
	}
	if f.CommandID != 0x0001 {
		t.Fatalf("command id = %#04x, want 0x0001", f.CommandID)
	}
}

// TestShortReadDeferral: a valid 5-byte header declaring data_length=10
// followed by 13 further bytes (18 in all, one short of data_length+9 = 19)
// must return NeedMore without consuming anything.
func TestShortReadDeferral(t *testing.T) {
	wire, err := Encode(0, 0x0001, make([]byte, 10))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	short := wire[:len(wire)-1]

	d := NewDeframer()
	d.Feed(short)
	f, err := d.Next()
	if f != nil || err != nil {
		t.Fatalf("expected NeedMore, got frame=%v err=%v", f, err)
	}
	if d.Buffered() != len(short) {
		t.Fatalf("buffered %d bytes, want %d (nothing consumed)", d.Buffered(), len(short))
	}
}

func TestDataLengthTooLargeAdvancesOneByte(t *testing.T) {
	header := []byte{SoF, 0xFF, 0x00, 0x00} // data_length = 255, invalid
	header = append(header, crc.Header8(header))
	buf := append(header, make([]byte, MinFrameLen-len(header))...)

	d := NewDeframer()
	d.Feed(buf)
	if f, err := d.Next(); f != nil || err != nil {
		t.Fatalf("expected NeedMore, got frame=%v err=%v", f, err)
	}
	if d.Buffered() != len(buf)-1 {
		t.Fatalf("buffered %d bytes, want %d after one-byte advance", d.Buffered(), len(buf)-1)
	}
}
