// Package frame implements the referee link's transport envelope: framing
// and deframing of the SoF/length/seq/CRC-8/payload/CRC-16 wire record.
// It knows nothing about what the payload bytes mean — that is the
// proto package's job.
package frame

import (
	"encoding/binary"
	"fmt"

	"github.com/librescoot/rmrefd/pkg/crc"
)

// SoF is the start-of-frame sentinel byte.
const SoF = 0xA5

// MaxDataLength is the largest payload length the protocol allows.
const MaxDataLength = 119

// HeaderLen is the number of bytes before the payload begins (sof,
// data_length, seq, crc8).
const HeaderLen = 5

// MinFrameLen is the smallest possible complete frame: header + 2-byte
// command id + 2-byte tail CRC, with a zero-length body.
const MinFrameLen = HeaderLen + 2 + 2

// Frame is one decoded wire record. Body is the payload that follows the
// command id (so len(Body) == DataLength); CommandID is the leading u16
// of the payload, kept alongside Body rather than folded into it since
// the frame codec never interprets it.
type Frame struct {
	DataLength uint16
	Seq        uint8
	CommandID  uint16
	Body       []byte
}

// ErrDataLengthTooLarge is returned by Encode when the caller supplies a
// body longer than MaxDataLength.
var ErrDataLengthTooLarge = fmt.Errorf("frame: data_length exceeds %d", MaxDataLength)

// Encode builds the on-wire bytes for a frame: header, command id, body,
// tail CRC. seq is stamped as given; callers (the session writer) own
// sequence increment.
func Encode(seq uint8, commandID uint16, body []byte) ([]byte, error) {
	if len(body) > MaxDataLength {
		return nil, ErrDataLengthTooLarge
	}
	total := HeaderLen + 2 + len(body) + 2
	buf := make([]byte, total)
	buf[0] = SoF
	binary.LittleEndian.PutUint16(buf[1:3], uint16(len(body)))
	buf[3] = seq
	buf[4] = crc.Header8(buf[0:4])
	binary.LittleEndian.PutUint16(buf[5:7], commandID)
	copy(buf[7:], body)
	tail := crc.Tail16(buf[0 : total-2])
	binary.LittleEndian.PutUint16(buf[total-2:], tail)
	return buf, nil
}

// WireLen returns the total on-wire size of a frame whose body is n
// bytes long.
func WireLen(n int) int {
	return n + 9
}
