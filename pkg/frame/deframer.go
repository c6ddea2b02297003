package frame

import (
	"encoding/binary"
	"log"

	"github.com/librescoot/rmrefd/pkg/crc"
)

// Deframer pulls whole, CRC-validated frames out of an accumulating byte
// buffer. It holds no state beyond that buffer: feed it bytes as they
// arrive from the port, call Next repeatedly, and it yields every frame
// it can while resyncing past noise on its own.
type Deframer struct {
	buf []byte
}

// NewDeframer returns an empty Deframer ready to accept bytes.
func NewDeframer() *Deframer {
	return &Deframer{}
}

// Feed appends newly read bytes to the internal buffer.
func (d *Deframer) Feed(b []byte) {
	d.buf = append(d.buf, b...)
}

// Buffered returns the number of bytes currently held, awaiting sync or a
// complete frame.
func (d *Deframer) Buffered() int {
	return len(d.buf)
}

// Next attempts to extract one frame from the buffered bytes. It returns
// (nil, nil) when more bytes are needed (§4.3's "NeedMore") or a non-nil
// frame on success. Resync events are logged, not returned, so the error
// result is always nil; the payload is not decoded here (that is left to
// proto.Decode). The caller is expected to loop, calling Next again after
// feeding more bytes or to drain multiple frames already buffered.
func (d *Deframer) Next() (*Frame, error) {
	for {
		if len(d.buf) < MinFrameLen {
			return nil, nil
		}
		if d.buf[0] != SoF {
			idx := -1
			for i := 1; i < len(d.buf); i++ {
				if d.buf[i] == SoF {
					idx = i
					break
				}
			}
			if idx < 0 {
				log.Printf("frame: no SoF found in %d buffered byte(s), dropping", len(d.buf))
				if len(d.buf) > 1 {
					d.buf = d.buf[len(d.buf)-1:]
				}
				return nil, nil
			}
			log.Printf("frame: skipping %d byte(s) of garbage before SoF: % x", idx, d.buf[:idx])
			d.buf = d.buf[idx:]
			continue
		}

		header := d.buf[0:4]
		want := crc.Header8(header)
		if d.buf[4] != want {
			log.Printf("frame: header crc8 mismatch (got %#x want %#x), advancing one byte", d.buf[4], want)
			d.buf = d.buf[1:]
			continue
		}

		dataLength := binary.LittleEndian.Uint16(d.buf[1:3])
		if dataLength > MaxDataLength {
			log.Printf("frame: data_length %d exceeds max %d, advancing one byte", dataLength, MaxDataLength)
			d.buf = d.buf[1:]
			continue
		}

		total := WireLen(int(dataLength))
		if len(d.buf) < total {
			return nil, nil
		}

		tailOffset := total - 2
		gotTail := binary.LittleEndian.Uint16(d.buf[tailOffset:total])
		wantTail := crc.Tail16(d.buf[0:tailOffset])
		if gotTail != wantTail {
			log.Printf("frame: tail crc16 mismatch (got %#x want %#x), advancing one byte", gotTail, wantTail)
			d.buf = d.buf[1:]
			continue
		}

		frameBytes := d.buf[:total]
		d.buf = d.buf[total:]

		f := &Frame{
			DataLength: dataLength,
			Seq:        frameBytes[3],
			CommandID:  binary.LittleEndian.Uint16(frameBytes[5:7]),
			Body:       append([]byte(nil), frameBytes[7:7+dataLength]...),
		}
		return f, nil
	}
}
