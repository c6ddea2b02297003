// Package session drives the referee link end to end: it owns the serial
// port, splits it into an exclusively-owned reader and writer, and offers
// a watch demultiplexer that fans decoded frames out to per-topic latest
// value cells. The wire framing lives in pkg/frame, the message shapes in
// pkg/proto; this package only wires them to an actual byte stream.
package session

import (
	"fmt"
	"io"
	"sync"

	"github.com/librescoot/rmrefd/pkg/frame"
	"github.com/librescoot/rmrefd/pkg/proto"
	"github.com/tarm/serial"
)

const defaultBaud = 115200

// Connect opens the serial device at 115200 8N1 and returns a Reader and
// Writer sharing its one descriptor. Neither Reader nor Writer has a Close
// method; the port stays open for the life of the process.
func Connect(devicePath string) (*Reader, *Writer, error) {
	cfg := &serial.Config{
		Name:     devicePath,
		Baud:     defaultBaud,
		Size:     8,
		Parity:   serial.ParityNone,
		StopBits: serial.Stop1,
	}
	port, err := serial.OpenPort(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("session: open %s: %w", devicePath, err)
	}
	r := &Reader{port: port, df: frame.NewDeframer()}
	w := &Writer{port: port}
	return r, w, nil
}

// Reader pulls frames off the port and decodes them into typed messages.
// It owns the read half of the connection exclusively; no other goroutine
// should read from the same port concurrently.
type Reader struct {
	port io.Reader
	df   *frame.Deframer
	buf  [256]byte
}

// NewReader wraps an already-open byte stream (used by tests and by any
// caller that wants to supply its own transport instead of Connect).
func NewReader(r io.Reader) *Reader {
	return &Reader{port: r, df: frame.NewDeframer()}
}

// Recv blocks until the next frame decodes into a message, or until a
// transport or decode error occurs. A decode error (unknown command,
// trailing bytes, ...) is returned for that one frame without poisoning
// the stream; the caller may call Recv again.
func (r *Reader) Recv() (proto.Message, error) {
	for {
		f, err := r.df.Next()
		if err != nil {
			return proto.Message{}, err
		}
		if f != nil {
			return proto.Decode(f.CommandID, f.Body)
		}
		n, err := r.port.Read(r.buf[:])
		if n > 0 {
			r.df.Feed(r.buf[:n])
		}
		if err != nil {
			return proto.Message{}, transportError{fmt.Errorf("session: read: %w", err)}
		}
	}
}

// Writer owns the outbound sequence counter and the write half of the
// connection. The counter is scoped per Writer, matching the async
// source variant rather than the blocking variant's process-wide atomic.
type Writer struct {
	mu   sync.Mutex
	port io.Writer
	seq  uint8
}

// NewWriter wraps an already-open byte sink.
func NewWriter(w io.Writer) *Writer {
	return &Writer{port: w}
}

// Send serializes and writes one message, stamping and incrementing the
// sequence counter.
func (w *Writer) Send(m proto.MessagePayload) error {
	body, err := proto.Encode(m)
	if err != nil {
		return err
	}
	w.mu.Lock()
	seq := w.seq
	w.seq++
	w.mu.Unlock()

	wire, err := frame.Encode(seq, uint16(m.CommandID()), body)
	if err != nil {
		return err
	}
	_, err = w.port.Write(wire)
	return err
}

// SendMinimapReceipt marks a point on the referee system's minimap for
// the given robot. x must lie in [0, 28), y in [0, 15); origin is the
// map's lower-left corner.
func (w *Writer) SendMinimapReceipt(robotID uint16, x, y float32) error {
	if x < 0 || x >= 28 {
		return fmt.Errorf("session: minimap x %v out of range [0, 28)", x)
	}
	if y < 0 || y >= 15 {
		return fmt.Errorf("session: minimap y %v out of range [0, 15)", y)
	}
	return w.Send(proto.MinimapReceipt{TargetRobotID: robotID, X: x, Y: y})
}

// SendP2P sends an opaque peer-to-peer payload to another robot.
func (w *Writer) SendP2P(contentID, sendID, receiveID uint16, data []byte) error {
	if !proto.IsP2PContentID(contentID) {
		return fmt.Errorf("session: content id %#04x is not in the P2P range", contentID)
	}
	return w.Send(proto.StudentInteractiveData{
		ContentID: contentID,
		SendID:    sendID,
		ReceiveID: receiveID,
		Body: proto.PeerToPeerCommunication{
			ContentID: contentID,
			Data:      data,
		},
	})
}
