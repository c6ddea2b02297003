package session

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/librescoot/rmrefd/pkg/frame"
	"github.com/librescoot/rmrefd/pkg/proto"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// TestSequenceWrap: sending 260 frames from one Writer yields the
// sequence series 0,1,...,255,0,1,2,3.
func TestSequenceWrap(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for i := 0; i < 260; i++ {
		if err := w.Send(proto.DartRemainingTime{Seconds: 1}); err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
	}

	d := frame.NewDeframer()
	d.Feed(buf.Bytes())
	var seqs []uint8
	for {
		f, err := d.Next()
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if f == nil {
			break
		}
		seqs = append(seqs, f.Seq)
	}
	if len(seqs) != 260 {
		t.Fatalf("decoded %d frames, want 260", len(seqs))
	}
	for i := 0; i < 256; i++ {
		if seqs[i] != uint8(i) {
			t.Fatalf("seq[%d] = %d, want %d", i, seqs[i], i)
		}
	}
	for i := 256; i < 260; i++ {
		if seqs[i] != uint8(i-256) {
			t.Fatalf("seq[%d] = %d, want %d", i, seqs[i], i-256)
		}
	}
}

func TestMinimapReceiptRangeValidation(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.SendMinimapReceipt(1, 28, 1); err == nil {
		t.Fatal("expected an error for x == 28 (exclusive upper bound)")
	}
	if err := w.SendMinimapReceipt(1, 1, 15); err == nil {
		t.Fatal("expected an error for y == 15 (exclusive upper bound)")
	}
	if err := w.SendMinimapReceipt(1, 3.5, 2.0); err != nil {
		t.Fatalf("unexpected error for an in-range point: %v", err)
	}
}

// TestWatchPopulates: feeding GameRobotStatus frames makes the topic
// cell's first read return the first one, and a second frame updates it.
func TestWatchPopulates(t *testing.T) {
	first := proto.GameRobotStatus{RobotID: 1, CurrentHP: 400}
	second := proto.GameRobotStatus{RobotID: 1, CurrentHP: 350}

	var frames [][]byte
	for _, m := range []proto.GameRobotStatus{first, second} {
		body, err := proto.Encode(m)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		f, err := frame.Encode(0, uint16(m.CommandID()), body)
		if err != nil {
			t.Fatalf("frame encode: %v", err)
		}
		frames = append(frames, f)
	}

	pr, pw := io.Pipe()
	r := NewReader(pr)
	watch := NewWatch()
	watch.Spawn(r)

	// The cell keeps only the latest value, so the second frame is written
	// only after the first has been read back. The pipe stays open between
	// writes; the watch loop's read goroutine blocks on it until Stop/Wait.
	go pw.Write(frames[0])

	ctx := testContext(t)
	got, err := watch.GameRobotStatus.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != first {
		t.Fatalf("first value = %+v, want %+v", got, first)
	}

	go pw.Write(frames[1])

	// Poll for the second update; a Get made before the watch routes the
	// second frame still returns the first value.
	waitForValue(t, watch.GameRobotStatus, second)

	pw.Close()
	watch.Stop()
	watch.Wait()
}

func waitForValue(t *testing.T, c *Cell[proto.GameRobotStatus], want proto.GameRobotStatus) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if v, ok := c.TryGet(); ok && v == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("cell never observed %+v", want)
}
