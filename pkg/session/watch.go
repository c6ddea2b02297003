package session

import (
	"errors"
	"log"

	"github.com/librescoot/rmrefd/pkg/proto"
)

// Watch demultiplexes a Reader's frame stream into per-topic latest-value
// cells. It owns a single background goroutine; Stop signals it to exit
// and Wait blocks until it has.
type Watch struct {
	GameRobotHP    *Cell[proto.GameRobotHP]
	GameRobotStatus *Cell[proto.GameRobotStatus]
	GameStatus     *Cell[proto.GameStatus]
	RadarMarkData  *Cell[proto.RadarMarkData]
	EventData      *Cell[proto.EventData]

	stop chan struct{}
	done chan struct{}
}

// discarded names the message types the watch intentionally drops:
// frequent or uninteresting topics nobody reads via a cell.
func discarded(cmd proto.CommandID) bool {
	switch cmd {
	case proto.CmdDartRemainingTime, proto.CmdGameRobotPos, proto.CmdRFIDStatus,
		proto.CmdPowerRuneBuff, proto.CmdPowerHeatData:
		return true
	default:
		return false
	}
}

// NewWatch allocates an unstarted Watch.
func NewWatch() *Watch {
	return &Watch{
		GameRobotHP:     NewCell[proto.GameRobotHP](),
		GameRobotStatus: NewCell[proto.GameRobotStatus](),
		GameStatus:      NewCell[proto.GameStatus](),
		RadarMarkData:   NewCell[proto.RadarMarkData](),
		EventData:       NewCell[proto.EventData](),
		stop:            make(chan struct{}),
		done:            make(chan struct{}),
	}
}

// Spawn starts the background consumer. It reads from r until Stop fires
// or r.Recv returns a transport error; decode errors on individual frames
// are logged and do not stop the loop.
func (w *Watch) Spawn(r *Reader) {
	go w.run(r)
}

func (w *Watch) run(r *Reader) {
	defer close(w.done)
	results := make(chan recvResult)
	go func() {
		for {
			msg, err := r.Recv()
			select {
			case results <- recvResult{msg, err}:
			case <-w.stop:
				return
			}
			if err != nil && isTransportError(err) {
				return
			}
		}
	}()

	for {
		select {
		case <-w.stop:
			return
		case res := <-results:
			if res.err != nil {
				if isTransportError(res.err) {
					log.Printf("session: watch stopping on transport error: %v", res.err)
					return
				}
				log.Printf("session: watch dropping undecodable frame: %v", res.err)
				continue
			}
			w.route(res.msg)
		}
	}
}

type recvResult struct {
	msg proto.Message
	err error
}

// transportError marks the wrapped errors from Reader.Recv that originate
// in the port itself rather than in decoding; only these should end the
// watch loop.
type transportError struct{ error }

func isTransportError(err error) bool {
	var t transportError
	return errors.As(err, &t)
}

func (w *Watch) route(msg proto.Message) {
	switch body := msg.Body.(type) {
	case proto.GameRobotHP:
		w.GameRobotHP.Set(body)
	case proto.GameRobotStatus:
		w.GameRobotStatus.Set(body)
	case proto.GameStatus:
		w.GameStatus.Set(body)
	case proto.RadarMarkData:
		w.RadarMarkData.Set(body)
	case proto.EventData:
		w.EventData.Set(body)
	default:
		if discarded(msg.Command) {
			return
		}
		log.Printf("session: watch: unhandled message, command=%#04x", uint16(msg.Command))
	}
}

// Stop requests the background goroutine to exit. It is not idempotent:
// call it at most once, since a second call panics on the closed channel.
// The stop signal is single-use.
func (w *Watch) Stop() {
	close(w.stop)
}

// Wait blocks until the background goroutine has exited after Stop.
func (w *Watch) Wait() {
	<-w.done
}
