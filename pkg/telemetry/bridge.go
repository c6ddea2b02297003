// Package telemetry republishes a session's watch topics onto Redis so a
// dashboard process can follow match state without itself speaking the
// serial protocol. It is purely additive to the protocol engine: nothing
// here is read back by the session, matching the engine's
// message-persistence non-goal.
package telemetry

import (
	"context"
	"fmt"
	"log"

	"github.com/librescoot/rmrefd/pkg/redis"
	"github.com/librescoot/rmrefd/pkg/session"
)

// Redis hash key telemetry is grouped under, with per-topic fields
// published through WriteAndPublishString/Int.
const refereeKey = "referee"

// Bridge drives one goroutine per watched topic, each forwarding updates
// to Redis as they arrive.
type Bridge struct {
	redis *redis.Client
	watch *session.Watch
}

// New builds a bridge over an already-connected redis client and an
// already-spawned Watch.
func New(r *redis.Client, w *session.Watch) *Bridge {
	return &Bridge{redis: r, watch: w}
}

// Run starts one forwarding goroutine per topic and blocks until ctx is
// canceled.
func (b *Bridge) Run(ctx context.Context) {
	go b.forwardGameStatus(ctx)
	go b.forwardGameRobotHP(ctx)
	go b.forwardGameRobotStatus(ctx)
	go b.forwardRadarMarkData(ctx)
	go b.forwardEventData(ctx)
	<-ctx.Done()
}

func (b *Bridge) forwardGameStatus(ctx context.Context) {
	var gen uint64
	for {
		v, g, err := b.watch.GameStatus.GetAfter(ctx, gen)
		if err != nil {
			return
		}
		gen = g
		if err := b.redis.WriteAndPublishInt(refereeKey, "game_progress", int(v.GameProgress)); err != nil {
			log.Printf("telemetry: publish game_status: %v", err)
		}
		if err := b.redis.WriteAndPublishInt(refereeKey, "stage_remaining_time", int(v.StageRemainingTime)); err != nil {
			log.Printf("telemetry: publish game_status: %v", err)
		}
	}
}

func (b *Bridge) forwardGameRobotHP(ctx context.Context) {
	var gen uint64
	for {
		v, g, err := b.watch.GameRobotHP.GetAfter(ctx, gen)
		if err != nil {
			return
		}
		gen = g
		if err := b.redis.WriteAndPublishInt(refereeKey, "red_base_hp", int(v.Red.Base)); err != nil {
			log.Printf("telemetry: publish game_robot_hp: %v", err)
		}
		if err := b.redis.WriteAndPublishInt(refereeKey, "blue_base_hp", int(v.Blue.Base)); err != nil {
			log.Printf("telemetry: publish game_robot_hp: %v", err)
		}
	}
}

func (b *Bridge) forwardGameRobotStatus(ctx context.Context) {
	var gen uint64
	for {
		v, g, err := b.watch.GameRobotStatus.GetAfter(ctx, gen)
		if err != nil {
			return
		}
		gen = g
		field := fmt.Sprintf("robot_%d_hp", v.RobotID)
		if err := b.redis.WriteAndPublishInt(refereeKey, field, int(v.CurrentHP)); err != nil {
			log.Printf("telemetry: publish game_robot_status: %v", err)
		}
	}
}

func (b *Bridge) forwardRadarMarkData(ctx context.Context) {
	var gen uint64
	for {
		v, g, err := b.watch.RadarMarkData.GetAfter(ctx, gen)
		if err != nil {
			return
		}
		gen = g
		if err := b.redis.WriteAndPublishString(refereeKey, "radar_mark", fmt.Sprintf("%+v", v)); err != nil {
			log.Printf("telemetry: publish radar_mark_data: %v", err)
		}
	}
}

func (b *Bridge) forwardEventData(ctx context.Context) {
	var gen uint64
	for {
		v, g, err := b.watch.EventData.GetAfter(ctx, gen)
		if err != nil {
			return
		}
		gen = g
		var base int
		if v.BaseShielded {
			base = 1
		}
		if err := b.redis.WriteAndPublishInt(refereeKey, "base_shielded", base); err != nil {
			log.Printf("telemetry: publish event_data: %v", err)
		}
	}
}
