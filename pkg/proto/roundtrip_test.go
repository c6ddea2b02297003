package proto

import "testing"

// TestRefereeWarningSizeSweep mirrors the source's seeded test: for every
// level code 1..3, the encoded payload is exactly 2 bytes.
func TestRefereeWarningSizeSweep(t *testing.T) {
	for lvl := 1; lvl <= 3; lvl++ {
		m := RefereeWarning{Level: RefereeWarningLevel(lvl), FoulRobotID: 4}
		body, err := Encode(m)
		if err != nil {
			t.Fatalf("level=%d: encode failed: %v", lvl, err)
		}
		if len(body) != 2 {
			t.Fatalf("level=%d: encoded length %d, want 2", lvl, len(body))
		}
		msg, err := Decode(uint16(CmdRefereeWarning), body)
		if err != nil {
			t.Fatalf("level=%d: decode failed: %v", lvl, err)
		}
		if msg.Body.(RefereeWarning) != m {
			t.Fatalf("level=%d: round trip mismatch: %+v", lvl, msg.Body)
		}
	}
}

// TestFixedSizeVariants checks the static payload size table for every
// fixed-length message variant.
func TestFixedSizeVariants(t *testing.T) {
	cases := []struct {
		name string
		msg  MessagePayload
		size int
	}{
		{"GameStatus", GameStatus{GameType: GameTypeRMUC, GameProgress: GameProgressRunning, StageRemainingTime: 120, SyncTimestamp: 42}, 11},
		{"GameResult", GameResult{Winner: WinnerRed}, 1},
		{"GameRobotHP", GameRobotHP{}, 32},
		{"EventData", EventData{PowerRuneActivated: true}, 4},
		{"SupplyProjectileAction", SupplyProjectileAction{}, 4},
		{"RefereeWarning", RefereeWarning{Level: RefereeWarningYellowCard}, 2},
		{"DartRemainingTime", DartRemainingTime{Seconds: 30}, 1},
		{"GameRobotStatus", GameRobotStatus{}, 27},
		{"PowerHeatData", PowerHeatData{}, 20},
		{"GameRobotPos", GameRobotPos{}, 16},
		{"PowerRuneBuff", PowerRuneBuff{}, 1},
		{"AerialRobotEnergy", AerialRobotEnergy{}, 1},
		{"RobotHurt", RobotHurt{}, 1},
		{"ShootData", ShootData{}, 6},
		{"BulletRemaining", BulletRemaining{}, 2},
		{"RFIDStatus", RFIDStatus{}, 4},
		{"DartClientCmd", DartClientCmd{}, 6},
		{"GroundRobotPosition", GroundRobotPosition{}, 40},
		{"RadarMarkData", RadarMarkData{}, 6},
		{"MapCommand", MapCommand{}, 15},
		{"RemoteControl", RemoteControl{}, 10},
		{"MinimapReceipt", MinimapReceipt{TargetRobotID: 7, X: 3.5, Y: 2.0}, 10},
	}
	for _, c := range cases {
		body, err := Encode(c.msg)
		if err != nil {
			t.Fatalf("%s: encode failed: %v", c.name, err)
		}
		if len(body) != c.size {
			t.Fatalf("%s: encoded length %d, want %d", c.name, len(body), c.size)
		}
		msg, err := Decode(uint16(c.msg.CommandID()), body)
		if err != nil {
			t.Fatalf("%s: decode failed: %v", c.name, err)
		}
		if msg.Body != c.msg {
			t.Fatalf("%s: round trip mismatch: got %+v want %+v", c.name, msg.Body, c.msg)
		}
	}
}

func TestUnknownCommandRejected(t *testing.T) {
	_, err := Decode(0x09FF, []byte{1, 2, 3})
	if err == nil {
		t.Fatal("expected an error for an unknown command id")
	}
	var uc *ErrUnknownCommand
	if !asUnknownCommand(err, &uc) {
		t.Fatalf("expected ErrUnknownCommand, got %T: %v", err, err)
	}
	if uc.ID != 0x09FF {
		t.Fatalf("ID = %#04x, want 0x09ff", uc.ID)
	}
}

func asUnknownCommand(err error, target **ErrUnknownCommand) bool {
	if e, ok := err.(*ErrUnknownCommand); ok {
		*target = e
		return true
	}
	return false
}

func TestMinimapReceiptWireScenario(t *testing.T) {
	// Send robot id 7, position (3.5, 2.0): encoded body begins
	// 07 00 (robot id) followed by the IEEE-754 LE bytes of 3.5 and 2.0.
	m := MinimapReceipt{TargetRobotID: 7, X: 3.5, Y: 2.0}
	body, err := Encode(m)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{0x07, 0x00, 0x00, 0x00, 0x60, 0x40, 0x00, 0x00, 0x00, 0x40}
	if len(body) != len(want) {
		t.Fatalf("length = %d, want %d", len(body), len(want))
	}
	for i := range want {
		if body[i] != want[i] {
			t.Fatalf("byte %d = %#02x, want %#02x (full: % x)", i, body[i], want[i], body)
		}
	}
}
