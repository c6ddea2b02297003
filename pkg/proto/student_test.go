package proto

import "testing"

// TestP2PSizeSweep mirrors the source's concrete sweep: for every
// custom_size in 1..=113, a StudentInteractiveData frame with
// data_length = custom_size + 6 + 6 decodes into a P2P payload of exactly
// custom_size bytes, preserving the inner content id.
func TestP2PSizeSweep(t *testing.T) {
	for customSize := 1; customSize <= 113; customSize++ {
		dataLength := customSize + 6 + 6
		body := make([]byte, dataLength)
		// outer: content_id=0x0200, send_id=0x1234, receive_id=0x5678
		body[0], body[1] = 0x00, 0x02
		body[2], body[3] = 0x34, 0x12
		body[4], body[5] = 0x78, 0x56
		// P2P fixed prefix: inner content_id=0x0200, 4 reserved bytes.
		body[6], body[7] = 0x00, 0x02

		msg, err := Decode(uint16(CmdStudentInteractiveData), body)
		if err != nil {
			t.Fatalf("custom_size=%d: decode failed: %v", customSize, err)
		}
		sid, ok := msg.Body.(StudentInteractiveData)
		if !ok {
			t.Fatalf("custom_size=%d: wrong body type %T", customSize, msg.Body)
		}
		p2p, ok := sid.Body.(PeerToPeerCommunication)
		if !ok {
			t.Fatalf("custom_size=%d: wrong inner type %T", customSize, sid.Body)
		}
		if p2p.ContentID != 0x0200 {
			t.Fatalf("custom_size=%d: inner content id = %#04x, want 0x0200", customSize, p2p.ContentID)
		}
		if len(p2p.Data) != customSize {
			t.Fatalf("custom_size=%d: payload length = %d", customSize, len(p2p.Data))
		}
	}
}

// TestCustomControllerSizeSweep: for every custom_size in 1..=30, a
// 0x0302 frame of that payload size decodes to an opaque byte vector of
// the same length.
func TestCustomControllerSizeSweep(t *testing.T) {
	for customSize := 1; customSize <= 30; customSize++ {
		body := make([]byte, customSize)
		for i := range body {
			body[i] = byte(i)
		}
		msg, err := Decode(uint16(CmdCustomControllerInteractiveData), body)
		if err != nil {
			t.Fatalf("custom_size=%d: decode failed: %v", customSize, err)
		}
		cc, ok := msg.Body.(CustomControllerInteractiveData)
		if !ok {
			t.Fatalf("custom_size=%d: wrong body type %T", customSize, msg.Body)
		}
		if len(cc.Data) != customSize {
			t.Fatalf("custom_size=%d: decoded length %d", customSize, len(cc.Data))
		}
	}
}

func TestStudentInteractiveGraphicDeleteRoundTrip(t *testing.T) {
	m := StudentInteractiveData{
		ContentID: ContentGraphicDelete,
		SendID:    1,
		ReceiveID: 2,
		Body:      GraphicDelete{Operation: GraphicDeleteAll, Layer: 3},
	}
	body, err := Encode(m)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(body) != studentInteractiveDataLen(m) {
		t.Fatalf("encoded length %d != computed length %d", len(body), studentInteractiveDataLen(m))
	}
	msg, err := Decode(uint16(CmdStudentInteractiveData), body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := msg.Body.(StudentInteractiveData)
	if got.ContentID != ContentGraphicDelete || got.SendID != 1 || got.ReceiveID != 2 {
		t.Fatalf("outer mismatch: %+v", got)
	}
	gd := got.Body.(GraphicDelete)
	if gd.Operation != GraphicDeleteAll || gd.Layer != 3 {
		t.Fatalf("inner mismatch: %+v", gd)
	}
}

func TestStudentInteractiveP2PEncodeRoundTrip(t *testing.T) {
	m := StudentInteractiveData{
		ContentID: 0x0234,
		SendID:    7,
		ReceiveID: 8,
		Body: PeerToPeerCommunication{
			ContentID: 0x0234,
			Data:      []byte{1, 2, 3, 4, 5},
		},
	}
	body, err := Encode(m)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	msg, err := Decode(uint16(CmdStudentInteractiveData), body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := msg.Body.(StudentInteractiveData)
	p2p := got.Body.(PeerToPeerCommunication)
	if p2p.ContentID != 0x0234 {
		t.Fatalf("content id = %#04x, want 0x0234", p2p.ContentID)
	}
	if string(p2p.Data) != "\x01\x02\x03\x04\x05" {
		t.Fatalf("data mismatch: %v", p2p.Data)
	}
}
