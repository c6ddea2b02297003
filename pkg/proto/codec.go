package proto

import "encoding/binary"

// Decode parses one message body. body is the payload bytes that follow
// the command id on the wire (so len(body) == data_length); cmdID is the
// command id already split off by the frame codec, since the command id
// and the body share the same byte region as far as the frame is
// concerned but the bit codec treats them as two separate reads.
func Decode(cmdID uint16, body []byte) (Message, error) {
	r := newBitReader(body)
	msg, err := decodeBody(CommandID(cmdID), r, len(body))
	if err != nil {
		return Message{}, err
	}
	if residual := r.remainingBits(); residual != 0 {
		return Message{}, &ErrTrailingBytes{N: (residual + 7) / 8}
	}
	return Message{Command: CommandID(cmdID), Body: msg}, nil
}

func decodeBody(cmd CommandID, r *bitReader, bodyLen int) (MessagePayload, error) {
	switch cmd {
	case CmdGameStatus:
		return decodeGameStatus(r)
	case CmdGameResult:
		return decodeGameResult(r)
	case CmdGameRobotHP:
		return decodeGameRobotHP(r)
	case CmdEventData:
		return decodeEventData(r)
	case CmdSupplyProjectileAction:
		return decodeSupplyProjectileAction(r)
	case CmdRefereeWarning:
		return decodeRefereeWarning(r)
	case CmdDartRemainingTime:
		return decodeDartRemainingTime(r)
	case CmdGameRobotStatus:
		return decodeGameRobotStatus(r)
	case CmdPowerHeatData:
		return decodePowerHeatData(r)
	case CmdGameRobotPos:
		return decodeGameRobotPos(r)
	case CmdPowerRuneBuff:
		return decodePowerRuneBuff(r)
	case CmdAerialRobotEnergy:
		return decodeAerialRobotEnergy(r)
	case CmdRobotHurt:
		return decodeRobotHurt(r)
	case CmdShootData:
		return decodeShootData(r)
	case CmdBulletRemaining:
		return decodeBulletRemaining(r)
	case CmdRFIDStatus:
		return decodeRFIDStatus(r)
	case CmdDartClientCmd:
		return decodeDartClientCmd(r)
	case CmdGroundRobotPosition:
		return decodeGroundRobotPosition(r)
	case CmdRadarMarkData:
		return decodeRadarMarkData(r)
	case CmdStudentInteractiveData:
		return decodeStudentInteractiveData(r, bodyLen)
	case CmdCustomControllerInteractiveData:
		return decodeCustomControllerInteractiveData(r, bodyLen)
	case CmdMapCommand:
		return decodeMapCommand(r)
	case CmdRemoteControl:
		return decodeRemoteControl(r)
	case CmdMinimapReceipt:
		return decodeMinimapReceipt(r)
	default:
		return nil, &ErrUnknownCommand{ID: uint16(cmd)}
	}
}

// Encode serializes a message body, returning the bytes that belong in the
// payload after the command id (so the returned length is data_length).
func Encode(m MessagePayload) ([]byte, error) {
	w := newBitWriter()
	switch v := m.(type) {
	case GameStatus:
		encodeGameStatus(w, v)
	case GameResult:
		encodeGameResult(w, v)
	case GameRobotHP:
		encodeGameRobotHP(w, v)
	case EventData:
		encodeEventData(w, v)
	case SupplyProjectileAction:
		encodeSupplyProjectileAction(w, v)
	case RefereeWarning:
		encodeRefereeWarning(w, v)
	case DartRemainingTime:
		encodeDartRemainingTime(w, v)
	case GameRobotStatus:
		encodeGameRobotStatus(w, v)
	case PowerHeatData:
		encodePowerHeatData(w, v)
	case GameRobotPos:
		encodeGameRobotPos(w, v)
	case PowerRuneBuff:
		encodePowerRuneBuff(w, v)
	case AerialRobotEnergy:
		encodeAerialRobotEnergy(w, v)
	case RobotHurt:
		encodeRobotHurt(w, v)
	case ShootData:
		encodeShootData(w, v)
	case BulletRemaining:
		encodeBulletRemaining(w, v)
	case RFIDStatus:
		encodeRFIDStatus(w, v)
	case DartClientCmd:
		encodeDartClientCmd(w, v)
	case GroundRobotPosition:
		encodeGroundRobotPosition(w, v)
	case RadarMarkData:
		encodeRadarMarkData(w, v)
	case StudentInteractiveData:
		encodeStudentInteractiveData(w, v)
	case CustomControllerInteractiveData:
		encodeCustomControllerInteractiveData(w, v)
	case MapCommand:
		encodeMapCommand(w, v)
	case RemoteControl:
		encodeRemoteControl(w, v)
	case MinimapReceipt:
		encodeMinimapReceipt(w, v)
	default:
		return nil, &ErrUnknownCommand{ID: uint16(m.CommandID())}
	}
	return w.bytes(), nil
}

// EncodeMessage serializes the command id and body together, returning the
// full payload a Frame carries between its length header and its tail
// CRC (command id followed by data_length bytes of body).
func EncodeMessage(m MessagePayload) ([]byte, error) {
	body, err := Encode(m)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 2+len(body))
	binary.LittleEndian.PutUint16(out, uint16(m.CommandID()))
	copy(out[2:], body)
	return out, nil
}
