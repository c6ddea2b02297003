// Package crc computes the two frame checksums used by the referee link:
// an 8-bit header guard and a 16-bit whole-frame guard. Both are standard
// CRC families with a non-standard initial register, so we build them from
// the generic CRC engine rather than reaching for a fixed preset.
package crc

import "github.com/pasztorpisti/go-crc"

// Header CRC: MAXIM-DOW parameters (poly 0x31, reflected in/out, no xorout)
// with the initial register overridden from the algorithm's usual 0x00 to
// 0xFF. Covers the four fixed header bytes (sof, data_length, seq).
var header = mustAlgo(crc.NewAlgo[uint8](8, 0x31, 0xff, 0x00, true, true))

// Tail CRC: KERMIT parameters (poly 0x1021, reflected in/out, no xorout)
// with the initial register overridden from 0x0000 to 0xFFFF. Covers every
// byte of the frame up to (but not including) the tail itself.
var tail = mustAlgo(crc.NewAlgo[uint16](16, 0x1021, 0xffff, 0x0000, true, true))

func mustAlgo[T crc.UInt](a crc.Algo[T], err error) crc.Algo[T] {
	if err != nil {
		panic(err)
	}
	return a
}

// Header8 computes the frame's header CRC over data[0:4].
func Header8(data []byte) uint8 {
	return header.Calc(data)
}

// Tail16 computes the frame's tail CRC over data[0 : len-2].
func Tail16(data []byte) uint16 {
	return tail.Calc(data)
}
