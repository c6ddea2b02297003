package proto

import "math"

func float32FromBits(v uint32) float32 {
	return math.Float32frombits(v)
}

func float32ToBits(v float32) uint32 {
	return math.Float32bits(v)
}
