/*
NAME
  quantize.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package quantize maps between the floating-point coefficients of a block
// (a, b, c, d, Pb, Pr) and the fixed-width integer fields of a 32-bit code
// word, and assembles/disassembles that word via bitpack.
package quantize

import (
	"github.com/ausocean/rpeg/codec/rpeg/bitpack"
	"github.com/ausocean/rpeg/codec/rpeg/chroma"
)

// Field widths and least-significant-bit positions within the 32-bit code
// word. These are part of the wire format and must not change.
const (
	widthA, lsbA   = 9, 23
	widthB, lsbB   = 5, 18
	widthC, lsbC   = 5, 13
	widthD, lsbD   = 5, 8
	widthPb, lsbPb = 4, 4
	widthPr, lsbPr = 4, 0
)

// aScale is the scale factor applied to the average-luma coefficient a,
// chosen so that the scaled integer fits in widthA unsigned bits.
var aScale = float64(bitpack.MaxU(widthA))

// bcdClamp bounds b, c, and d before scaling to keep typical content within
// the 5-bit signed field with headroom to spare.
const bcdClamp = 0.3

// bcdScale is the integer scale applied to b, c, and d after clamping.
const bcdScale = 50

// Quantized is the integer record packed into one code word.
type Quantized struct {
	A      uint64 // 9-bit unsigned, average luma.
	B, C, D int64 // 5-bit signed.
	Pb, Pr uint64 // 4-bit unsigned chroma indices.
}

// QuantizeA scales the average luma coefficient a to a 9-bit unsigned
// integer.
func QuantizeA(a float64) uint64 {
	return uint64(round(a * aScale))
}

// DequantizeA is the inverse of QuantizeA.
func DequantizeA(a uint64) float64 {
	return float64(a) / aScale
}

// QuantizeBCD clamps b, c, and d to [-0.3, 0.3] and truncates each toward
// zero after scaling by 50, yielding the integer domain [-15, 15].
func QuantizeBCD(b, c, d float64) (bi, ci, di int64) {
	return quantizeOne(b), quantizeOne(c), quantizeOne(d)
}

func quantizeOne(x float64) int64 {
	return int64(clamp(x, -bcdClamp, bcdClamp) * bcdScale)
}

// DequantizeBCD is the inverse scaling of QuantizeBCD.
func DequantizeBCD(bi, ci, di int64) (b, c, d float64) {
	return float64(bi) / bcdScale, float64(ci) / bcdScale, float64(di) / bcdScale
}

// QuantizeChroma maps a chroma pair to their 4-bit table indices.
func QuantizeChroma(pb, pr float64) (pbIdx, prIdx uint64) {
	return uint64(chroma.IndexOfChroma(float32(pb))), uint64(chroma.IndexOfChroma(float32(pr)))
}

// DequantizeChroma is the inverse of QuantizeChroma.
func DequantizeChroma(pbIdx, prIdx uint64) (pb, pr float64) {
	return float64(chroma.ChromaOfIndex(uint8(pbIdx))), float64(chroma.ChromaOfIndex(uint8(prIdx)))
}

// ConstructWord packs a Quantized record into a 32-bit code word. Every
// field is known in range by construction (the quantize functions above
// never produce out-of-range values), so a bitpack failure here indicates
// a programming error and is a defensive panic, not a runtime condition.
func ConstructWord(q Quantized) uint32 {
	word := uint64(0)
	word = mustNewU(word, widthA, lsbA, q.A)
	word = mustNewS(word, widthB, lsbB, q.B)
	word = mustNewS(word, widthC, lsbC, q.C)
	word = mustNewS(word, widthD, lsbD, q.D)
	word = mustNewU(word, widthPb, lsbPb, q.Pb)
	word = mustNewU(word, widthPr, lsbPr, q.Pr)
	return uint32(word)
}

// ParseWord is the left inverse of ConstructWord.
func ParseWord(word uint32) Quantized {
	w := uint64(word)
	return Quantized{
		A:  bitpack.GetU(w, widthA, lsbA),
		B:  bitpack.GetS(w, widthB, lsbB),
		C:  bitpack.GetS(w, widthC, lsbC),
		D:  bitpack.GetS(w, widthD, lsbD),
		Pb: bitpack.GetU(w, widthPb, lsbPb),
		Pr: bitpack.GetU(w, widthPr, lsbPr),
	}
}

func mustNewU(word uint64, width, lsb uint, value uint64) uint64 {
	w, ok := bitpack.NewU(word, width, lsb, value)
	if !ok {
		panic("quantize: unsigned field out of range during word construction")
	}
	return w
}

func mustNewS(word uint64, width, lsb uint, value int64) uint64 {
	w, ok := bitpack.NewS(word, width, lsb, value)
	if !ok {
		panic("quantize: signed field out of range during word construction")
	}
	return w
}

func clamp(x, lo, hi float64) float64 {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	default:
		return x
	}
}

func round(x float64) float64 {
	if x < 0 {
		return -round(-x)
	}
	return float64(int64(x + 0.5))
}
