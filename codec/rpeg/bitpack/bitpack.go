/*
NAME
  bitpack.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bitpack provides safe, branchless-in-spirit insertion and
// extraction of signed and unsigned bitfields within a 64-bit word. All
// operations are total: a width/lsb combination that would shift by 64 bits
// or more never invokes undefined behaviour, it simply yields zero.
package bitpack

// MaxU returns the largest unsigned value representable in width bits.
// A width of 0 yields 0; a width of 64 or more yields all bits set.
func MaxU(width uint) uint64 {
	switch {
	case width == 0:
		return 0
	case width >= 64:
		return ^uint64(0)
	default:
		return (uint64(1) << width) - 1
	}
}

// MaxS returns the largest positive value representable in width
// two's-complement bits. A width of 0 yields 0; a width of 63 or more
// yields the maximum int64.
func MaxS(width uint) int64 {
	switch {
	case width == 0:
		return 0
	case width >= 63:
		return int64(^uint64(0) >> 1)
	default:
		return (int64(1) << (width - 1)) - 1
	}
}

// FitsU reports whether n fits in width unsigned bits.
func FitsU(n uint64, width uint) bool {
	return n <= MaxU(width)
}

// FitsS reports whether n fits in width signed (two's-complement) bits.
func FitsS(n int64, width uint) bool {
	if n >= 0 {
		return n <= MaxS(width)
	}
	return n >= ^MaxS(width)
}

// GetU extracts the width-bit unsigned field beginning at the
// least-significant bit lsb of word.
func GetU(word uint64, width, lsb uint) uint64 {
	return (word >> lsb) & MaxU(width)
}

// GetS extracts the width-bit field beginning at the least-significant bit
// lsb of word, sign-extended to int64.
func GetS(word uint64, width, lsb uint) int64 {
	isolated := GetU(word, width, lsb)
	shifted := shls(int64(isolated), 64-width)
	return shrs(shifted, 64-width)
}

// NewU returns word with its width-bit field at lsb replaced by value, and
// true. If value does not fit in width unsigned bits, or the field would
// extend past bit 63, it returns 0 and false; word is never partially
// modified on failure.
func NewU(word uint64, width, lsb uint, value uint64) (uint64, bool) {
	if !FitsU(value, width) || width+lsb > 64 {
		return 0, false
	}
	mask := shlu(MaxU(width), lsb)
	cleared := word &^ mask
	return cleared | shlu(value, lsb), true
}

// NewS returns word with its width-bit field at lsb replaced by the
// two's-complement encoding of value, and true. If value does not fit in
// width signed bits, or the field would extend past bit 63, it returns 0
// and false; word is never partially modified on failure.
func NewS(word uint64, width, lsb uint, value int64) (uint64, bool) {
	if !FitsS(value, width) || width+lsb > 64 {
		return 0, false
	}
	mask := shlu(MaxU(width), lsb)
	cleared := word &^ mask
	stripped := uint64(value) & MaxU(width)
	return cleared | shlu(stripped, lsb), true
}

// shlu shifts n left by lsb bits, returning 0 rather than invoking
// undefined behaviour when lsb >= 64.
func shlu(n uint64, lsb uint) uint64 {
	if lsb >= 64 {
		return 0
	}
	return n << lsb
}

// shls is the signed analogue of shlu.
func shls(n int64, lsb uint) int64 {
	if lsb >= 64 {
		return 0
	}
	return n << lsb
}

// shrs is the signed, arithmetic-shift analogue of shlu: a right shift that
// returns 0 rather than invoking undefined behaviour when lsb >= 64.
func shrs(n int64, lsb uint) int64 {
	if lsb >= 64 {
		return 0
	}
	return n >> lsb
}
