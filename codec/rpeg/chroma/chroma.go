/*
NAME
  chroma.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package chroma provides the pre-tabulated 16-entry bijection between a
// signed chroma value and a 4-bit index, used by quantize to compress the
// Pb/Pr averages of a block. The table is an opaque collaborator as far as
// the rest of the codec is concerned: callers only rely on IndexOfChroma and
// ChromaOfIndex round-tripping to within the table's step size.
package chroma

// table holds 16 quantization levels, evenly spaced across [-0.35, 0.35]
// and symmetric about zero. Values of x outside this span saturate to the
// nearest endpoint index rather than erroring.
var table = [16]float32{
	-0.35000000, -0.30333333, -0.25666667, -0.21000000,
	-0.16333333, -0.11666667, -0.07000000, -0.02333333,
	0.02333333, 0.07000000, 0.11666667, 0.16333333,
	0.21000000, 0.25666667, 0.30333333, 0.35000000,
}

// IndexOfChroma returns the index of the table entry nearest x, breaking
// ties toward the lower index. It is monotonic nondecreasing in x across
// the table's domain.
func IndexOfChroma(x float32) uint8 {
	best := 0
	bestDist := absf32(table[0] - x)
	for i, v := range table {
		d := absf32(v - x)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return uint8(best)
}

// ChromaOfIndex returns the chroma value represented by index i, for i in
// [0, 15].
func ChromaOfIndex(i uint8) float32 {
	return table[i]
}

func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
