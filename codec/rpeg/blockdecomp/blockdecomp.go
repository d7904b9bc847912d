/*
NAME
  blockdecomp.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package blockdecomp implements the 2x2 cosine-like orthogonal transform
// between a luma quad and its (a, b, c, d) coefficients, plus chroma
// averaging across a block. GetCoefficients and GetLuma are exact inverses
// in real arithmetic.
package blockdecomp

// Coeffs is the (a, b, c, d) decomposition of a 2x2 luma quad: average,
// vertical, horizontal, and diagonal difference.
type Coeffs struct {
	A, B, C, D float64
}

// Luma is the (y1, y2, y3, y4) quad in positional order top-left,
// top-right, bottom-left, bottom-right.
type Luma struct {
	Y1, Y2, Y3, Y4 float64
}

// GetCoefficients decomposes a luma quad into (a, b, c, d).
func GetCoefficients(l Luma) Coeffs {
	return Coeffs{
		A: (l.Y1 + l.Y2 + l.Y3 + l.Y4) / 4,
		B: (l.Y3 + l.Y4 - l.Y1 - l.Y2) / 4,
		C: (l.Y2 + l.Y4 - l.Y1 - l.Y3) / 4,
		D: (l.Y1 + l.Y4 - l.Y2 - l.Y3) / 4,
	}
}

// GetLuma reconstructs the luma quad from (a, b, c, d); the inverse of
// GetCoefficients.
func GetLuma(c Coeffs) Luma {
	return Luma{
		Y1: c.A - c.B - c.C + c.D,
		Y2: c.A - c.B + c.C - c.D,
		Y3: c.A + c.B - c.C - c.D,
		Y4: c.A + c.B + c.C + c.D,
	}
}

// AverageChroma returns the mean of four Pb values and the mean of four Pr
// values for a block, collapsing chroma to a single shared pair.
func AverageChroma(pb, pr [4]float64) (pbAvg, prAvg float64) {
	for i := 0; i < 4; i++ {
		pbAvg += pb[i]
		prAvg += pr[i]
	}
	return pbAvg / 4, prAvg / 4
}
