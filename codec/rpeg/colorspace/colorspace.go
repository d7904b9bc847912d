/*
NAME
  colorspace.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package colorspace converts between gamma-free RGB and the component
// video (Y/Pb/Pr) representation used as the codec's working colorspace.
// All conversions are pure float64 arithmetic; no clamping is performed
// except in FloatToRGB, where it is mandatory.
package colorspace

// Triple is an ordered (x, y, z) of float64s, used for both (R, G, B) in
// [0, 1] and (Y, Pb, Pr).
type Triple struct {
	X, Y, Z float64
}

// RGBToFloat converts an integer RGB channel triple in [0, denom] to a
// Triple with each component in [0, 1]. No clamping is performed; the
// source is assumed already in range.
func RGBToFloat(r, g, b uint16, denom float64) Triple {
	return Triple{float64(r) / denom, float64(g) / denom, float64(b) / denom}
}

// FloatToRGB converts a Triple back to integer RGB channels scaled to
// denom. Each component is clamped to [0, 1] before scaling, since
// reconstructed components can slightly exceed that range; the scaled
// result is truncated toward zero.
func FloatToRGB(t Triple, denom float64) (r, g, b uint16) {
	return uint16(clamp01(t.X) * denom), uint16(clamp01(t.Y) * denom), uint16(clamp01(t.Z) * denom)
}

// ToComponentVideo converts a gamma-free RGB triple to component video
// (Y, Pb, Pr).
func ToComponentVideo(rgb Triple) (ypbpr Triple) {
	r, g, b := rgb.X, rgb.Y, rgb.Z
	return Triple{
		X: 0.299*r + 0.587*g + 0.114*b,
		Y: -0.168736*r - 0.331264*g + 0.5*b,
		Z: 0.5*r - 0.418688*g - 0.081312*b,
	}
}

// FromComponentVideo converts a component video (Y, Pb, Pr) triple back to
// gamma-free RGB.
func FromComponentVideo(ypbpr Triple) (rgb Triple) {
	y, pb, pr := ypbpr.X, ypbpr.Y, ypbpr.Z
	return Triple{
		X: y + 1.402*pr,
		Y: y - 0.344136*pb - 0.714136*pr,
		Z: y + 1.772*pb,
	}
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
