/*
NAME
  colorspace_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package colorspace

import "testing"

const eps = 1e-5

func approxEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < eps
}

func TestRGBToFloat(t *testing.T) {
	got := RGBToFloat(255, 0, 0, 255)
	want := Triple{1, 0, 0}
	if got != want {
		t.Errorf("RGBToFloat(255,0,0,255) = %+v, want %+v", got, want)
	}
}

func TestFloatToRGB(t *testing.T) {
	r, g, b := FloatToRGB(Triple{1, 0, 0}, 255)
	if r != 255 || g != 0 || b != 0 {
		t.Errorf("FloatToRGB(1,0,0) = (%d,%d,%d), want (255,0,0)", r, g, b)
	}
}

func TestFloatToRGBClampsOutOfRange(t *testing.T) {
	r, g, b := FloatToRGB(Triple{1.2, -0.2, 0.5}, 255)
	if r != 255 || g != 0 || b != 127 {
		t.Errorf("FloatToRGB clamping = (%d,%d,%d), want (255,0,127)", r, g, b)
	}
}

func TestToComponentVideo(t *testing.T) {
	got := ToComponentVideo(Triple{1, 0, 0})
	want := Triple{0.299, -0.168736, 0.5}
	if !approxEqual(got.X, want.X, eps) || !approxEqual(got.Y, want.Y, eps) || !approxEqual(got.Z, want.Z, eps) {
		t.Errorf("ToComponentVideo(1,0,0) = %+v, want %+v", got, want)
	}
}

func TestFromComponentVideo(t *testing.T) {
	got := FromComponentVideo(Triple{0.299, -0.168736, 0.5})
	if !approxEqual(got.X, 1.0, 1e-3) || !approxEqual(got.Y, 0, 1e-3) || !approxEqual(got.Z, 0, 1e-3) {
		t.Errorf("FromComponentVideo(0.299,-0.168736,0.5) = %+v, want approx (1,0,0)", got)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, rgb := range []Triple{{0, 0, 0}, {1, 1, 1}, {0.25, 0.5, 0.75}} {
		ypbpr := ToComponentVideo(rgb)
		back := FromComponentVideo(ypbpr)
		if !approxEqual(back.X, rgb.X, eps) || !approxEqual(back.Y, rgb.Y, eps) || !approxEqual(back.Z, rgb.Z, eps) {
			t.Errorf("round trip %+v -> %+v -> %+v", rgb, ypbpr, back)
		}
	}
}
