/*
NAME
  bitpack_test.go

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package bitpack

import "testing"

func TestMaxU(t *testing.T) {
	cases := []struct {
		width uint
		want  uint64
	}{
		{0, 0},
		{5, 0b11111},
		{48, 0xffffffffffff},
		{75, ^uint64(0)},
	}
	for _, c := range cases {
		if got := MaxU(c.width); got != c.want {
			t.Errorf("MaxU(%d) = %#x, want %#x", c.width, got, c.want)
		}
	}
}

func TestMaxS(t *testing.T) {
	cases := []struct {
		width uint
		want  int64
	}{
		{0, 0},
		{5, 0b1111},
		{48, 0x7fffffffffff},
		{75, int64(^uint64(0) >> 1)},
	}
	for _, c := range cases {
		if got := MaxS(c.width); got != c.want {
			t.Errorf("MaxS(%d) = %#x, want %#x", c.width, got, c.want)
		}
	}
}

func TestFitsU(t *testing.T) {
	if !FitsU(7, 3) {
		t.Error("FitsU(7, 3) = false, want true")
	}
	if FitsU(64, 6) {
		t.Error("FitsU(64, 6) = true, want false")
	}
	if FitsU(7, 0) {
		t.Error("FitsU(7, 0) = true, want false")
	}
	if !FitsU(64, 64) {
		t.Error("FitsU(64, 64) = false, want true")
	}
}

func TestFitsS(t *testing.T) {
	if !FitsS(7, 4) {
		t.Error("FitsS(7, 4) = false, want true")
	}
	if FitsS(64, 7) {
		t.Error("FitsS(64, 7) = true, want false")
	}
	if FitsS(7, 0) {
		t.Error("FitsS(7, 0) = true, want false")
	}
	if !FitsS(0x7fffffffffffffff, 64) {
		t.Error("FitsS(max int64, 64) = false, want true")
	}
}

func TestGetU(t *testing.T) {
	cases := []struct {
		word        uint64
		width, lsb  uint
		want        uint64
	}{
		{0b11000000, 3, 5, 6},
		{0xffbacde, 8, 20, 0xff},
		{964736, 0, 0, 0},
		{10101010101, 0, 7, 0},
		{101010010101010, 64, 0, 101010010101010},
	}
	for _, c := range cases {
		if got := GetU(c.word, c.width, c.lsb); got != c.want {
			t.Errorf("GetU(%#x, %d, %d) = %#x, want %#x", c.word, c.width, c.lsb, got, c.want)
		}
	}
}

func TestGetS(t *testing.T) {
	cases := []struct {
		word       uint64
		width, lsb uint
		want       int64
	}{
		{0b11000000, 3, 5, -2},
		{0xffbacde, 8, 20, -1},
		{964736, 0, 0, 0},
		{10101010101, 0, 7, 0},
		{101010010101010, 64, 0, 101010010101010},
	}
	for _, c := range cases {
		if got := GetS(c.word, c.width, c.lsb); got != c.want {
			t.Errorf("GetS(%#x, %d, %d) = %d, want %d", c.word, c.width, c.lsb, got, c.want)
		}
	}
}

func TestNewU(t *testing.T) {
	if got, ok := NewU(0, 3, 5, 6); !ok || got != 0b11000000 {
		t.Errorf("NewU(0, 3, 5, 6) = (%#x, %v), want (0b11000000, true)", got, ok)
	}
	if _, ok := NewU(0, 16, 20, 0xfffff); ok {
		t.Error("NewU(0, 16, 20, 0xfffff) succeeded, want failure (value too large)")
	}
	if _, ok := NewU(0, 45, 20, 6); ok {
		t.Error("NewU(0, 45, 20, 6) succeeded, want failure (field escapes word)")
	}
	// Overwrite semantics: a non-empty destination field still succeeds.
	if got, ok := NewU(0b11000000, 3, 5, 5); !ok || got != 0b10100000 {
		t.Errorf("NewU(0b11000000, 3, 5, 5) = (%#x, %v), want (0b10100000, true)", got, ok)
	}
}

func TestNewS(t *testing.T) {
	if got, ok := NewS(0, 3, 5, -2); !ok || got != 0b11000000 {
		t.Errorf("NewS(0, 3, 5, -2) = (%#x, %v), want (0b11000000, true)", got, ok)
	}
	if _, ok := NewS(0, 16, 20, 0xffff); ok {
		t.Error("NewS(0, 16, 20, 0xffff) succeeded, want failure (value too large)")
	}
	if _, ok := NewS(0, 45, 20, 6); ok {
		t.Error("NewS(0, 45, 20, 6) succeeded, want failure (field escapes word)")
	}
}

func TestShiftSafety(t *testing.T) {
	if got := shlu(0b101, 5); got != 0b10100000 {
		t.Errorf("shlu(0b101, 5) = %#b, want 0b10100000", got)
	}
	if got := shlu(0xf, 32); got != 0xf00000000 {
		t.Errorf("shlu(0xf, 32) = %#x, want 0xf00000000", got)
	}
	if got := shlu(1111, 64); got != 0 {
		t.Errorf("shlu(1111, 64) = %d, want 0", got)
	}
	if got := shlu(7001, 0); got != 7001 {
		t.Errorf("shlu(7001, 0) = %d, want 7001", got)
	}

	if got := shls(-1, 2); got != -4 {
		t.Errorf("shls(-1, 2) = %d, want -4", got)
	}
	if got := shls(-1, 64); got != 0 {
		t.Errorf("shls(-1, 64) = %d, want 0", got)
	}

	if got := shrs(-1, 2); got != -1 {
		t.Errorf("shrs(-1, 2) = %d, want -1", got)
	}
	if got := shrs(16, 2); got != 4 {
		t.Errorf("shrs(16, 2) = %d, want 4", got)
	}
	if got := shrs(-1, 64); got != 0 {
		t.Errorf("shrs(-1, 64) = %d, want 0", got)
	}
}

func TestRoundTripUnsigned(t *testing.T) {
	word, ok := NewU(0, 9, 23, 256)
	if !ok {
		t.Fatal("NewU failed unexpectedly")
	}
	if got := GetU(word, 9, 23); got != 256 {
		t.Errorf("round trip: got %d, want 256", got)
	}
}

func TestRoundTripSigned(t *testing.T) {
	for _, v := range []int64{-15, -1, 0, 1, 15} {
		word, ok := NewS(0, 5, 8, v)
		if !ok {
			t.Fatalf("NewS(0, 5, 8, %d) failed unexpectedly", v)
		}
		if got := GetS(word, 5, 8); got != v {
			t.Errorf("round trip signed %d: got %d", v, got)
		}
	}
}
