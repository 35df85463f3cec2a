package vmath

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b Vec2
		want float64
	}{
		{Vec2{0, 0}, Vec2{3, 4}, 5},
		{Vec2{-2, 0}, Vec2{2, 0}, 4},
		{Vec2{1, 1}, Vec2{1, 1}, 0},
	}
	for _, tc := range tests {
		if got := Distance(tc.a, tc.b); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Distance(%v,%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestWithinBoundaryInclusive(t *testing.T) {
	if !Within(Vec2{0, 0}, Vec2{1, 0}, 1) {
		t.Error("point at exactly radius should be within")
	}
	if Within(Vec2{0, 0}, Vec2{1.0001, 0}, 1) {
		t.Error("point beyond radius reported within")
	}
}

func TestNewRectNormalises(t *testing.T) {
	r := NewRect(8, 5, -8, -5)
	if r.Min != (Vec2{-8, -5}) || r.Max != (Vec2{8, 5}) {
		t.Fatalf("NewRect did not normalise: %+v", r)
	}
	if r.Empty() {
		t.Error("16x10 rect reported empty")
	}
	if !NewRect(0, 0, 0, 3).Empty() {
		t.Error("zero width rect should be empty")
	}
	if got := r.ClampPoint(Vec2{20, -20}); got != (Vec2{8, -5}) {
		t.Errorf("ClampPoint = %v, want {8 -5}", got)
	}
}

func TestRandomPointInsideRect(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Uint64().Draw(t, "seed")
		minX := rapid.Float64Range(-100, 100).Draw(t, "minX")
		minY := rapid.Float64Range(-100, 100).Draw(t, "minY")
		w := rapid.Float64Range(0.1, 50).Draw(t, "w")
		h := rapid.Float64Range(0.1, 50).Draw(t, "h")
		r := NewRect(minX, minY, minX+w, minY+h)
		rng := NewFastRand(seed)
		for i := 0; i < 20; i++ {
			if p := r.RandomPoint(rng); !r.Contains(p) {
				t.Fatalf("point %v outside %+v", p, r)
			}
		}
	})
}

func TestFastRandRanges(t *testing.T) {
	rng := NewFastRand(0)
	for i := 0; i < 1000; i++ {
		f := rng.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
		if n := rng.Intn(6); n < 0 || n >= 6 {
			t.Fatalf("Intn out of range: %d", n)
		}
		if v := rng.Range(3, 5); v < 3 || v >= 5 {
			t.Fatalf("Range out of bounds: %v", v)
		}
	}
	if rng.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
	if rng.Range(2, 2) != 2 {
		t.Error("empty Range should return lo")
	}
}
