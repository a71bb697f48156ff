package noise

import (
	"math"
	"testing"
)

func TestHashGolden(t *testing.T) {
	tests := []struct {
		x, y int
		seed int64
		want float64
	}{
		{0, 0, 1337, 0.8488},
		{1, 0, 1337, 0.497},
		{0, 1, 1337, 0.9729},
		{-1, 0, 1337, 0.2128},
		{-1, -1, 1337, 0.4083},
		{0, 0, 42, 0.8823},
		{0, 0, 0, 0},
		{12345, -678, 7, 0.4678},
	}

	for _, tt := range tests {
		got := Hash(tt.x, tt.y, tt.seed)
		if got != tt.want {
			t.Errorf("Hash(%d, %d, %d) = %v, want %v", tt.x, tt.y, tt.seed, got, tt.want)
		}
	}
}

func TestHashRange(t *testing.T) {
	seeds := []int64{0, 1, 1337, -99, math.MaxInt64, math.MinInt64}
	for _, seed := range seeds {
		for y := -64; y <= 64; y++ {
			for x := -64; x <= 64; x++ {
				h := Hash(x, y, seed)
				if h < 0 || h >= 1 {
					t.Fatalf("Hash(%d, %d, %d) = %v, outside [0,1)", x, y, seed, h)
				}
			}
		}
	}
}

func TestHashDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		if Hash(i, -i, 1337) != Hash(i, -i, 1337) {
			t.Fatalf("Hash(%d, %d) not stable across calls", i, -i)
		}
	}
}

func TestLatticeFloorsTowardNegativeInfinity(t *testing.T) {
	tests := []struct {
		v        float64
		wantCell int
	}{
		{0, 0},
		{0.5, 0},
		{1, 1},
		{-0.1, -1},
		{-0.5, -1},
		{-1, -1},
		{-1.0001, -2},
		{1e15 + 0.5, 1e15},
		{-1e15 - 0.5, -1e15 - 1},
	}

	for _, tt := range tests {
		cell, frac := Lattice(tt.v)
		if cell != tt.wantCell {
			t.Errorf("Lattice(%v) cell = %d, want %d", tt.v, cell, tt.wantCell)
		}
		if frac < 0 || frac >= 1 {
			t.Errorf("Lattice(%v) frac = %v, want [0,1)", tt.v, frac)
		}
	}
}

func TestSampleNegativeUsesLowerCell(t *testing.T) {
	const seed = 1337
	// -0.1 sits in cell -1 at offset 0.9, so the result blends Hash(-1,0)
	// toward Hash(0,0), never Hash(0,0) toward Hash(1,0).
	want := lerp(Hash(-1, 0, seed), Hash(0, 0, seed), smooth(0.9))
	if got := Sample(-0.1, 0, 1, seed); math.Abs(got-want) > 1e-12 {
		t.Errorf("Sample(-0.1, 0, 1) = %v, want %v", got, want)
	}
}

func TestSampleContinuousAcrossOrigin(t *testing.T) {
	const seed = 1337
	const eps = 1e-9
	for _, y := range []float64{-2.5, -0.5, 0, 0.25, 3.75} {
		left := Sample(-eps, y, 1, seed)
		right := Sample(eps, y, 1, seed)
		if math.Abs(left-right) > 1e-6 {
			t.Errorf("Sample jumps across x=0 at y=%v: %v vs %v", y, left, right)
		}
		below := Sample(y, -eps, 1, seed)
		above := Sample(y, eps, 1, seed)
		if math.Abs(below-above) > 1e-6 {
			t.Errorf("Sample jumps across y=0 at x=%v: %v vs %v", y, below, above)
		}
	}
}

func TestSampleOnLatticeEqualsHash(t *testing.T) {
	const seed = 1337
	for _, p := range [][2]int{{0, 0}, {3, -7}, {-12, 5}} {
		got := Sample(float64(p[0]), float64(p[1]), 1, seed)
		if want := Hash(p[0], p[1], seed); got != want {
			t.Errorf("Sample(%d, %d, 1) = %v, want Hash = %v", p[0], p[1], got, want)
		}
	}
}

func TestSampleBounds(t *testing.T) {
	scales := []float64{0.08, 0.12, 0.5, 1, 3.3}
	for _, scale := range scales {
		for y := -40.0; y <= 40; y += 0.7 {
			for x := -40.0; x <= 40; x += 0.9 {
				s := Sample(x, y, scale, 1337)
				if s < 0 || s >= 1 {
					t.Fatalf("Sample(%v, %v, %v) = %v, outside [0,1)", x, y, scale, s)
				}
			}
		}
	}
}

func TestFieldMatchesFunctions(t *testing.T) {
	f := NewField(77)
	if f.Hash(4, 9) != Hash(4, 9, 77) {
		t.Error("Field.Hash differs from Hash")
	}
	if f.Sample(1.5, -2.25, 0.12) != Sample(1.5, -2.25, 0.12, 77) {
		t.Error("Field.Sample differs from Sample")
	}
}

func TestSmooth(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{1, 1},
		{0.5, 0.5},
	}
	for _, tt := range tests {
		if got := smooth(tt.in); got != tt.want {
			t.Errorf("smooth(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
