// Package noise provides a seeded, deterministic 2D value-noise field.
//
// The field is sampled from world coordinates only; nothing is stored and no
// RNG is walked, so any tile can be classified without materializing a grid.
package noise

import "math"

// DefaultSeed is the seed the world uses when none is configured.
const DefaultSeed int64 = 1337

const (
	primeX    uint32 = 374761393
	primeY    uint32 = 668265263
	primeSeed uint32 = 2654435761
	avalanche uint32 = 1274126177

	buckets = 10000
)

// Hash maps a lattice point and seed to a value in [0, 1).
//
// All arithmetic is wrapping 32-bit unsigned, so the result is identical on
// every platform. Negative coordinates wrap through their two's complement.
func Hash(xi, yi int, seed int64) float64 {
	n := uint32(xi)*primeX + uint32(yi)*primeY + uint32(seed)*primeSeed
	n ^= n >> 13
	n *= avalanche
	n ^= n >> 16
	return float64(n%buckets) / buckets
}

// Lattice splits v into the cell containing it and the offset inside that
// cell. The cell floors toward negative infinity, so -0.1 lands in cell -1.
// v must be finite and within the int range; NaN, infinities and magnitudes
// beyond about 9.2e18 give an unspecified cell.
func Lattice(v float64) (cell int, frac float64) {
	f := math.Floor(v)
	return int(f), v - f
}

// Sample returns the smoothed field value at (rx, ry) in [0, 1).
// scale must be positive.
func Sample(rx, ry, scale float64, seed int64) float64 {
	xi, xf := Lattice(rx * scale)
	yi, yf := Lattice(ry * scale)
	u, v := smooth(xf), smooth(yf)

	v00 := Hash(xi, yi, seed)
	v10 := Hash(xi+1, yi, seed)
	v01 := Hash(xi, yi+1, seed)
	v11 := Hash(xi+1, yi+1, seed)

	return lerp(lerp(v00, v10, u), lerp(v01, v11, u), v)
}

// Field is a noise field bound to one seed.
type Field struct {
	Seed int64
}

// NewField returns a field for seed.
func NewField(seed int64) Field {
	return Field{Seed: seed}
}

// Hash is Hash with the field's seed.
func (f Field) Hash(xi, yi int) float64 {
	return Hash(xi, yi, f.Seed)
}

// Sample is Sample with the field's seed.
func (f Field) Sample(rx, ry, scale float64) float64 {
	return Sample(rx, ry, scale, f.Seed)
}

// smooth is the cubic smoothstep t*t*(3-2t).
func smooth(t float64) float64 {
	return float64(t*t) * float64(3-2*t)
}

// lerp interpolates between a and b. The explicit conversion keeps the
// compiler from fusing the multiply-add on architectures that have FMA.
func lerp(a, b, t float64) float64 {
	return a + float64((b-a)*t)
}
