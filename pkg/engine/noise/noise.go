// Package noise provides deterministic coherent 2D noise fields.
//
// A Field is a pure function of (x, y, frequency): the same inputs always give
// the same value in [0, 1], and nearby inputs give nearby values. Fields hold
// no mutable state after construction and are safe to share.
package noise

import (
	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
	"github.com/zyedidia/generic"
)

// DefaultSeed fixes the permutation tables of the built-in fields.
const DefaultSeed int64 = 1337

// Field samples coherent noise.
type Field interface {
	// Sample evaluates the field at (x*frequency, y*frequency) and returns a value in [0, 1].
	Sample(x, y, frequency float64) float64
}

// FieldFunc adapts a plain function to the Field interface.
type FieldFunc func(x, y, frequency float64) float64

// Sample calls f
func (f FieldFunc) Sample(x, y, frequency float64) float64 {
	return f(x, y, frequency)
}

// Constant is a flat field that always returns the same value.
type Constant float64

// Sample returns c clamped to [0, 1]
func (c Constant) Sample(_, _, _ float64) float64 {
	return generic.Clamp(float64(c), 0, 1)
}

// Perlin is classic gradient noise summed over a few octaves.
type Perlin struct {
	p *perlin.Perlin
}

// Perlin tuning: alpha is the octave weight divisor, beta the frequency multiplier.
const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 3
)

// NewPerlin creates a Perlin field with fixed permutation tables derived from seed
func NewPerlin(seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}
}

// Sample returns the Perlin value at the scaled coordinates remapped from [-1, 1] to [0, 1]
func (n *Perlin) Sample(x, y, frequency float64) float64 {
	v := n.p.Noise2D(x*frequency, y*frequency)
	return generic.Clamp((v+1)/2, 0, 1)
}

// Simplex is OpenSimplex noise normalized to [0, 1].
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex creates a Simplex field with fixed permutation tables derived from seed
func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.NewNormalized(seed)}
}

// Sample returns the OpenSimplex value at the scaled coordinates
func (n *Simplex) Sample(x, y, frequency float64) float64 {
	return generic.Clamp(n.n.Eval2(x*frequency, y*frequency), 0, 1)
}

// Kind names a built-in field implementation
type Kind string

const (
	KindPerlin  Kind = "perlin"
	KindSimplex Kind = "simplex"
)

// New returns the built-in field for kind, or false if kind is unknown
func New(kind Kind, seed int64) (Field, bool) {
	switch kind {
	case KindPerlin:
		return NewPerlin(seed), true
	case KindSimplex:
		return NewSimplex(seed), true
	default:
		return nil, false
	}
}
