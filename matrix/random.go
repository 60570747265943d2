// SPDX-License-Identifier: MIT

// Package matrix - seeded random fill.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrices across platforms.
//   - Encapsulation: the generator is an explicit value; no process-wide RNG.
//
// Concurrency:
//   - A Generator wraps a math/rand.Rand and is NOT goroutine-safe.
//     Give every goroutine its own Generator.

package matrix

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/matrixgen/scalar"
)

const opFillRandom = "FillRandom"

// defaultRNGSeed is the fixed seed used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// unitSteps is the resolution of closedUnit: 2^53 equal steps cover [0, 1].
const unitSteps = 1 << 53

// closedUnit draws uniformly from the 2^53+1 grid points of [0, 1], so unlike
// rand.Float64 the upper end is reachable.
func closedUnit(r *rand.Rand) float64 {
	return float64(r.Int63n(unitSteps+1)) / unitSteps
}

// maxIntBound keeps ceil(lo)..floor(hi) spans inside Int63n.
const maxIntBound = 1 << 61

// ElementKind selects the variant produced by a Generator.
type ElementKind uint8

const (
	// IntElements draws Integer values uniformly from [ceil(min), floor(max)].
	IntElements ElementKind = iota
	// FloatElements draws Float values uniformly from [min, max]; both ends can occur.
	FloatElements
)

// String returns "int" or "float".
func (k ElementKind) String() string {
	if k == FloatElements {
		return "float"
	}

	return "int"
}

// ParseElementKind maps "int"/"integer" and "float" to an ElementKind.
func ParseElementKind(s string) (ElementKind, error) {
	switch s {
	case "int", "integer", "":
		return IntElements, nil
	case "float":
		return FloatElements, nil
	default:
		return IntElements, fmt.Errorf("matrix: unknown element kind %q", s)
	}
}

// Generator is an explicit, seeded source of random cell values.
type Generator struct {
	rng  *rand.Rand
	kind ElementKind
}

// NewGenerator returns a deterministic Generator.
// Policy: seed == 0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func NewGenerator(seed int64, kind ElementKind) *Generator {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return &Generator{rng: rand.New(rand.NewSource(seed)), kind: kind}
}

// Kind reports the element variant this generator produces.
func (g *Generator) Kind() ElementKind { return g.kind }

// FillRandom replaces every element with an independent draw in [lo, hi].
// Cells are drawn in row-major order.
//
// Implementation:
//   - Stage 1: validate bounds for the generator's kind.
//   - Stage 2: draw rows*cols values into a scratch buffer.
//   - Stage 3: commit.
//
// Errors:
//   - ErrNilMatrix on a nil receiver or nil generator.
//   - ErrInvalidRange when lo > hi, a bound is non-finite, or (IntElements)
//     no integer lies in [lo, hi] or a bound exceeds ±2^61.
func (m *Dense) FillRandom(gen *Generator, lo, hi float64) error {
	if m == nil || gen == nil {
		return matrixErrorf(opFillRandom, ErrNilMatrix)
	}
	draw, err := gen.sampler(lo, hi)
	if err != nil {
		return matrixErrorf(opFillRandom, err)
	}

	scratch := make([]scalar.Value, len(m.data))
	for idx := range scratch {
		scratch[idx] = draw()
	}
	m.data = scratch

	return nil
}

// sampler validates [lo, hi] and returns a closure producing one value per call.
func (g *Generator) sampler(lo, hi float64) (func() scalar.Value, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("%w: non-finite bound", ErrInvalidRange)
	}
	if lo > hi {
		return nil, fmt.Errorf("%w: min %v > max %v", ErrInvalidRange, lo, hi)
	}

	if g.kind == FloatElements {
		span := hi - lo
		if math.IsInf(span, 0) {
			return nil, fmt.Errorf("%w: span overflows", ErrInvalidRange)
		}
		return func() scalar.Value {
			return scalar.MustFloat(math.Min(lo+closedUnit(g.rng)*span, hi))
		}, nil
	}

	ilo, ihi := math.Ceil(lo), math.Floor(hi)
	if ilo > ihi {
		return nil, fmt.Errorf("%w: no integer in [%v, %v]", ErrInvalidRange, lo, hi)
	}
	if ilo < -maxIntBound || ihi > maxIntBound {
		return nil, fmt.Errorf("%w: bound outside ±2^61", ErrInvalidRange)
	}
	base, n := int64(ilo), int64(ihi)-int64(ilo)+1

	return func() scalar.Value {
		return scalar.Int(base + g.rng.Int63n(n))
	}, nil
}
