// SPDX-License-Identifier: MIT
package matrix

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource always yields the same Int63, pinning the draw.
type fixedSource int64

func (s fixedSource) Int63() int64 { return int64(s) }
func (fixedSource) Seed(int64) {}

func TestClosedUnitEndpoints(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, closedUnit(rand.New(fixedSource(0))))
	assert.Equal(t, 1.0, closedUnit(rand.New(fixedSource(unitSteps))))
	assert.Equal(t, 0.5, closedUnit(rand.New(fixedSource(unitSteps/2))))
}

func TestFillRandomFloatReachesBothBounds(t *testing.T) {
	t.Parallel()

	m, err := NewDense(2, 2)
	require.NoError(t, err)

	top := &Generator{rng: rand.New(fixedSource(unitSteps)), kind: FloatElements}
	require.NoError(t, m.FillRandom(top, -1.5, 4))
	for _, v := range m.data {
		assert.Equal(t, 4.0, v.Float64())
	}

	bottom := &Generator{rng: rand.New(fixedSource(0)), kind: FloatElements}
	require.NoError(t, m.FillRandom(bottom, -1.5, 4))
	for _, v := range m.data {
		assert.Equal(t, -1.5, v.Float64())
	}

	// An awkward span must still never overshoot hi.
	require.NoError(t, m.FillRandom(top, 0.1, 0.7))
	for _, v := range m.data {
		assert.LessOrEqual(t, v.Float64(), 0.7)
	}
}
