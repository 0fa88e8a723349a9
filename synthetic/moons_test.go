package synthetic

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoons_Exact(t *testing.T) {
	points, labels, err := Moons(4, 0, nil)
	require.NoError(t, err)
	require.Len(t, points, 4)
	require.Equal(t, []int{0, 1, 0, 1}, labels)

	// a = π·i/2
	assert.InDelta(t, 0.0, points[0].X, 1e-12)
	assert.InDelta(t, 1.0, points[0].Y, 1e-12)
	assert.InDelta(t, math.Sin(1+math.Pi/2), points[1].X, 1e-12)
	assert.InDelta(t, math.Cos(1-math.Pi/2), points[1].Y, 1e-12)
	assert.InDelta(t, 0.0, points[2].X, 1e-12)
	assert.InDelta(t, -1.0, points[2].Y, 1e-12)
}

func TestMoons_Deterministic(t *testing.T) {
	a, la, err := Moons(100, 0.1, rand.NewPCG(1, 2))
	require.NoError(t, err)
	b, lb, err := Moons(100, 0.1, rand.NewPCG(1, 2))
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.Equal(t, la, lb)

	c, _, err := Moons(100, 0.1, rand.NewPCG(3, 4))
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

func TestMoons_NoiseBounds(t *testing.T) {
	const noise = 0.25
	exact, _, err := Moons(200, 0, nil)
	require.NoError(t, err)
	noisy, _, err := Moons(200, noise, rand.NewPCG(7, 7))
	require.NoError(t, err)

	for i := range exact {
		assert.LessOrEqual(t, math.Abs(noisy[i].X-exact[i].X), noise)
		assert.LessOrEqual(t, math.Abs(noisy[i].Y-exact[i].Y), noise)
	}
}

func TestMoons_Edges(t *testing.T) {
	points, labels, err := Moons(0, 0.1, nil)
	require.NoError(t, err)
	require.Empty(t, points)
	require.Empty(t, labels)

	_, _, err = Moons(-1, 0, nil)
	require.Error(t, err)

	_, _, err = Moons(10, -0.1, nil)
	require.Error(t, err)

	_, _, err = Moons(10, math.NaN(), nil)
	require.Error(t, err)
}
