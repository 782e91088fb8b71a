package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func vec(x, y float64) dmath.Vec2 {
	return dmath.Vec2{X: x, Y: y}
}

func TestOverlaps(t *testing.T) {
	t.Run("separated boxes do not overlap", func(t *testing.T) {
		assert.False(t, Overlaps(vec(0, 0), vec(10, 10), vec(100, 100), vec(10, 10)))
		assert.False(t, Overlaps(vec(0, 0), vec(10, 10), vec(0, 20), vec(10, 10)))
	})

	t.Run("contained box overlaps", func(t *testing.T) {
		assert.True(t, Overlaps(vec(0, 0), vec(10, 10), vec(0, 0), vec(2, 2)))
		assert.True(t, Overlaps(vec(0, 0), vec(2, 2), vec(0, 0), vec(10, 10)))
	})

	t.Run("touching edges overlap", func(t *testing.T) {
		assert.True(t, Overlaps(vec(0, 0), vec(10, 10), vec(10, 0), vec(10, 10)))
	})

	t.Run("gap within tolerance overlaps", func(t *testing.T) {
		assert.True(t, Overlaps(vec(0, 0), vec(10, 10), vec(11, 0), vec(10, 10)))
	})

	t.Run("gap beyond tolerance does not overlap", func(t *testing.T) {
		assert.False(t, Overlaps(vec(0, 0), vec(10, 10), vec(11.5, 0), vec(10, 10)))
	})

	t.Run("symmetric", func(t *testing.T) {
		a, sa := vec(3, -4), vec(6, 8)
		b, sb := vec(7, 1), vec(2, 2)
		assert.Equal(t, Overlaps(a, sa, b, sb), Overlaps(b, sb, a, sa))
	})
}

func TestReduction(t *testing.T) {
	t.Run("below threshold snaps to zero", func(t *testing.T) {
		assert.Equal(t, 0.0, Reduction(0.5, 0.8, 0.5))
		assert.Equal(t, 0.0, Reduction(-0.5, 0.8, 0.5))
	})

	t.Run("keeps sign above threshold", func(t *testing.T) {
		assert.InDelta(t, 8.0, Reduction(10, 0.8, 0.5), 1e-9)
		assert.InDelta(t, -8.0, Reduction(-10, 0.8, 0.5), 1e-9)
	})

	t.Run("never grows magnitude for p below one", func(t *testing.T) {
		for _, v := range []float64{-20, -3, -0.7, 0, 0.7, 3, 20} {
			r := Reduction(v, 0.64, 0.5)
			assert.LessOrEqual(t, abs(r), abs(v))
			if r != 0 {
				assert.Equal(t, v > 0, r > 0)
			}
		}
	})

	t.Run("threshold boundary is kept", func(t *testing.T) {
		assert.Equal(t, 0.5, Reduction(0.5, 1, 0.5))
	})
}

func TestClampUnit(t *testing.T) {
	assert.Equal(t, 0.0, ClampUnit(-1))
	assert.Equal(t, 0.25, ClampUnit(0.25))
	assert.Equal(t, 1.0, ClampUnit(3))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
