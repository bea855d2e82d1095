package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToLinear(t *testing.T) {
	// Pure channels and extremes survive conversion exactly.
	assert.Equal(t, Color{0, 0, 0, 0}, Transparent.ToLinear())
	lin := Red.ToLinear()
	assert.InDelta(t, 1, lin[0], 1e-6)
	assert.InDelta(t, 0, lin[1], 1e-6)
	assert.InDelta(t, 0, lin[2], 1e-6)
	assert.Equal(t, float32(1), lin[3])

	// sRGB 0.5 linearizes to ~0.214
	g := Gray.ToLinear()
	assert.InDelta(t, 0.21404, g[0], 1e-4)
	assert.InDelta(t, 0.21404, g[1], 1e-4)
	assert.InDelta(t, 0.21404, g[2], 1e-4)
}

func TestToLinearKeepsAlpha(t *testing.T) {
	c := Blue.WithAlpha(0.3).ToLinear()
	assert.Equal(t, float32(0.3), c[3])
}

func TestWithAlpha(t *testing.T) {
	c := White.WithAlpha(0.5)
	assert.Equal(t, Color{1, 1, 1, 0.5}, c)
	// source is unchanged (value semantics)
	assert.Equal(t, Color{1, 1, 1, 1}, White)
}
