package progressbar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/emberline/progressbar/engine/colors"
)

func TestSetProgressClamps(t *testing.T) {
	tests := []struct {
		in   float32
		want float32
	}{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{10, 1},
		{-3, 0},
		{1.0001, 1},
	}
	for _, tt := range tests {
		bar := New(nil)
		got := bar.SetProgress(tt.in).Progress()
		assert.Equal(t, tt.want, got, "SetProgress(%v)", tt.in)
		assert.GreaterOrEqual(t, got, float32(0))
		assert.LessOrEqual(t, got, float32(1))
	}
}

func TestIncreaseProgress(t *testing.T) {
	bar := New(nil)
	assert.Equal(t, float32(0.5), bar.IncreaseProgress(0.5).Progress())
	assert.Equal(t, float32(1), bar.IncreaseProgress(4.2).Progress())

	// negative amounts decrease, still clamped
	assert.Equal(t, float32(0.75), bar.IncreaseProgress(-0.25).Progress())
	assert.Equal(t, float32(0), bar.IncreaseProgress(-9).Progress())
}

func TestResetAndIsFinished(t *testing.T) {
	bar := Single(colors.Green)
	assert.False(t, bar.IsFinished())

	bar.IncreaseProgress(2)
	assert.Equal(t, float32(1), bar.Progress())
	assert.True(t, bar.IsFinished())

	bar.Reset()
	assert.Equal(t, float32(0), bar.Progress())
	assert.False(t, bar.IsFinished())
}

func TestSectionMutators(t *testing.T) {
	bar := New([]Section{{Weight: 10, Color: colors.Red}})
	bar.AddSection(9, colors.Blue)

	assert.Equal(t, []Section{
		{Weight: 10, Color: colors.Red},
		{Weight: 9, Color: colors.Blue},
	}, bar.Sections)
	assert.Equal(t, uint32(19), bar.TotalWeight())

	bar.ClearSections()
	assert.Empty(t, bar.Sections)
	assert.Equal(t, uint32(0), bar.TotalWeight())
}

func TestDefaults(t *testing.T) {
	var zero ProgressBar
	assert.Equal(t, float32(0), zero.Progress())
	assert.Empty(t, zero.Sections)
	assert.Equal(t, colors.Transparent, zero.EmptyColor)

	bar := New(nil)
	assert.Equal(t, colors.Transparent, bar.EmptyColor)

	single := Single(colors.Cyan)
	assert.Equal(t, []Section{{Weight: 1, Color: colors.Cyan}}, single.Sections)
}

func TestChaining(t *testing.T) {
	bar := New(nil).
		AddSection(2, colors.Red).
		AddSection(1, colors.Blue).
		SetProgress(0.25).
		IncreaseProgress(0.25)

	assert.Equal(t, float32(0.5), bar.Progress())
	assert.Len(t, bar.Sections, 2)
}
