package progressbar

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberline/progressbar/engine/colors"
	"github.com/emberline/progressbar/engine/storage"
)

func floatsOf(t *testing.T, b storage.Buffer) []float32 {
	t.Helper()
	require.Zero(t, len(b.Data)%4)
	out := make([]float32, len(b.Data)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b.Data[4*i:]))
	}
	return out
}

func colorsOf(t *testing.T, b storage.Buffer) []colors.Color {
	t.Helper()
	vs := floatsOf(t, b)
	require.Zero(t, len(vs)%4)
	out := make([]colors.Color, len(vs)/4)
	for i := range out {
		copy(out[i][:], vs[4*i:4*i+4])
	}
	return out
}

func TestMaterialUpdateFractions(t *testing.T) {
	bufs := storage.NewBuffers()
	bar := New([]Section{
		{Weight: 10, Color: colors.Red},
		{Weight: 9, Color: colors.Blue},
	}).SetProgress(0.5)

	var mat Material
	mat.Update(bar, bufs)

	assert.Equal(t, float32(0.5), mat.Progress)
	assert.Equal(t, uint32(2), mat.SectionCount)

	starts, ok := bufs.Get(mat.SectionStarts)
	require.True(t, ok)
	fractions := floatsOf(t, starts)
	require.Len(t, fractions, 2)
	assert.InDelta(t, 10.0/19.0, fractions[0], 1e-6)
	assert.InDelta(t, 9.0/19.0, fractions[1], 1e-6)

	cols, ok := bufs.Get(mat.SectionColors)
	require.True(t, ok)
	got := colorsOf(t, cols)
	require.Len(t, got, 2)
	assert.Equal(t, colors.Red.ToLinear(), got[0])
	assert.Equal(t, colors.Blue.ToLinear(), got[1])
}

func TestMaterialUpdateEmptyColorLinear(t *testing.T) {
	bufs := storage.NewBuffers()
	bar := New(nil)
	bar.EmptyColor = colors.Gray

	var mat Material
	mat.Update(bar, bufs)
	assert.Equal(t, colors.Gray.ToLinear(), mat.EmptyColor)
}

func TestMaterialUpdateZeroWeights(t *testing.T) {
	tests := []struct {
		name     string
		sections []Section
	}{
		{"no sections", nil},
		{"all zero weights", []Section{{Weight: 0, Color: colors.Red}, {Weight: 0, Color: colors.Blue}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bufs := storage.NewBuffers()
			bar := New(tt.sections).SetProgress(0.3)

			var mat Material
			mat.Update(bar, bufs)

			assert.Equal(t, uint32(0), mat.SectionCount)
			cols, ok := bufs.Get(mat.SectionColors)
			require.True(t, ok)
			assert.Empty(t, cols.Data)
			starts, ok := bufs.Get(mat.SectionStarts)
			require.True(t, ok)
			assert.Empty(t, starts.Data)
		})
	}
}

func TestMaterialUpdateReplacesBuffers(t *testing.T) {
	bufs := storage.NewBuffers()
	bar := Single(colors.Green)

	var mat Material
	mat.Update(bar, bufs)
	first := mat.SectionColors

	mat.Update(bar, bufs)
	assert.NotEqual(t, first, mat.SectionColors, "buffers are replaced wholesale, not mutated")

	// parallel invariant
	cols, _ := bufs.Get(mat.SectionColors)
	starts, _ := bufs.Get(mat.SectionStarts)
	assert.Equal(t, int(mat.SectionCount), len(cols.Data)/16)
	assert.Equal(t, int(mat.SectionCount), len(starts.Data)/4)
}

func TestMaterialUpdateIdempotent(t *testing.T) {
	bufs := storage.NewBuffers()
	bar := New([]Section{
		{Weight: 3, Color: colors.Yellow},
		{Weight: 1, Color: colors.Cyan},
	}).SetProgress(0.7)

	var a, b Material
	a.Update(bar, bufs)
	b.Update(bar, bufs)

	assert.Equal(t, a.EmptyColor, b.EmptyColor)
	assert.Equal(t, a.Progress, b.Progress)
	assert.Equal(t, a.SectionCount, b.SectionCount)

	ac, _ := bufs.Get(a.SectionColors)
	bc, _ := bufs.Get(b.SectionColors)
	assert.Equal(t, ac.Data, bc.Data)
	as, _ := bufs.Get(a.SectionStarts)
	bs, _ := bufs.Get(b.SectionStarts)
	assert.Equal(t, as.Data, bs.Data)
}

func TestMaterialSingleFullBar(t *testing.T) {
	bufs := storage.NewBuffers()
	bar := Single(colors.Green).IncreaseProgress(2)

	assert.Equal(t, float32(1), bar.Progress())
	assert.True(t, bar.IsFinished())

	var mat Material
	mat.Update(bar, bufs)
	assert.Equal(t, uint32(1), mat.SectionCount)

	starts, _ := bufs.Get(mat.SectionStarts)
	fractions := floatsOf(t, starts)
	require.Len(t, fractions, 1)
	assert.Equal(t, float32(1), fractions[0])
}
