// Package progressbar implements a segmented progress bar widget: a plain
// data component describing progress and colored sections, a GPU-facing
// material rebuilt from it once per tick, and the engine layer that keeps the
// two in sync and draws the result.
package progressbar

import (
	"github.com/chewxy/math32"

	"github.com/emberline/progressbar/engine/colors"
)

// Section is one colored portion of a bar. Weight is relative: a section's
// rendered fraction is its weight over the sum of all weights, so order and
// neighbors matter, not absolute values.
type Section struct {
	Weight uint32
	Color  colors.Color
}

// ProgressBar holds the widget state. Progress stays in [0..1]; every mutator
// clamps rather than rejects, so no operation can fail. The zero value is an
// empty bar with transparent empty space.
//
// Mutators return the receiver for chaining:
//
//	bar.SetProgress(0.25).AddSection(1, colors.Green)
type ProgressBar struct {
	progress float32

	// Sections in start-to-end render order.
	Sections []Section

	// EmptyColor fills the (1 - progress) remainder of the bar.
	EmptyColor colors.Color
}

// New creates a bar with the given sections, zero progress, and transparent
// empty space.
func New(sections []Section) *ProgressBar {
	return &ProgressBar{
		Sections:   sections,
		EmptyColor: colors.Transparent,
	}
}

// Single creates a bar with one section of the given color.
func Single(color colors.Color) *ProgressBar {
	return New([]Section{{Weight: 1, Color: color}})
}

// SetProgress sets the progress, clamped to [0..1].
func (b *ProgressBar) SetProgress(amount float32) *ProgressBar {
	b.progress = clamp01(amount)
	return b
}

// IncreaseProgress adds amount to the progress and clamps. Negative amounts
// decrease.
func (b *ProgressBar) IncreaseProgress(amount float32) *ProgressBar {
	b.progress = clamp01(b.progress + amount)
	return b
}

// Progress returns the current progress, always in [0..1].
func (b *ProgressBar) Progress() float32 { return b.progress }

// Reset sets the progress back to zero.
func (b *ProgressBar) Reset() *ProgressBar {
	b.progress = 0
	return b
}

// IsFinished reports whether the bar is full.
func (b *ProgressBar) IsFinished() bool { return b.progress >= 1 }

// ClearSections removes all sections.
func (b *ProgressBar) ClearSections() *ProgressBar {
	b.Sections = b.Sections[:0]
	return b
}

// AddSection appends a section. Since weights are relative this rescales the
// fractions of every existing section too.
func (b *ProgressBar) AddSection(weight uint32, color colors.Color) *ProgressBar {
	b.Sections = append(b.Sections, Section{Weight: weight, Color: color})
	return b
}

// TotalWeight sums all section weights. May be zero.
func (b *ProgressBar) TotalWeight() uint32 {
	var total uint32
	for _, s := range b.Sections {
		total += s.Weight
	}
	return total
}

func clamp01(v float32) float32 {
	return math32.Max(0, math32.Min(1, v))
}
