// Package ui carries the minimal layout vocabulary widget bundles need: a
// Node sizes itself per axis as auto, fixed pixels, or a percentage of the
// available space.
package ui

type SizeMode int

const (
	SizeModeAuto SizeMode = iota
	SizeModePx
	SizeModePercent
)

// Val is a per-axis size.
type Val struct {
	Mode  SizeMode
	Value float32
}

func Auto() Val             { return Val{Mode: SizeModeAuto} }
func Px(v float32) Val      { return Val{Mode: SizeModePx, Value: v} }
func Percent(v float32) Val { return Val{Mode: SizeModePercent, Value: v} }

// Resolve converts v to pixels given the available extent and a fallback for
// auto sizing.
func (v Val) Resolve(avail, auto float32) float32 {
	switch v.Mode {
	case SizeModePx:
		return v.Value
	case SizeModePercent:
		return avail * v.Value / 100
	default:
		return auto
	}
}

// Node positions a widget within its parent extent.
type Node struct {
	Width  Val
	Height Val
}
