package progressbar

import (
	"github.com/emberline/progressbar/engine/assets"
	"github.com/emberline/progressbar/engine/colors"
	"github.com/emberline/progressbar/engine/storage"
)

// ShaderID keys the bar fragment shader in the shader registry. The layer
// registers the embedded source under it at attach time.
const ShaderID = "progressbar/bar.frag"

// Material is the GPU-facing image of one ProgressBar: two uniform scalars,
// two storage buffers, and the section count. It is rebuilt wholesale by
// Update each tick; the render backend only reads it.
//
// Binding layout consumed by the shader: empty color (uniform), progress
// (uniform), section colors (storage, vec4 array), section start percentages
// (storage, float array), section count (uniform).
type Material struct {
	EmptyColor    colors.Color // linear space
	Progress      float32
	SectionColors storage.Handle
	SectionStarts storage.Handle
	SectionCount  uint32
}

// MaterialNode attaches a material handle to an entity, pairing it with the
// ProgressBar component on the same entity.
type MaterialNode struct {
	Handle assets.Handle[Material]
}

// Update rebuilds m from bar. Both storage buffers are freshly allocated from
// bufs and replace the previous handles; the old buffers become garbage for
// the store owner to compact.
//
// A bar whose weights sum to zero (no sections, or all zero) produces empty
// buffers and a zero section count rather than dividing by zero.
func (m *Material) Update(bar *ProgressBar, bufs *storage.Buffers) {
	m.EmptyColor = bar.EmptyColor.ToLinear()
	m.Progress = bar.Progress()

	var (
		sectionColors []colors.Color
		percentages   []float32
	)
	if total := bar.TotalWeight(); total > 0 {
		sectionColors = make([]colors.Color, 0, len(bar.Sections))
		percentages = make([]float32, 0, len(bar.Sections))
		for _, s := range bar.Sections {
			sectionColors = append(sectionColors, s.Color.ToLinear())
			percentages = append(percentages, float32(s.Weight)/float32(total))
		}
	}

	m.SectionColors = bufs.Add(storage.FromColors(sectionColors))
	m.SectionStarts = bufs.Add(storage.FromFloat32s(percentages))
	m.SectionCount = uint32(len(sectionColors))
}
