package progressbar

import (
	"github.com/emberline/progressbar/engine/assets"
	"github.com/emberline/progressbar/engine/ecs"
	"github.com/emberline/progressbar/engine/storage"
)

// UpdateProgressBars is the per-tick sync pass. For every entity carrying
// both a ProgressBar and a MaterialNode it resolves the node's handle and
// rebuilds the material from the bar's current state. Unresolvable handles
// are skipped, not errors: the pairing is simply retried on the next tick.
//
// The pass runs to completion in entity order and touches no shared state
// beyond the material/buffer stores, so it needs no coordination with the
// (strictly later) render pass.
func UpdateProgressBars(
	bars *ecs.Store[ProgressBar],
	nodes *ecs.Store[MaterialNode],
	materials *assets.Assets[Material],
	bufs *storage.Buffers,
) {
	ecs.Join2(bars, nodes, func(_ ecs.Entity, bar *ProgressBar, node *MaterialNode) {
		mat, ok := materials.Get(node.Handle)
		if !ok {
			return
		}
		mat.Update(bar, bufs)
	})
}

// LiveBufferHandles collects the buffer handles still referenced by any
// material, for storage compaction after a sync pass.
func LiveBufferHandles(nodes *ecs.Store[MaterialNode], materials *assets.Assets[Material]) []storage.Handle {
	var live []storage.Handle
	nodes.Each(func(_ ecs.Entity, node *MaterialNode) {
		mat, ok := materials.Get(node.Handle)
		if !ok {
			return
		}
		if !mat.SectionColors.IsZero() {
			live = append(live, mat.SectionColors)
		}
		if !mat.SectionStarts.IsZero() {
			live = append(live, mat.SectionStarts)
		}
	})
	return live
}
