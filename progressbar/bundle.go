package progressbar

import (
	"github.com/emberline/progressbar/engine/assets"
	"github.com/emberline/progressbar/engine/ecs"
	"github.com/emberline/progressbar/engine/ui"
)

// Bundle is everything one on-screen bar needs: the widget state, a material
// node referencing a freshly registered material, and a full-width layout
// node.
type Bundle struct {
	Bar    ProgressBar
	Node   MaterialNode
	Layout ui.Node
}

// NewBundle registers a default material for bar and wraps the pieces up.
// The material stays empty until the first sync pass fills it in.
func NewBundle(bar ProgressBar, materials *assets.Assets[Material]) Bundle {
	return Bundle{
		Bar:    bar,
		Node:   MaterialNode{Handle: materials.Add(Material{})},
		Layout: ui.Node{Width: ui.Percent(100)},
	}
}

// Spawn creates an entity and attaches the bundle's components to it,
// returning the entity and the stored ProgressBar for further mutation.
func (b Bundle) Spawn(
	world *ecs.World,
	bars *ecs.Store[ProgressBar],
	nodes *ecs.Store[MaterialNode],
	layouts *ecs.Store[ui.Node],
) (ecs.Entity, *ProgressBar) {
	e := world.Spawn()
	bar := bars.Set(e, b.Bar)
	nodes.Set(e, b.Node)
	layouts.Set(e, b.Layout)
	return e, bar
}
