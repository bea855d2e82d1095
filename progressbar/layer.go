package progressbar

import (
	_ "embed"
	"log"

	"github.com/emberline/progressbar/engine/assets"
	"github.com/emberline/progressbar/engine/core"
	"github.com/emberline/progressbar/engine/ecs"
	"github.com/emberline/progressbar/engine/storage"
	"github.com/emberline/progressbar/engine/ui"
)

//go:embed shaders/bar.frag
var fragmentSource string

// Renderer draws one bar from its synced material. The GL backend implements
// this; tests substitute their own.
type Renderer interface {
	CompileBarPipeline(fragmentSrc string) error
	DrawBar(mat *Material, bufs *storage.Buffers, rect [4]float32)
}

// Layer hosts the widget in the engine loop: it owns the component stores and
// collaborator stores, syncs materials once per tick, and renders bars
// stacked top to bottom sized by their layout nodes.
type Layer struct {
	World     *ecs.World
	Bars      *ecs.Store[ProgressBar]
	Nodes     *ecs.Store[MaterialNode]
	Layouts   *ecs.Store[ui.Node]
	Materials *assets.Assets[Material]
	Buffers   *storage.Buffers

	Shaders  *assets.ShaderRegistry
	renderer Renderer

	// Gap is the vertical spacing between stacked bars, in pixels.
	Gap float32
}

// NewLayer builds a layer with fresh stores, drawing through r. A nil r is
// allowed for headless use (sync only, no draw).
func NewLayer(r Renderer) *Layer {
	return &Layer{
		World:     ecs.NewWorld(),
		Bars:      ecs.NewStore[ProgressBar](),
		Nodes:     ecs.NewStore[MaterialNode](),
		Layouts:   ecs.NewStore[ui.Node](),
		Materials: assets.NewAssets[Material](),
		Buffers:   storage.NewBuffers(),
		Shaders:   assets.Shaders,
		renderer:  r,
		Gap:       8,
	}
}

// Spawn adds a bar to the layer and returns it for mutation.
func (l *Layer) Spawn(bar ProgressBar, layout ui.Node) (ecs.Entity, *ProgressBar) {
	b := NewBundle(bar, l.Materials)
	if layout != (ui.Node{}) {
		b.Layout = layout
	}
	return b.Spawn(l.World, l.Bars, l.Nodes, l.Layouts)
}

// Despawn removes a bar and its components. Its material is dropped; the
// orphaned buffers go away on the next compaction.
func (l *Layer) Despawn(e ecs.Entity) {
	if node, ok := l.Nodes.Get(e); ok {
		l.Materials.Remove(node.Handle)
	}
	l.Bars.Remove(e)
	l.Nodes.Remove(e)
	l.Layouts.Remove(e)
	l.World.Despawn(e)
}

// OnAttach registers the embedded fragment shader and compiles the bar
// pipeline.
func (l *Layer) OnAttach(e *core.Engine) {
	l.Shaders.Register(ShaderID, fragmentSource)
	if l.renderer == nil {
		return
	}
	src, _ := l.Shaders.Lookup(ShaderID)
	if err := l.renderer.CompileBarPipeline(src); err != nil {
		log.Printf("progressbar: compile pipeline: %v", err)
		l.renderer = nil
	}
}

func (l *Layer) OnDetach(e *core.Engine) {}

// OnUpdate runs the sync pass and drops replaced buffers.
func (l *Layer) OnUpdate(e *core.Engine, dt float64) {
	UpdateProgressBars(l.Bars, l.Nodes, l.Materials, l.Buffers)
	l.Buffers.Compact(LiveBufferHandles(l.Nodes, l.Materials)...)
}

// OnRender draws every bar whose material has been synced at least once.
func (l *Layer) OnRender(e *core.Engine, alpha float64) {
	if l.renderer == nil {
		return
	}
	fw, fh := e.Window.FramebufferSize()
	availW, availH := float32(fw), float32(fh)

	y := l.Gap
	ecs.Join2(l.Nodes, l.Layouts, func(ent ecs.Entity, node *MaterialNode, layout *ui.Node) {
		mat, ok := l.Materials.Get(node.Handle)
		if !ok {
			return
		}
		w := layout.Width.Resolve(availW, availW)
		h := layout.Height.Resolve(availH, 32)
		l.renderer.DrawBar(mat, l.Buffers, [4]float32{(availW - w) / 2, y, w, h})
		y += h + l.Gap
	})
}

func (l *Layer) OnEvent(e *core.Engine, ev core.Event) bool { return false }
