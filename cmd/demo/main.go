package main

import (
	"fmt"
	"log"

	"github.com/emberline/progressbar/engine/colors"
	"github.com/emberline/progressbar/engine/core"
	glbackend "github.com/emberline/progressbar/engine/gfx/gl"
	"github.com/emberline/progressbar/engine/platform"
	"github.com/emberline/progressbar/engine/ui"
	"github.com/emberline/progressbar/progressbar"
)

// Demo: three stacked bars. The top one fills over time and wraps around,
// the middle drains slowly, the bottom has no sections and shows only its
// empty color. Hold Space to fast-forward, R resets, Escape quits.
type App struct {
	input *core.Input
	rend  *glbackend.RendererGL
	bars  *progressbar.Layer
	tick  int

	loading *progressbar.ProgressBar
	health  *progressbar.ProgressBar
	blank   *progressbar.ProgressBar
}

func (a *App) OnStart(e *core.Engine) {
	a.rend = e.Renderer.(*glbackend.RendererGL)
	a.bars = progressbar.NewLayer(a.rend)
	e.PushLayer(a.bars)

	loading := progressbar.New([]progressbar.Section{
		{Weight: 10, Color: colors.Red},
		{Weight: 9, Color: colors.Blue},
	})
	loading.EmptyColor = colors.Gray.WithAlpha(0.35)
	_, a.loading = a.bars.Spawn(*loading, ui.Node{Width: ui.Percent(60), Height: ui.Px(28)})

	health := progressbar.Single(colors.Green).SetProgress(1)
	health.EmptyColor = colors.Black.WithAlpha(0.5)
	_, a.health = a.bars.Spawn(*health, ui.Node{Width: ui.Percent(40), Height: ui.Px(18)})

	blank := progressbar.New(nil)
	blank.EmptyColor = colors.Magenta.WithAlpha(0.6)
	_, a.blank = a.bars.Spawn(*blank, ui.Node{Width: ui.Percent(60), Height: ui.Px(12)})
}

func (a *App) OnUpdate(e *core.Engine, dt float64) {
	a.tick++

	speed := float32(1)
	if a.input.IsKeyDown(core.KeySpace) {
		speed = 4
	}

	a.loading.IncreaseProgress(float32(dt) * 0.25 * speed)
	if a.loading.IsFinished() {
		a.loading.Reset()
	}
	a.health.IncreaseProgress(float32(dt) * -0.05 * speed)

	if a.tick%30 == 0 {
		e.Window.SetTitle(fmt.Sprintf("progressbar demo — %.0f%%", a.loading.Progress()*100))
	}
}

func (a *App) OnRender(e *core.Engine, alpha float64) {}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	a.input.Handle(ev)
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down {
		return
	}
	switch k.Key {
	case core.KeyEscape:
		e.Window.RequestClose()
	case core.KeyR:
		a.loading.Reset()
		a.health.SetProgress(1)
	}
}

func (a *App) OnShutdown(e *core.Engine) {
	log.Printf("last frame: %d bars, %d draw calls", a.rend.Stats().BarCount, a.rend.Stats().DrawCalls)
}

func main() {
	cfg := core.Config{
		Title:      "progressbar demo",
		Width:      960,
		Height:     540,
		VSync:      true,
		ClearColor: colors.DarkGray,
	}
	app := &App{input: core.NewInput()}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(app, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
