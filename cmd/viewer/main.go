package main

import (
	"log"

	"github.com/pbakken/stride/engine/colors"
	"github.com/pbakken/stride/engine/core"
	glbackend "github.com/pbakken/stride/engine/gfx/gl"
	"github.com/pbakken/stride/engine/platform"
)

type App struct {
	scene *SceneLayer
}

func (a *App) OnStart(e *core.Engine) {
	a.scene = &SceneLayer{}
	e.PushLayer(a.scene)
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event)  {}
func (a *App) OnShutdown(e *core.Engine)              {}

func main() {
	cfg := core.Config{
		Title:         "Stride Viewer",
		Width:         1000,
		Height:        800,
		VSync:         true,
		ClearColor:    [4]float32(colors.DarkGray),
		CaptureCursor: true,
	}
	app := &App{}

	newWindow := func(cfg core.Config) (core.Window, error) {
		return platform.NewGLFWWindow(cfg, nil)
	}
	newRenderer := func(win core.Window, cfg core.Config) (core.Renderer, error) {
		return glbackend.NewRendererGL(win, cfg)
	}

	if err := core.Run(app, cfg, newWindow, newRenderer); err != nil {
		log.Fatal(err)
	}
}
