package main

import (
	"github.com/pbakken/stride/engine/assets"
	"github.com/pbakken/stride/engine/core"
	"github.com/pbakken/stride/engine/gfx/renderer3d"
	"github.com/pbakken/stride/engine/scene"
)

// SceneLayer owns the first-person camera and the walkthrough scene.
type SceneLayer struct {
	ctrl *scene.FPSController
	r3d  *renderer3d.SceneRenderer
}

func (l *SceneLayer) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.ctrl = scene.NewFPSController(scene.NewDefaultCamera(), w, h)

	vs, err := assets.LoadShader("scene.vert")
	if err != nil {
		panic(err)
	}
	fs, err := assets.LoadShader("scene.frag")
	if err != nil {
		panic(err)
	}

	l.r3d, err = renderer3d.New(e.Renderer, vs, fs)
	if err != nil {
		panic(err)
	}
}

func (l *SceneLayer) OnDetach(e *core.Engine) {}

func (l *SceneLayer) OnUpdate(e *core.Engine, dt float64) {
	l.ctrl.Update(e, float32(dt))
}

func (l *SceneLayer) OnRender(e *core.Engine, alpha float64) {
	view, projection := l.ctrl.Matrices()
	l.r3d.Draw(view, projection)
}

func (l *SceneLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	return l.ctrl.OnEvent(ev)
}
