package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pbakken/stride/engine/core"
)

// Default tuning, in degrees per pixel and world units per second.
const (
	defaultSensitivity float32 = 0.1
	defaultMoveSpeed   float32 = 2.5
	defaultNear        float32 = 0.1
	defaultFar         float32 = 100
)

// FPSController: mouse-look plus WASD fly movement, Escape to quit.
// It owns the pointer-tracking state, so no globals are involved; the
// platform layer reaches it through the engine event callback.
type FPSController struct {
	Sensitivity float32
	MoveSpeed   float32
	Camera      *Camera

	aspect     float32
	near, far  float32
	lastX      float32
	lastY      float32
	hasPointer bool
}

// NewFPSController wraps cam with default tuning. The viewport size
// fixes the projection aspect until SetViewport is called again.
func NewFPSController(cam *Camera, viewportW, viewportH int) *FPSController {
	fc := &FPSController{
		Sensitivity: defaultSensitivity,
		MoveSpeed:   defaultMoveSpeed,
		Camera:      cam,
		near:        defaultNear,
		far:         defaultFar,
	}
	fc.SetViewport(viewportW, viewportH)
	return fc
}

// SetViewport updates the projection aspect ratio.
func (fc *FPSController) SetViewport(w, h int) {
	if w < 1 || h < 1 {
		return
	}
	fc.aspect = float32(w) / float32(h)
}

// OnPointerMoved turns absolute cursor positions into look deltas. The
// first sample only seeds the reference point; applying it would snap
// the view by the distance between the cursor spawn and the viewport
// center. The y offset is inverted because screen y grows downward
// while pitch-up is positive.
func (fc *FPSController) OnPointerMoved(x, y float64) {
	if !fc.hasPointer {
		fc.lastX, fc.lastY = float32(x), float32(y)
		fc.hasPointer = true
		return
	}

	dx := float32(x) - fc.lastX
	dy := fc.lastY - float32(y)
	fc.lastX, fc.lastY = float32(x), float32(y)

	fc.Camera.ApplyLookDelta(dx, dy, fc.Sensitivity)
}

// Update applies one tick of movement from the currently held keys and
// requests a window close on Escape. Each held direction contributes a
// full speed*dt step; holding two at once therefore moves faster than
// either alone, matching the classic fly-camera behavior.
func (fc *FPSController) Update(e *core.Engine, dt float32) {
	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}

	speed := fc.MoveSpeed * dt
	if e.Input.IsKeyDown(core.KeyW) {
		fc.Camera.Translate(MoveForward, speed)
	}
	if e.Input.IsKeyDown(core.KeyS) {
		fc.Camera.Translate(MoveBackward, speed)
	}
	if e.Input.IsKeyDown(core.KeyA) {
		fc.Camera.Translate(MoveLeft, speed)
	}
	if e.Input.IsKeyDown(core.KeyD) {
		fc.Camera.Translate(MoveRight, speed)
	}
}

// Matrices derives the view/projection pair for the current frame. Both
// are recomputed on every call so they always describe the same pose;
// the projection only changes when the viewport or zoom does.
func (fc *FPSController) Matrices() (view, projection mgl32.Mat4) {
	view = fc.Camera.ViewMatrix()
	projection = mgl32.Perspective(mgl32.DegToRad(fc.Camera.Zoom()), fc.aspect, fc.near, fc.far)
	return view, projection
}

// OnEvent routes engine events the controller cares about.
func (fc *FPSController) OnEvent(ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventMouseMove:
		fc.OnPointerMoved(v.X, v.Y)
		return true
	case core.EventResize:
		fc.SetViewport(v.W, v.H)
	}
	return false
}
