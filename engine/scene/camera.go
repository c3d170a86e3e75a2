package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MoveDirection selects a translation axis relative to the camera.
type MoveDirection int

const (
	MoveForward MoveDirection = iota
	MoveBackward
	MoveLeft
	MoveRight
)

// Pitch is clamped short of the poles so front never becomes parallel
// with the world up, which would degenerate the right-vector cross product.
const (
	pitchLimit  float32 = 89
	defaultZoom float32 = 80 // vertical FOV in degrees
)

var (
	worldUp      = mgl32.Vec3{0, 1, 0}
	defaultPos   = mgl32.Vec3{0, 5, 12}
	defaultFront = mgl32.Vec3{0, -0.5, -2}
)

// Camera is a first-person fly camera: a world-space position plus
// yaw/pitch euler angles in degrees. The front vector is derived from
// the angles and only ever written by updateVectors, so it cannot drift
// out of sync with them. Up stays the fixed world up.
type Camera struct {
	position   mgl32.Vec3
	front, up  mgl32.Vec3
	yaw, pitch float32 // degrees
	zoom       float32 // vertical FOV in degrees, fixed after construction
}

// NewCamera derives yaw/pitch from the given (not necessarily unit)
// front direction, then rebuilds front through the normal update path.
func NewCamera(position, front mgl32.Vec3, zoom float32) *Camera {
	f := front.Normalize()
	c := &Camera{
		position: position,
		up:       worldUp,
		yaw:      mgl32.RadToDeg(float32(math.Atan2(float64(f.Z()), float64(f.X())))),
		pitch:    mgl32.RadToDeg(float32(math.Asin(float64(f.Y())))),
		zoom:     zoom,
	}
	c.updateVectors()
	return c
}

// NewDefaultCamera places the camera above and behind the origin,
// looking slightly downward.
func NewDefaultCamera() *Camera {
	return NewCamera(defaultPos, defaultFront, defaultZoom)
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Front() mgl32.Vec3    { return c.front }
func (c *Camera) Up() mgl32.Vec3       { return c.up }
func (c *Camera) Yaw() float32         { return c.yaw }
func (c *Camera) Pitch() float32       { return c.pitch }
func (c *Camera) Zoom() float32        { return c.zoom }

// ViewMatrix returns the right-handed look-at transform for the current
// pose. Pure; no state is touched.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ApplyLookDelta accumulates a pointer offset (pixels) into yaw/pitch,
// clamps pitch and rebuilds the front vector. This is the only way
// orientation changes.
func (c *Camera) ApplyLookDelta(dx, dy, sensitivity float32) {
	c.yaw += dx * sensitivity
	c.pitch += dy * sensitivity

	if c.pitch > pitchLimit {
		c.pitch = pitchLimit
	}
	if c.pitch < -pitchLimit {
		c.pitch = -pitchLimit
	}

	c.updateVectors()
}

// Translate moves the position along the camera-relative axis. Lateral
// movement follows the right vector, reconstructed from front and up so
// it tracks the current heading. Positions are unbounded.
func (c *Camera) Translate(dir MoveDirection, dist float32) {
	switch dir {
	case MoveForward:
		c.position = c.position.Add(c.front.Mul(dist))
	case MoveBackward:
		c.position = c.position.Sub(c.front.Mul(dist))
	case MoveLeft:
		c.position = c.position.Sub(c.front.Cross(c.up).Normalize().Mul(dist))
	case MoveRight:
		c.position = c.position.Add(c.front.Cross(c.up).Normalize().Mul(dist))
	}
}

func (c *Camera) updateVectors() {
	yaw := float64(mgl32.DegToRad(c.yaw))
	pitch := float64(mgl32.DegToRad(c.pitch))
	front := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}
	c.front = front.Normalize()
}
