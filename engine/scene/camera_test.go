package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func vecNear(t *testing.T, got, want mgl32.Vec3, msg string) {
	t.Helper()
	for i := 0; i < 3; i++ {
		if math.Abs(float64(got[i]-want[i])) > eps {
			t.Fatalf("%s: got %v, want %v", msg, got, want)
		}
	}
}

func TestPitchStaysClamped(t *testing.T) {
	c := NewDefaultCamera()

	// Arbitrary mix of large and small deltas in both directions.
	deltas := []float32{5000, -12000, 3, -3, 90000, -0.5, 40000, -90000}
	for _, dy := range deltas {
		c.ApplyLookDelta(0, dy, 1)
		if c.Pitch() > 89 || c.Pitch() < -89 {
			t.Fatalf("pitch %v escaped [-89,89] after delta %v", c.Pitch(), dy)
		}
	}

	c.ApplyLookDelta(0, 1e9, 1)
	if c.Pitch() != 89 {
		t.Fatalf("pitch should saturate at 89, got %v", c.Pitch())
	}
	c.ApplyLookDelta(0, -1e9, 1)
	if c.Pitch() != -89 {
		t.Fatalf("pitch should saturate at -89, got %v", c.Pitch())
	}
}

func TestFrontStaysUnitLength(t *testing.T) {
	c := NewDefaultCamera()

	deltas := [][2]float32{{10, 0}, {-370, 45}, {0.3, -0.7}, {7200, 7200}, {-13, -500}, {0, 0}}
	for _, d := range deltas {
		c.ApplyLookDelta(d[0], d[1], 0.1)
		if l := c.Front().Len(); math.Abs(float64(l)-1) > eps {
			t.Fatalf("front length %v after delta %v", l, d)
		}
	}
}

func TestFrontDerivedFromAngles(t *testing.T) {
	c := NewDefaultCamera()
	c.ApplyLookDelta(123, -45, 0.1)

	yaw := float64(mgl32.DegToRad(c.Yaw()))
	pitch := float64(mgl32.DegToRad(c.Pitch()))
	want := mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()

	vecNear(t, c.Front(), want, "front out of sync with yaw/pitch")
}

func TestTranslateAxes(t *testing.T) {
	c := NewDefaultCamera()
	start := c.Position()

	c.Translate(MoveForward, 2)
	vecNear(t, c.Position(), start.Add(c.Front().Mul(2)), "forward")

	c.Translate(MoveBackward, 2)
	vecNear(t, c.Position(), start, "backward should undo forward")

	right := c.Front().Cross(c.Up()).Normalize()
	c.Translate(MoveRight, 3)
	vecNear(t, c.Position(), start.Add(right.Mul(3)), "right")

	c.Translate(MoveLeft, 3)
	vecNear(t, c.Position(), start, "left should undo right")
}

func TestDefaultPoseViewMatrix(t *testing.T) {
	c := NewDefaultCamera()

	pos := mgl32.Vec3{0, 5, 12}
	target := pos.Add(mgl32.Vec3{0, -0.5, -2})
	want := mgl32.LookAtV(pos, target, mgl32.Vec3{0, 1, 0})

	got := c.ViewMatrix()
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > eps {
			t.Fatalf("view[%d] = %v, want %v\ngot:\n%v\nwant:\n%v", i, got[i], want[i], got, want)
		}
	}
}

func TestUpIsFixedWorldUp(t *testing.T) {
	c := NewDefaultCamera()
	c.ApplyLookDelta(400, -80, 0.1)
	c.Translate(MoveForward, 10)

	if c.Up() != (mgl32.Vec3{0, 1, 0}) {
		t.Fatalf("up drifted to %v", c.Up())
	}
}
