package core

import "testing"

func TestInputLatchesKeys(t *testing.T) {
	in := NewInput()

	if in.IsKeyDown(KeyW) {
		t.Fatal("keys should start released")
	}

	in.Handle(EventKey{Key: KeyW, Down: true})
	in.Handle(EventKey{Key: KeyA, Down: true})
	if !in.IsKeyDown(KeyW) || !in.IsKeyDown(KeyA) {
		t.Fatal("held keys should latch down")
	}

	in.Handle(EventKey{Key: KeyW, Down: false})
	if in.IsKeyDown(KeyW) {
		t.Fatal("released key should latch up")
	}
	if !in.IsKeyDown(KeyA) {
		t.Fatal("release of one key should not affect another")
	}
}

func TestInputTracksMouse(t *testing.T) {
	in := NewInput()

	in.Handle(EventMouseMove{X: 12.5, Y: 48})
	x, y := in.Mouse()
	if x != 12.5 || y != 48 {
		t.Fatalf("mouse = (%v, %v), want (12.5, 48)", x, y)
	}
}
