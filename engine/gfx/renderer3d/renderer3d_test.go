package renderer3d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pbakken/stride/engine/core"
)

// stubRenderer records pipeline/mesh creation and draw commands.
type stubRenderer struct {
	pipeDesc core.PipelineDesc
	meshDesc core.MeshDesc
	draws    []core.DrawCmd
}

func (s *stubRenderer) Init() error              { return nil }
func (s *stubRenderer) Resize(w, h int)          {}
func (s *stubRenderer) Clear(r, g, b, a float32) {}
func (s *stubRenderer) Shutdown()                {}

func (s *stubRenderer) CreatePipeline(desc core.PipelineDesc) (core.Pipeline, error) {
	s.pipeDesc = desc
	return "pipe", nil
}

func (s *stubRenderer) CreateMesh(desc core.MeshDesc) (core.Mesh, error) {
	s.meshDesc = desc
	return "mesh", nil
}

func (s *stubRenderer) Draw(cmd core.DrawCmd) {
	// Uniforms map is reused between frames; snapshot it.
	u := make(map[string]any, len(cmd.Uniforms))
	for k, v := range cmd.Uniforms {
		u[k] = v
	}
	cmd.Uniforms = u
	s.draws = append(s.draws, cmd)
}

func TestDrawUploadsViewAndProjection(t *testing.T) {
	stub := &stubRenderer{}
	sr, err := New(stub, "vs", "fs")
	if err != nil {
		t.Fatal(err)
	}

	view := mgl32.LookAtV(mgl32.Vec3{0, 5, 12}, mgl32.Vec3{0, 4.5, 10}, mgl32.Vec3{0, 1, 0})
	projection := mgl32.Perspective(mgl32.DegToRad(80), 1000.0/800.0, 0.1, 100)

	sr.Draw(view, projection)

	if len(stub.draws) != 1 {
		t.Fatalf("expected one draw call per frame, got %d", len(stub.draws))
	}
	got := stub.draws[0]
	if got.Uniforms["view"] != [16]float32(view) {
		t.Fatalf("view uniform = %v, want %v", got.Uniforms["view"], view)
	}
	if got.Uniforms["projection"] != [16]float32(projection) {
		t.Fatalf("projection uniform = %v, want %v", got.Uniforms["projection"], projection)
	}

	// Matrices are re-sent verbatim on every frame.
	sr.Draw(view, projection)
	if len(stub.draws) != 2 {
		t.Fatal("second frame should issue a second draw")
	}
	if stub.draws[1].Uniforms["view"] != got.Uniforms["view"] {
		t.Fatal("same pose should upload identical matrices")
	}
}

func TestSceneMeshIsWellFormed(t *testing.T) {
	stub := &stubRenderer{}
	if _, err := New(stub, "vs", "fs"); err != nil {
		t.Fatal(err)
	}

	if !stub.pipeDesc.DepthTest {
		t.Error("scene pipeline should depth test")
	}
	if stub.meshDesc.Layout.Stride != vStride*4 {
		t.Errorf("layout stride %d, want %d", stub.meshDesc.Layout.Stride, vStride*4)
	}
	if len(stub.meshDesc.Vertices)%vStride != 0 {
		t.Error("vertex buffer is not a whole number of vertices")
	}
	vertexCount := uint32(len(stub.meshDesc.Vertices) / vStride)
	if len(stub.meshDesc.Indices)%3 != 0 {
		t.Error("index buffer is not a whole number of triangles")
	}
	for _, idx := range stub.meshDesc.Indices {
		if idx >= vertexCount {
			t.Fatalf("index %d out of range (%d vertices)", idx, vertexCount)
		}
	}
}
