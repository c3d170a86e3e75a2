package core

// Renderer abstraction. Backends return opaque Pipeline/Mesh handles.
type Renderer interface {
	Init() error
	Resize(w, h int)
	Clear(r, g, b, a float32)
	CreatePipeline(desc PipelineDesc) (Pipeline, error)
	CreateMesh(desc MeshDesc) (Mesh, error)
	Draw(cmd DrawCmd)
	Shutdown()
}

// Pipeline is a backend shader-program handle.
type Pipeline interface{}

// Mesh is a backend vertex/index-buffer handle.
type Mesh interface{}

type PipelineDesc struct {
	VertexSource   string
	FragmentSource string
	DepthTest      bool
	Blend          bool
}

type MeshDesc struct {
	Vertices []float32
	Indices  []uint32
	Layout   VertexLayout
}

type AttribType int

const (
	AttribFloat32 AttribType = iota
)

type VertexAttrib struct {
	Location int
	Size     int
	Type     AttribType
	Offset   int
}

type VertexLayout struct {
	Stride     int // bytes
	Attributes []VertexAttrib
}

// DrawCmd draws one mesh with one pipeline. Uniform values may be
// [16]float32 (mat4), [4]float32, [3]float32, float32 or int32.
type DrawCmd struct {
	Pipe     Pipeline
	Mesh     Mesh
	Uniforms map[string]any
}
