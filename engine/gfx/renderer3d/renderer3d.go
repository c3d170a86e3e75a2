package renderer3d

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pbakken/stride/engine/colors"
	"github.com/pbakken/stride/engine/core"
)

// Vertex: pos3 + color3 => 6 floats
const vStride = 6

var sceneVertexLayout = core.VertexLayout{
	Stride: vStride * 4,
	Attributes: []core.VertexAttrib{
		{Location: 0, Size: 3, Type: core.AttribFloat32, Offset: 0},     // pos
		{Location: 1, Size: 3, Type: core.AttribFloat32, Offset: 3 * 4}, // color
	},
}

// Uniform names the shader program exposes for the camera matrices.
const (
	viewUniform       = "view"
	projectionUniform = "projection"
)

// SceneRenderer draws a static walkthrough scene (a ground slab plus a
// few boxes around the origin) under the camera's view/projection pair.
type SceneRenderer struct {
	r        core.Renderer
	pipe     core.Pipeline
	mesh     core.Mesh
	uniforms map[string]any
}

// New compiles the shader pipeline and uploads the scene mesh once.
func New(r core.Renderer, vertSrc, fragSrc string) (*SceneRenderer, error) {
	pipe, err := r.CreatePipeline(core.PipelineDesc{
		VertexSource:   vertSrc,
		FragmentSource: fragSrc,
		DepthTest:      true,
		Blend:          false,
	})
	if err != nil {
		return nil, err
	}

	verts, inds := buildScene()
	mesh, err := r.CreateMesh(core.MeshDesc{
		Vertices: verts,
		Indices:  inds,
		Layout:   sceneVertexLayout,
	})
	if err != nil {
		return nil, err
	}

	return &SceneRenderer{
		r:        r,
		pipe:     pipe,
		mesh:     mesh,
		uniforms: make(map[string]any, 2),
	}, nil
}

// Draw uploads the matrix pair verbatim and issues the frame's draw
// call. Both uniforms are re-sent every frame so they always describe
// the same camera pose.
func (sr *SceneRenderer) Draw(view, projection mgl32.Mat4) {
	sr.uniforms[viewUniform] = [16]float32(view)
	sr.uniforms[projectionUniform] = [16]float32(projection)

	sr.r.Draw(core.DrawCmd{
		Pipe:     sr.pipe,
		Mesh:     sr.mesh,
		Uniforms: sr.uniforms,
	})
}

// --- scene geometry ---

func buildScene() (verts []float32, inds []uint32) {
	b := &meshBuilder{}

	// Checkered ground, 20x20 units centered on the origin.
	const tiles = 10
	const tile = 2.0
	for i := 0; i < tiles; i++ {
		for j := 0; j < tiles; j++ {
			x := float32(i-tiles/2) * tile
			z := float32(j-tiles/2) * tile
			c := colors.Slate
			if (i+j)%2 == 0 {
				c = colors.Sand
			}
			b.addQuadXZ(x, z, tile, c)
		}
	}

	// A few boxes for the default pose to frame.
	b.addBox(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{2, 2, 2}, colors.Red)
	b.addBox(mgl32.Vec3{-4, 0.75, -2}, mgl32.Vec3{1.5, 1.5, 1.5}, colors.Green)
	b.addBox(mgl32.Vec3{4, 0.5, 2}, mgl32.Vec3{1, 1, 1}, colors.Blue)
	b.addBox(mgl32.Vec3{2, 0.5, -5}, mgl32.Vec3{1, 1, 3}, colors.Yellow)

	return b.verts, b.inds
}

type meshBuilder struct {
	verts []float32
	inds  []uint32
}

func (b *meshBuilder) vertex(p mgl32.Vec3, c colors.Color) {
	b.verts = append(b.verts, p.X(), p.Y(), p.Z(), c[0], c[1], c[2])
}

// addQuadXZ appends a ground quad at y=0 with min corner (x, z) and the
// given edge length.
func (b *meshBuilder) addQuadXZ(x, z, size float32, c colors.Color) {
	start := uint32(len(b.verts) / vStride)
	b.vertex(mgl32.Vec3{x, 0, z}, c)
	b.vertex(mgl32.Vec3{x + size, 0, z}, c)
	b.vertex(mgl32.Vec3{x + size, 0, z + size}, c)
	b.vertex(mgl32.Vec3{x, 0, z + size}, c)
	b.inds = append(b.inds,
		start+0, start+2, start+1,
		start+0, start+3, start+2,
	)
}

// addBox appends an axis-aligned box centered at center. Faces get a
// slight per-face shade so edges read without lighting.
func (b *meshBuilder) addBox(center, size mgl32.Vec3, c colors.Color) {
	h := size.Mul(0.5)
	min := center.Sub(h)
	max := center.Add(h)

	corners := [8]mgl32.Vec3{
		{min.X(), min.Y(), min.Z()},
		{max.X(), min.Y(), min.Z()},
		{max.X(), max.Y(), min.Z()},
		{min.X(), max.Y(), min.Z()},
		{min.X(), min.Y(), max.Z()},
		{max.X(), min.Y(), max.Z()},
		{max.X(), max.Y(), max.Z()},
		{min.X(), max.Y(), max.Z()},
	}

	faces := [6]struct {
		idx   [4]int
		shade float32
	}{
		{[4]int{4, 5, 6, 7}, 1.0}, // front (+z)
		{[4]int{1, 0, 3, 2}, 0.6}, // back (-z)
		{[4]int{0, 4, 7, 3}, 0.8}, // left (-x)
		{[4]int{5, 1, 2, 6}, 0.8}, // right (+x)
		{[4]int{7, 6, 2, 3}, 0.9}, // top (+y)
		{[4]int{0, 1, 5, 4}, 0.5}, // bottom (-y)
	}

	for _, f := range faces {
		shaded := colors.Color{c[0] * f.shade, c[1] * f.shade, c[2] * f.shade, c[3]}
		start := uint32(len(b.verts) / vStride)
		for _, i := range f.idx {
			b.vertex(corners[i], shaded)
		}
		b.inds = append(b.inds,
			start+0, start+1, start+2,
			start+0, start+2, start+3,
		)
	}
}
