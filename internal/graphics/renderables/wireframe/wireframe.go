package wireframe

import (
	"cube-of-cubes/internal/config"
	"cube-of-cubes/internal/cube"
	"cube-of-cubes/internal/graphics"
	renderer "cube-of-cubes/internal/graphics/renderer"
	"cube-of-cubes/internal/meshing"
	"cube-of-cubes/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	VertShader = "wireframe/wireframe.vert"
	FragShader = "wireframe/wireframe.frag"
)

// Cube wireframe vertices (12 edges)
var cubeEdges = []float32{
	// Front face
	-0.5, -0.5, 0.5, 0.5, -0.5, 0.5,
	0.5, -0.5, 0.5, 0.5, 0.5, 0.5,
	0.5, 0.5, 0.5, -0.5, 0.5, 0.5,
	-0.5, 0.5, 0.5, -0.5, -0.5, 0.5,

	// Back face
	-0.5, -0.5, -0.5, 0.5, -0.5, -0.5,
	0.5, -0.5, -0.5, 0.5, 0.5, -0.5,
	0.5, 0.5, -0.5, -0.5, 0.5, -0.5,
	-0.5, 0.5, -0.5, -0.5, -0.5, -0.5,

	// Connecting edges
	-0.5, -0.5, 0.5, -0.5, -0.5, -0.5,
	0.5, -0.5, 0.5, 0.5, -0.5, -0.5,
	0.5, 0.5, 0.5, 0.5, 0.5, -0.5,
	-0.5, 0.5, 0.5, -0.5, 0.5, -0.5,
}

// Wireframe outlines the hovered cell and, when wireframe mode is on, the
// merged quads of the current surface.
type Wireframe struct {
	shader *graphics.Shader
	faces  *meshing.FaceInstances

	boxVAO uint32
	boxVBO uint32

	meshVAO   uint32
	meshVBO   uint32
	meshVerts int32
	meshGen   uint64
}

// NewWireframe creates a new wireframe renderable. faces supplies the change
// generation that decides when the merged mesh is rebuilt.
func NewWireframe(faces *meshing.FaceInstances) *Wireframe {
	return &Wireframe{faces: faces}
}

// Init initializes the wireframe rendering system
func (w *Wireframe) Init() error {
	var err error
	w.shader, err = graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return err
	}

	w.setupBoxVAO()
	w.setupMeshVAO()
	w.meshGen = ^uint64(0)
	return nil
}

// Render draws the outlines
func (w *Wireframe) Render(ctx renderer.RenderContext) {
	w.shader.Use()
	w.shader.SetMatrix4("proj", &ctx.Proj[0])
	w.shader.SetMatrix4("view", &ctx.View[0])

	if config.GetWireframe() {
		func() {
			defer profiling.Track("renderer.renderMergedMesh")()
			w.renderMergedMesh(ctx.Grid)
		}()
	}
	if ctx.Hover.Hit {
		func() {
			defer profiling.Track("renderer.renderHoveredCell")()
			w.renderHoveredCell(ctx.Hover.HitPosition)
		}()
	}
}

// Dispose cleans up OpenGL resources
func (w *Wireframe) Dispose() {
	for _, vao := range []*uint32{&w.boxVAO, &w.meshVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
		}
	}
	for _, vbo := range []*uint32{&w.boxVBO, &w.meshVBO} {
		if *vbo != 0 {
			gl.DeleteBuffers(1, vbo)
		}
	}
	if w.shader != nil {
		w.shader.Delete()
	}
}

func (w *Wireframe) SetViewport(width, height int) {}

func (w *Wireframe) setupBoxVAO() {
	gl.GenVertexArrays(1, &w.boxVAO)
	gl.BindVertexArray(w.boxVAO)

	gl.GenBuffers(1, &w.boxVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.boxVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(cubeEdges)*4, gl.Ptr(cubeEdges), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
}

func (w *Wireframe) setupMeshVAO() {
	gl.GenVertexArrays(1, &w.meshVAO)
	gl.BindVertexArray(w.meshVAO)

	gl.GenBuffers(1, &w.meshVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.meshVBO)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, meshing.VertexStride*4, 0)
}

func (w *Wireframe) renderMergedMesh(g *cube.Grid) {
	if gen := w.faces.Generation(); gen != w.meshGen {
		verts := meshing.BuildGreedyMesh(g)
		gl.BindBuffer(gl.ARRAY_BUFFER, w.meshVBO)
		if len(verts) > 0 {
			gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.DYNAMIC_DRAW)
		}
		w.meshVerts = int32(len(verts) / meshing.VertexStride)
		w.meshGen = gen
	}
	if w.meshVerts == 0 {
		return
	}

	model := mgl32.Ident4()
	w.shader.SetMatrix4("model", &model[0])
	w.shader.SetVector3("color", mgl32.Vec3{1, 1, 1})
	w.shader.SetFloat("alpha", 0.6)

	gl.BindVertexArray(w.meshVAO)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	gl.Enable(gl.POLYGON_OFFSET_LINE)
	gl.PolygonOffset(-1, -1)
	gl.DrawArrays(gl.TRIANGLES, 0, w.meshVerts)
	gl.Disable(gl.POLYGON_OFFSET_LINE)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

func (w *Wireframe) renderHoveredCell(pos cube.Coord) {
	model := mgl32.Translate3D(float32(pos.X), float32(pos.Y), float32(pos.Z)).
		Mul4(mgl32.Scale3D(1.01, 1.01, 1.01))
	w.shader.SetMatrix4("model", &model[0])
	w.shader.SetVector3("color", mgl32.Vec3{0, 0, 0}) // Black outline
	w.shader.SetFloat("alpha", 1)

	gl.BindVertexArray(w.boxVAO)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINES, 0, int32(len(cubeEdges)/3))
}
