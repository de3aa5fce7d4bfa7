package faces

import (
	"cube-of-cubes/internal/cube"
	"cube-of-cubes/internal/graphics"
	renderer "cube-of-cubes/internal/graphics/renderer"
	"cube-of-cubes/internal/meshing"
	"cube-of-cubes/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	VertShader = "faces/faces.vert"
	FragShader = "faces/faces.frag"
)

// SideColors is the base colour of each side before lighting
var SideColors = [...]mgl32.Vec3{
	cube.Right: {0.86, 0.36, 0.33},
	cube.Left:  {0.62, 0.24, 0.22},
	cube.Up:    {0.45, 0.78, 0.40},
	cube.Down:  {0.29, 0.52, 0.26},
	cube.Front: {0.36, 0.55, 0.88},
	cube.Back:  {0.24, 0.37, 0.62},
}

var sideUniforms = [...]string{
	cube.Right: "faceColorRight",
	cube.Left:  "faceColorLeft",
	cube.Up:    "faceColorUp",
	cube.Down:  "faceColorDown",
	cube.Front: "faceColorFront",
	cube.Back:  "faceColorBack",
}

// Faces draws every visible face as one instanced quad. The embedded
// FaceInstances is the cube.Renderer handed to the grid.
type Faces struct {
	*meshing.FaceInstances

	shader      *graphics.Shader
	vao         uint32
	quadVBO     uint32
	instanceVBO uint32
	capacity    int    // instances the GPU buffer can hold
	uploaded    uint64 // generation last sent to the GPU
}

// NewFaces creates a new faces renderable. It can receive faces before Init.
func NewFaces() *Faces {
	return &Faces{FaceInstances: meshing.NewFaceInstances()}
}

// Init compiles the shader and sets up the quad and instance buffers
func (f *Faces) Init() error {
	var err error
	f.shader, err = graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return err
	}

	// Set static face colors once after linking
	f.shader.Use()
	for _, s := range cube.Sides {
		f.shader.SetVector3(sideUniforms[s], SideColors[s])
	}
	f.shader.SetVector3("lightDir", mgl32.Vec3{-0.4, -1.0, -0.6}.Normalize())

	f.setupVAO()
	f.uploaded = ^uint64(0)
	return nil
}

// Render uploads changed instances and draws them
func (f *Faces) Render(ctx renderer.RenderContext) {
	if f.Generation() != f.uploaded {
		func() {
			defer profiling.Track("renderer.faces.upload")()
			f.upload()
		}()
	}
	if f.Len() == 0 {
		return
	}
	defer profiling.Track("renderer.faces.draw")()

	f.shader.Use()
	f.shader.SetMatrix4("proj", &ctx.Proj[0])
	f.shader.SetMatrix4("view", &ctx.View[0])

	gl.BindVertexArray(f.vao)
	gl.DrawArraysInstanced(gl.TRIANGLES, 0, int32(len(meshing.QuadVertices)/3), int32(f.Len()))
}

// Dispose cleans up OpenGL resources
func (f *Faces) Dispose() {
	if f.vao != 0 {
		gl.DeleteVertexArrays(1, &f.vao)
	}
	if f.quadVBO != 0 {
		gl.DeleteBuffers(1, &f.quadVBO)
	}
	if f.instanceVBO != 0 {
		gl.DeleteBuffers(1, &f.instanceVBO)
	}
	if f.shader != nil {
		f.shader.Delete()
	}
}

func (f *Faces) SetViewport(width, height int) {}

func (f *Faces) setupVAO() {
	gl.GenVertexArrays(1, &f.vao)
	gl.BindVertexArray(f.vao)

	gl.GenBuffers(1, &f.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, f.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(meshing.QuadVertices)*4, gl.Ptr(meshing.QuadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	// Instance buffer: model matrix in locations 1-4, normal in 5
	gl.GenBuffers(1, &f.instanceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, f.instanceVBO)
	stride := int32(meshing.InstanceStride * 4)
	for col := uint32(0); col < 4; col++ {
		gl.EnableVertexAttribArray(1 + col)
		gl.VertexAttribPointerWithOffset(1+col, 4, gl.FLOAT, false, stride, uintptr(col*4*4))
		gl.VertexAttribDivisor(1+col, 1)
	}
	gl.EnableVertexAttribArray(5)
	gl.VertexAttribPointerWithOffset(5, 3, gl.FLOAT, false, stride, 16*4)
	gl.VertexAttribDivisor(5, 1)
}

func (f *Faces) upload() {
	data := f.Data()
	gl.BindBuffer(gl.ARRAY_BUFFER, f.instanceVBO)
	if n := f.Len(); n > f.capacity {
		// grow geometrically
		f.capacity = max(n, 2*f.capacity, 64)
		gl.BufferData(gl.ARRAY_BUFFER, f.capacity*meshing.InstanceStride*4, nil, gl.DYNAMIC_DRAW)
	}
	if len(data) > 0 {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data)*4, gl.Ptr(data))
	}
	f.uploaded = f.Generation()
}
