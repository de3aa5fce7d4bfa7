package meshing

import (
	"cube-of-cubes/internal/cube"

	"github.com/go-gl/mathgl/mgl32"
)

// InstanceStride is number of float32 per face instance (model mat4 + normal.xyz)
const InstanceStride = 16 + 3

// QuadVertices is a unit quad in the XY plane facing +Z, as two CCW triangles (pos.xyz).
var QuadVertices = []float32{
	-0.5, -0.5, 0,
	0.5, -0.5, 0,
	0.5, 0.5, 0,
	0.5, 0.5, 0,
	-0.5, 0.5, 0,
	-0.5, -0.5, 0,
}

// FaceInstances keeps one instance record per live face, packed without gaps
// so the buffer can be uploaded as is. It implements cube.Renderer.
type FaceInstances struct {
	next  cube.FaceHandle
	slot  map[cube.FaceHandle]int
	owner []cube.FaceHandle
	data  []float32
	gen   uint64
}

// NewFaceInstances creates an empty instance buffer.
func NewFaceInstances() *FaceInstances {
	return &FaceInstances{slot: make(map[cube.FaceHandle]int)}
}

// CreateFace appends an instance for the face on side s of the voxel at pos.
func (f *FaceInstances) CreateFace(s cube.Side, pos cube.Coord) cube.FaceHandle {
	f.next++
	h := f.next
	model := s.Transform(pos)
	n := s.Normal()
	f.slot[h] = len(f.owner)
	f.owner = append(f.owner, h)
	f.data = append(f.data, model[:]...)
	f.data = append(f.data, n[:]...)
	f.gen++
	return h
}

// DestroyFace removes the instance by moving the last one into its place.
// Unknown handles are ignored.
func (f *FaceInstances) DestroyFace(h cube.FaceHandle) {
	i, ok := f.slot[h]
	if !ok {
		return
	}
	last := len(f.owner) - 1
	if i != last {
		moved := f.owner[last]
		copy(f.data[i*InstanceStride:(i+1)*InstanceStride], f.data[last*InstanceStride:])
		f.owner[i] = moved
		f.slot[moved] = i
	}
	f.owner = f.owner[:last]
	f.data = f.data[:last*InstanceStride]
	delete(f.slot, h)
	f.gen++
}

// Len returns the number of live instances.
func (f *FaceInstances) Len() int { return len(f.owner) }

// Data returns the packed instance records. The slice is reused across calls.
func (f *FaceInstances) Data() []float32 { return f.data }

// Generation increases every time an instance is added or removed.
func (f *FaceInstances) Generation() uint64 { return f.gen }

// Model returns the model matrix recorded for h.
func (f *FaceInstances) Model(h cube.FaceHandle) (mgl32.Mat4, bool) {
	i, ok := f.slot[h]
	if !ok {
		return mgl32.Mat4{}, false
	}
	var m mgl32.Mat4
	copy(m[:], f.data[i*InstanceStride:])
	return m, true
}
