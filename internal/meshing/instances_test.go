package meshing

import (
	"testing"

	"cube-of-cubes/internal/cube"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFaceInstancesSwapRemove(t *testing.T) {
	f := NewFaceInstances()
	a := f.CreateFace(cube.Up, cube.Coord{})
	b := f.CreateFace(cube.Left, cube.Coord{X: 1})
	c := f.CreateFace(cube.Back, cube.Coord{Z: -2})
	if f.Len() != 3 || len(f.Data()) != 3*InstanceStride {
		t.Fatalf("after 3 creates: len %d, data %d", f.Len(), len(f.Data()))
	}
	gen := f.Generation()

	f.DestroyFace(a)
	if f.Generation() == gen {
		t.Fatalf("destroy did not advance the generation")
	}
	if _, ok := f.Model(a); ok {
		t.Fatalf("destroyed handle still resolves")
	}
	for h, want := range map[cube.FaceHandle]mgl32.Mat4{
		b: cube.Left.Transform(cube.Coord{X: 1}),
		c: cube.Back.Transform(cube.Coord{Z: -2}),
	} {
		got, ok := f.Model(h)
		if !ok || !got.ApproxEqual(want) {
			t.Fatalf("handle %d: model %v, want %v", h, got, want)
		}
	}

	gen = f.Generation()
	f.DestroyFace(a)
	if f.Len() != 2 || f.Generation() != gen {
		t.Fatalf("double destroy changed len to %d", f.Len())
	}
}

func TestFaceInstancesTrackGrid(t *testing.T) {
	f := NewFaceInstances()
	g, err := cube.New(2, cube.WithRenderer(f))
	if err != nil {
		t.Fatal(err)
	}
	if f.Len() != 54 {
		t.Fatalf("3x3x3 cube: %d instances, want 54", f.Len())
	}
	if err := g.SetCell(1, 1, 1, false); err != nil {
		t.Fatal(err)
	}
	if f.Len() != g.VisibleFaceCount() {
		t.Fatalf("instances %d, visible faces %d", f.Len(), g.VisibleFaceCount())
	}
	for cell := range g.Cells() {
		for s := range cell.VisibleSides().Sides() {
			h, _ := cell.Face(s)
			m, ok := f.Model(h)
			if !ok {
				t.Fatalf("%v %v: handle %d has no instance", cell.Coord, s, h)
			}
			if !m.ApproxEqual(s.Transform(cell.Coord)) {
				t.Fatalf("%v %v: wrong model", cell.Coord, s)
			}
		}
	}
	data := f.Data()
	for i := range f.Len() {
		n := data[i*InstanceStride+16 : i*InstanceStride+19]
		if l := n[0]*n[0] + n[1]*n[1] + n[2]*n[2]; l != 1 {
			t.Fatalf("instance %d normal %v is not a unit axis", i, n)
		}
	}
}
