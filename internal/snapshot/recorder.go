package snapshot

import (
	"slices"

	"cube-of-cubes/internal/cube"
)

// Face is one live face handed out by a Recorder.
type Face struct {
	Handle cube.FaceHandle
	Side   cube.Side
	Pos    cube.Coord
}

// Recorder is a cube.Renderer that keeps every live face in memory so it can
// be inspected or rasterised later.
type Recorder struct {
	next      cube.FaceHandle
	live      map[cube.FaceHandle]Face
	created   int
	destroyed int
}

func NewRecorder() *Recorder {
	return &Recorder{live: make(map[cube.FaceHandle]Face)}
}

func (r *Recorder) CreateFace(side cube.Side, pos cube.Coord) cube.FaceHandle {
	r.next++
	r.live[r.next] = Face{Handle: r.next, Side: side, Pos: pos}
	r.created++
	return r.next
}

func (r *Recorder) DestroyFace(h cube.FaceHandle) {
	if _, ok := r.live[h]; !ok {
		return
	}
	delete(r.live, h)
	r.destroyed++
}

// Len returns the number of live faces.
func (r *Recorder) Len() int { return len(r.live) }

// Created and Destroyed count calls that changed the live set.
func (r *Recorder) Created() int   { return r.created }
func (r *Recorder) Destroyed() int { return r.destroyed }

// Face returns the live face behind h.
func (r *Recorder) Face(h cube.FaceHandle) (Face, bool) {
	f, ok := r.live[h]
	return f, ok
}

// Faces returns the live faces in creation order.
func (r *Recorder) Faces() []Face {
	out := make([]Face, 0, len(r.live))
	for _, f := range r.live {
		out = append(out, f)
	}
	slices.SortFunc(out, func(a, b Face) int { return int(a.Handle) - int(b.Handle) })
	return out
}

// Capture returns a Recorder holding the faces g currently has turned on.
// The grid keeps its own renderer; the copy is detached from later edits.
func Capture(g *cube.Grid) *Recorder {
	r := NewRecorder()
	for cell := range g.Cells() {
		for s := range cell.VisibleSides().Sides() {
			r.CreateFace(s, cell.Coord)
		}
	}
	return r
}
