package cube

import (
	"errors"
	"fmt"
	"iter"
	"log"

	"cube-of-cubes/internal/profiling"
)

// Grid is a cube of voxels spanning every coordinate whose layer is below
// Radius. It keeps the faces of occupied voxels in sync with their neighbours:
// a face is visible iff the voxel next to it is empty or outside the grid.
//
// Grid is not safe for concurrent use.
type Grid struct {
	store     store
	layers    []int // occupied count per shell
	renderer  Renderer
	behaviour SizeChangeBehaviour
	logger    *log.Logger
}

// Option configures a Grid.
type Option func(*Grid)

// WithRenderer routes face creation and destruction to r.
func WithRenderer(r Renderer) Option {
	return func(g *Grid) { g.renderer = r }
}

// WithSizeChangeBehaviour sets the policy applied to unwanted Expand/Shrink calls.
func WithSizeChangeBehaviour(b SizeChangeBehaviour) Option {
	return func(g *Grid) { g.behaviour = b }
}

// WithLogger sets the logger used by the Warning and Error behaviours.
func WithLogger(l *log.Logger) Option {
	return func(g *Grid) { g.logger = l }
}

// WithNestedStorage backs the grid with three nested two-way lists instead of
// a flat arena.
func WithNestedStorage() Option {
	return func(g *Grid) { g.store = newNestedStore() }
}

// New builds a grid of the given radius with every cell occupied and the
// faces of the outer shell turned on.
func New(initialRadius int, opts ...Option) (*Grid, error) {
	if initialRadius < 0 {
		return nil, fmt.Errorf("initial radius %d must not be negative: %w", initialRadius, ErrInvalidArgument)
	}
	g := &Grid{
		renderer:  NopRenderer{},
		behaviour: Fail,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.store == nil {
		g.store = newFlatStore()
	}

	for range initialRadius {
		g.store.grow()
	}
	for c := range Volume(initialRadius) {
		*g.store.at(c) = slot{occupied: true, cell: Cell{Coord: c}}
	}
	g.layers = make([]int, initialRadius)
	for k := range g.layers {
		g.layers[k] = LayerMaxCapacity(k)
	}
	if initialRadius > 0 {
		for c := range Shell(initialRadius - 1) {
			g.updateSides(c)
		}
	}
	return g, nil
}

// Radius returns the number of shells the grid spans.
func (g *Grid) Radius() int { return g.store.radius() }

// SizeChangeBehaviour returns the current size-change policy.
func (g *Grid) SizeChangeBehaviour() SizeChangeBehaviour { return g.behaviour }

// SetSizeChangeBehaviour replaces the size-change policy.
func (g *Grid) SetSizeChangeBehaviour(b SizeChangeBehaviour) { g.behaviour = b }

// InRange reports whether c lies inside the current radius.
func (g *Grid) InRange(c Coord) bool { return c.Layer() < g.Radius() }

func (g *Grid) outOfRange(op string, c Coord) error {
	return fmt.Errorf("%s (%d, %d, %d) with radius %d: %w", op, c.X, c.Y, c.Z, g.Radius(), ErrIndexOutOfRange)
}

// GetCell returns the slot at (x, y, z). The bool is false when the slot is
// empty; the error is set when the coordinate is out of range.
func (g *Grid) GetCell(x, y, z int) (Cell, bool, error) {
	c := Coord{x, y, z}
	if !g.InRange(c) {
		return Cell{}, false, g.outOfRange("get cell", c)
	}
	s := g.store.at(c)
	return s.cell, s.occupied, nil
}

// TryGetCell returns the cell at (x, y, z) if it is in range and occupied.
func (g *Grid) TryGetCell(x, y, z int) (Cell, bool) {
	c := Coord{x, y, z}
	if !g.InRange(c) {
		return Cell{}, false
	}
	s := g.store.at(c)
	return s.cell, s.occupied
}

// IsOccupied reports whether (x, y, z) is in range and holds a cell.
func (g *Grid) IsOccupied(x, y, z int) bool {
	_, ok := g.TryGetCell(x, y, z)
	return ok
}

func (g *Grid) occupied(c Coord) bool {
	return g.InRange(c) && g.store.at(c).occupied
}

// SetCell makes (x, y, z) occupied or empty and updates the faces of that
// coordinate and its six neighbours. Setting the current state is a no-op.
func (g *Grid) SetCell(x, y, z int, occupied bool) error {
	c := Coord{x, y, z}
	if !g.InRange(c) {
		return g.outOfRange("set cell", c)
	}
	s := g.store.at(c)
	if s.occupied == occupied {
		return nil
	}
	defer profiling.Track("cube.SetCell")()

	if occupied {
		*s = slot{occupied: true, cell: Cell{Coord: c}}
		g.updateSides(c)
		g.layers[c.Layer()]++
	} else {
		s.cell.clearSides(g.renderer)
		*s = slot{}
		g.layers[c.Layer()]--
	}
	g.updateNeighbourSides(c, !occupied)
	return nil
}

// TrySetCell is SetCell that reports false instead of failing when the
// coordinate is out of range.
func (g *Grid) TrySetCell(x, y, z int, occupied bool) bool {
	return g.SetCell(x, y, z, occupied) == nil
}

// Carve empties every listed coordinate. Out of range coordinates are skipped
// and reported together.
func (g *Grid) Carve(coords ...Coord) error {
	var errs []error
	for _, c := range coords {
		if err := g.SetCell(c.X, c.Y, c.Z, false); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// updateSides recomputes every face of the cell at c from its neighbours.
func (g *Grid) updateSides(c Coord) {
	s := g.store.at(c)
	if !s.occupied {
		return
	}
	for _, side := range Sides {
		s.cell.turnSide(g.renderer, side, !g.occupied(c.Neighbor(side)))
	}
}

// updateNeighbourSides flips the face of each occupied neighbour that points
// back at c.
func (g *Grid) updateNeighbourSides(c Coord, visible bool) {
	for _, side := range Sides {
		n := c.Neighbor(side)
		if !g.InRange(n) {
			continue
		}
		ns := g.store.at(n)
		if ns.occupied {
			ns.cell.turnSide(g.renderer, side.Opposite(), visible)
		}
	}
}

// LayerOccupancy returns the number of occupied cells in shell k, or 0 when k
// is outside the grid.
func (g *Grid) LayerOccupancy(k int) int {
	if k < 0 || k >= len(g.layers) {
		return 0
	}
	return g.layers[k]
}

// OccupiedCount returns the number of occupied cells.
func (g *Grid) OccupiedCount() int {
	n := 0
	for _, v := range g.layers {
		n += v
	}
	return n
}

// LastLayerFull reports whether the outer shell is completely occupied. It
// is vacuously true for an empty grid.
func (g *Grid) LastLayerFull() bool {
	r := g.Radius()
	if r == 0 {
		return true
	}
	return g.layers[r-1] == LayerMaxCapacity(r-1)
}

// ShouldExpand is LastLayerFull.
func (g *Grid) ShouldExpand() bool { return g.LastLayerFull() }

// LastLayerEmpty reports whether the outer shell has no occupied cells. It is
// false for an empty grid since there is nothing to shrink.
func (g *Grid) LastLayerEmpty() bool {
	r := g.Radius()
	if r == 0 {
		return false
	}
	return g.layers[r-1] == 0
}

// CanShrink is LastLayerEmpty.
func (g *Grid) CanShrink() bool { return g.LastLayerEmpty() }

// Expand adds an empty outer shell and returns the new radius.
func (g *Grid) Expand() (int, error) {
	if !g.ShouldExpand() {
		if err := g.behaviour.report(g.logger, "expanded cube when the outermost layer is not full"); err != nil {
			return g.Radius(), err
		}
	}
	defer profiling.Track("cube.Expand")()
	g.store.grow()
	g.layers = append(g.layers, 0)
	return g.Radius(), nil
}

// Shrink drops the outer shell and returns the new radius. Shrinking an empty
// grid does nothing. When the policy lets a non-empty shell go, its faces are
// released and the cells left on the new boundary show their outward faces.
func (g *Grid) Shrink() (int, error) {
	r := g.Radius()
	if r == 0 {
		return 0, nil
	}
	if !g.CanShrink() {
		if err := g.behaviour.report(g.logger, "shrank cube when the outermost layer is not empty"); err != nil {
			return r, err
		}
	}
	defer profiling.Track("cube.Shrink")()

	dropped := g.layers[r-1] > 0
	if dropped {
		for c := range Shell(r - 1) {
			g.store.at(c).cell.clearSides(g.renderer)
		}
	}
	g.store.shrink()
	g.layers = g.layers[:r-1]
	if dropped && r > 1 {
		for c := range Shell(r - 2) {
			g.updateSides(c)
		}
	}
	return g.Radius(), nil
}

// ExpandIfFull expands only when the outer shell is full.
func (g *Grid) ExpandIfFull() (int, bool) {
	if !g.ShouldExpand() {
		return g.Radius(), false
	}
	r, _ := g.Expand()
	return r, true
}

// ExpandToInclude expands until c is in range and returns the new radius.
// It stops at the first expansion the size-change policy refuses.
func (g *Grid) ExpandToInclude(c Coord) (int, error) {
	for !g.InRange(c) {
		if _, err := g.Expand(); err != nil {
			return g.Radius(), fmt.Errorf("include (%d, %d, %d): %w", c.X, c.Y, c.Z, err)
		}
	}
	return g.Radius(), nil
}

// ShrinkWhileEmpty drops empty outer shells until the outer shell holds a
// cell or the grid is empty, and returns the new radius.
func (g *Grid) ShrinkWhileEmpty() int {
	for g.CanShrink() {
		g.Shrink()
	}
	return g.Radius()
}

// Cells yields every occupied cell, x-major.
func (g *Grid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for c := range Volume(g.Radius()) {
			s := g.store.at(c)
			if s.occupied && !yield(s.cell) {
				return
			}
		}
	}
}

// VisibleFaceCount returns the number of faces currently turned on.
func (g *Grid) VisibleFaceCount() int {
	n := 0
	for cell := range g.Cells() {
		n += cell.visible.Len()
	}
	return n
}
