package editor

import (
	"errors"
	"fmt"
	"log"

	"cube-of-cubes/internal/config"
	"cube-of-cubes/internal/cube"
	"cube-of-cubes/internal/physics"
	"cube-of-cubes/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrNothingHovered is returned by the hovered-cell edits when the pick ray missed.
var ErrNothingHovered = errors.New("no cell under the cursor")

// Editor applies interactive edits to a grid. With auto-resize on (see
// config.GetAutoResize) placing outside the cube grows it and carving the
// last cell of a shell shrinks it.
type Editor struct {
	Grid  *cube.Grid
	Hover physics.RaycastResult

	renderer cube.Renderer
	logger   *log.Logger
}

// New wraps g. r must be the renderer g was built with so Reset can rebuild.
func New(g *cube.Grid, r cube.Renderer, logger *log.Logger) *Editor {
	if logger == nil {
		logger = log.Default()
	}
	return &Editor{Grid: g, renderer: r, logger: logger}
}

// UpdateHover casts the pick ray and records the first occupied cell it meets.
func (e *Editor) UpdateHover(origin, dir mgl32.Vec3) physics.RaycastResult {
	e.Hover = physics.Raycast(origin, dir, physics.MinReachDistance, physics.MaxReachDistance, e.Grid)
	return e.Hover
}

// CarveHovered empties the hovered cell.
func (e *Editor) CarveHovered() error {
	if !e.Hover.Hit {
		return ErrNothingHovered
	}
	return e.Carve(e.Hover.HitPosition)
}

// PlaceHovered fills the empty voxel in front of the hovered face.
func (e *Editor) PlaceHovered() error {
	if !e.Hover.Hit {
		return ErrNothingHovered
	}
	return e.Place(e.Hover.AdjacentPosition)
}

// Carve empties pos.
func (e *Editor) Carve(pos cube.Coord) error {
	defer profiling.Track("editor.Carve")()
	if err := e.Grid.SetCell(pos.X, pos.Y, pos.Z, false); err != nil {
		return err
	}
	e.Hover.Hit = false
	if config.GetAutoResize() {
		e.Grid.ShrinkWhileEmpty()
	}
	return nil
}

// Place fills pos, growing the grid first when pos lies outside it.
func (e *Editor) Place(pos cube.Coord) error {
	defer profiling.Track("editor.Place")()
	autoResize := config.GetAutoResize()
	if !e.Grid.InRange(pos) {
		if !autoResize {
			return fmt.Errorf("place (%d, %d, %d) outside radius %d with auto-resize off: %w",
				pos.X, pos.Y, pos.Z, e.Grid.Radius(), cube.ErrIndexOutOfRange)
		}
		if _, err := e.Grid.ExpandToInclude(pos); err != nil {
			return err
		}
	}
	if err := e.Grid.SetCell(pos.X, pos.Y, pos.Z, true); err != nil {
		return err
	}
	e.Hover.Hit = false
	if autoResize {
		e.Grid.ExpandIfFull()
	}
	return nil
}

// CyclePolicy switches to the next size-change behaviour and returns it.
func (e *Editor) CyclePolicy() cube.SizeChangeBehaviour {
	next := (e.Grid.SizeChangeBehaviour() + 1) % (cube.Error + 1)
	e.Grid.SetSizeChangeBehaviour(next)
	e.logger.Printf("size change policy: %v", next)
	return next
}

// Reset releases every face of the current grid and rebuilds it from cfg.
// The rebuilt grid is kept even when some configured edits fail.
func (e *Editor) Reset(cfg config.Config) error {
	defer profiling.Track("editor.Reset")()
	old := e.Grid
	old.SetSizeChangeBehaviour(cube.Ignore)
	var all []cube.Coord
	for cell := range old.Cells() {
		all = append(all, cell.Coord)
	}
	if err := old.Carve(all...); err != nil {
		return err
	}

	g, err := cfg.Build(e.renderer, e.logger)
	if g == nil {
		return err
	}
	e.Grid = g
	e.Hover = physics.RaycastResult{}
	return err
}
