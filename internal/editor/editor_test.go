package editor

import (
	"errors"
	"io"
	"log"
	"testing"

	"cube-of-cubes/internal/config"
	"cube-of-cubes/internal/cube"
	"cube-of-cubes/internal/snapshot"

	"github.com/go-gl/mathgl/mgl32"
)

func newEditor(t *testing.T, radius int, b cube.SizeChangeBehaviour) (*Editor, *snapshot.Recorder) {
	t.Helper()
	rec := snapshot.NewRecorder()
	g, err := cube.New(radius, cube.WithRenderer(rec), cube.WithSizeChangeBehaviour(b))
	if err != nil {
		t.Fatal(err)
	}
	return New(g, rec, log.New(io.Discard, "", 0)), rec
}

func checkFaces(t *testing.T, e *Editor, rec *snapshot.Recorder) {
	t.Helper()
	if rec.Len() != e.Grid.VisibleFaceCount() {
		t.Fatalf("renderer holds %d faces, grid shows %d", rec.Len(), e.Grid.VisibleFaceCount())
	}
}

func TestHoverAndCarve(t *testing.T) {
	e, rec := newEditor(t, 2, cube.Ignore)
	hover := e.UpdateHover(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, -1})
	if !hover.Hit || hover.HitPosition != (cube.Coord{Z: 1}) || hover.Face != cube.Front {
		t.Fatalf("hover: %+v", hover)
	}
	if hover.AdjacentPosition != (cube.Coord{Z: 2}) {
		t.Fatalf("adjacent: got %v, want (0,0,2)", hover.AdjacentPosition)
	}
	if err := e.CarveHovered(); err != nil {
		t.Fatalf("CarveHovered: %v", err)
	}
	if e.Grid.IsOccupied(0, 0, 1) || e.Hover.Hit {
		t.Fatalf("carve left the cell or the hover in place")
	}
	if e.Grid.Radius() != 2 {
		t.Fatalf("radius changed to %d", e.Grid.Radius())
	}
	checkFaces(t, e, rec)

	if err := e.CarveHovered(); !errors.Is(err, ErrNothingHovered) {
		t.Fatalf("second CarveHovered: got %v", err)
	}
}

func TestPlaceGrowsGrid(t *testing.T) {
	e, rec := newEditor(t, 2, cube.Ignore)
	e.UpdateHover(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, -1})
	if err := e.PlaceHovered(); err != nil {
		t.Fatalf("PlaceHovered: %v", err)
	}
	if e.Grid.Radius() != 3 || !e.Grid.IsOccupied(0, 0, 2) {
		t.Fatalf("radius %d, (0,0,2)=%v", e.Grid.Radius(), e.Grid.IsOccupied(0, 0, 2))
	}
	checkFaces(t, e, rec)
}

func TestPlaceWithoutAutoResize(t *testing.T) {
	defer config.SetAutoResize(config.GetAutoResize())
	config.SetAutoResize(false)

	e, _ := newEditor(t, 2, cube.Ignore)
	err := e.Place(cube.Coord{Z: 2})
	if !errors.Is(err, cube.ErrIndexOutOfRange) {
		t.Fatalf("Place: got %v, want ErrIndexOutOfRange", err)
	}
	if e.Grid.Radius() != 2 {
		t.Fatalf("radius changed to %d", e.Grid.Radius())
	}
}

func TestPlaceRefusedByPolicy(t *testing.T) {
	e, rec := newEditor(t, 2, cube.Fail)
	// The outer shell is full, so one step is allowed; reaching layer 3 needs two.
	if err := e.Place(cube.Coord{X: 3}); !errors.Is(err, cube.ErrPreconditionViolated) {
		t.Fatalf("Place: got %v, want ErrPreconditionViolated", err)
	}
	if e.Grid.IsOccupied(3, 0, 0) {
		t.Fatalf("refused placement still landed")
	}
	checkFaces(t, e, rec)
}

func TestCarvingLastShellCellShrinks(t *testing.T) {
	e, rec := newEditor(t, 2, cube.Ignore)
	for c := range cube.Shell(1) {
		if err := e.Carve(c); err != nil {
			t.Fatal(err)
		}
	}
	if e.Grid.Radius() != 1 {
		t.Fatalf("radius: got %d, want 1", e.Grid.Radius())
	}
	checkFaces(t, e, rec)
}

func TestMissedRay(t *testing.T) {
	e, _ := newEditor(t, 2, cube.Ignore)
	if hover := e.UpdateHover(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{1, 0, 0}); hover.Hit {
		t.Fatalf("ray above the cube hit %v", hover.HitPosition)
	}
	if err := e.PlaceHovered(); !errors.Is(err, ErrNothingHovered) {
		t.Fatalf("PlaceHovered: got %v", err)
	}
}

func TestCyclePolicy(t *testing.T) {
	e, _ := newEditor(t, 1, cube.Fail)
	want := []cube.SizeChangeBehaviour{cube.Ignore, cube.Warning, cube.Error, cube.Fail}
	for _, w := range want {
		if got := e.CyclePolicy(); got != w || e.Grid.SizeChangeBehaviour() != w {
			t.Fatalf("CyclePolicy: got %v, want %v", got, w)
		}
	}
}

func TestResetReleasesOldFaces(t *testing.T) {
	e, rec := newEditor(t, 4, cube.Ignore)
	if err := e.Carve(cube.Coord{}); err != nil {
		t.Fatal(err)
	}
	old := e.Grid
	if err := e.Reset(config.Defaults()); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if e.Grid == old || e.Grid.Radius() != 3 {
		t.Fatalf("grid not rebuilt: radius %d", e.Grid.Radius())
	}
	if old.OccupiedCount() != 0 {
		t.Fatalf("old grid kept %d cells", old.OccupiedCount())
	}
	checkFaces(t, e, rec)
}
