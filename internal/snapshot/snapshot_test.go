package snapshot

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"cube-of-cubes/internal/cube"

	"github.com/google/go-cmp/cmp"
)

func TestRecorderTracksGrid(t *testing.T) {
	rec := NewRecorder()
	g, err := cube.New(2, cube.WithRenderer(rec))
	if err != nil {
		t.Fatal(err)
	}
	if rec.Len() != 54 || rec.Len() != g.VisibleFaceCount() {
		t.Fatalf("live faces: recorder %d, grid %d, want 54", rec.Len(), g.VisibleFaceCount())
	}

	if err := g.SetCell(1, 1, 1, false); err != nil {
		t.Fatal(err)
	}
	// The corner's three faces go, its three neighbours each gain one.
	if rec.Destroyed() != 3 || rec.Created() != 57 {
		t.Fatalf("created %d destroyed %d, want 57/3", rec.Created(), rec.Destroyed())
	}
	for cell := range g.Cells() {
		for s := range cell.VisibleSides().Sides() {
			h, _ := cell.Face(s)
			f, ok := rec.Face(h)
			if !ok {
				t.Fatalf("cell %v side %v: handle %d not live", cell.Coord, s, h)
			}
			if diff := cmp.Diff(Face{Handle: h, Side: s, Pos: cell.Coord}, f); diff != "" {
				t.Fatalf("face mismatch (-want +got):\n%s", diff)
			}
		}
	}

	faces := rec.Faces()
	for i := 1; i < len(faces); i++ {
		if faces[i-1].Handle >= faces[i].Handle {
			t.Fatalf("Faces not in creation order at %d", i)
		}
	}

	rec.DestroyFace(99999)
	if rec.Destroyed() != 3 {
		t.Fatalf("destroying an unknown handle must be ignored")
	}
}

func TestRenderDrawsCube(t *testing.T) {
	rec := NewRecorder()
	if _, err := cube.New(2, cube.WithRenderer(rec)); err != nil {
		t.Fatal(err)
	}
	img := rec.Render(Options{Width: 200, Height: 160, Yaw: 35, Pitch: 30, Label: "radius 2"})
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 160 {
		t.Fatalf("bounds: %v", b)
	}
	if got := img.RGBAAt(100, 80); got == Background() {
		t.Fatalf("centre pixel is background, cube not drawn")
	}
	if got := img.RGBAAt(199, 159); got != Background() {
		t.Fatalf("corner pixel %v, want background", got)
	}
}

func TestCaptureMatchesLiveRecorder(t *testing.T) {
	live := NewRecorder()
	g, err := cube.New(3, cube.WithRenderer(live))
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Carve(cube.Coord{X: 2, Y: 2, Z: 2}, cube.Coord{}, cube.Coord{Y: -2}); err != nil {
		t.Fatal(err)
	}
	key := func(fs []Face) map[[4]int]bool {
		out := map[[4]int]bool{}
		for _, f := range fs {
			out[[4]int{int(f.Side), f.Pos.X, f.Pos.Y, f.Pos.Z}] = true
		}
		return out
	}
	captured := Capture(g)
	if diff := cmp.Diff(key(live.Faces()), key(captured.Faces())); diff != "" {
		t.Fatalf("captured faces differ (-live +captured):\n%s", diff)
	}
	if err := g.SetCell(0, 2, 0, false); err != nil {
		t.Fatal(err)
	}
	if captured.Created() != captured.Len() || captured.Destroyed() != 0 {
		t.Fatalf("capture followed a later edit")
	}
}

func TestRenderEmpty(t *testing.T) {
	img := NewRecorder().Render(Options{Width: 16, Height: 16})
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if img.RGBAAt(x, y) != Background() {
				t.Fatalf("pixel (%d,%d) drawn on an empty scene", x, y)
			}
		}
	}
}

func TestWritePNG(t *testing.T) {
	rec := NewRecorder()
	if _, err := cube.New(1, cube.WithRenderer(rec)); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "cube.png")
	if err := WritePNG(path, rec.Render(Options{Width: 32, Height: 32})); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 32 || cfg.Height != 32 {
		t.Fatalf("decoded size %dx%d", cfg.Width, cfg.Height)
	}
}
