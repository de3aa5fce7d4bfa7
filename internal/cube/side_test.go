package cube

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestLayerMaxCapacity(t *testing.T) {
	tests := []struct {
		k    int
		want int
	}{
		{-1, 0},
		{0, 1},
		{1, 26},
		{2, 98},
		{3, 218},
	}
	for _, tt := range tests {
		if got := LayerMaxCapacity(tt.k); got != tt.want {
			t.Errorf("LayerMaxCapacity(%d): got %d, want %d", tt.k, got, tt.want)
		}
	}
}

func TestShellCoversLayerExactlyOnce(t *testing.T) {
	for k := 0; k <= 4; k++ {
		seen := map[Coord]bool{}
		for c := range Shell(k) {
			if c.Layer() != k {
				t.Fatalf("Shell(%d) yielded %v on layer %d", k, c, c.Layer())
			}
			if seen[c] {
				t.Fatalf("Shell(%d) yielded %v twice", k, c)
			}
			seen[c] = true
		}
		if len(seen) != LayerMaxCapacity(k) {
			t.Fatalf("Shell(%d): %d coordinates, want %d", k, len(seen), LayerMaxCapacity(k))
		}
	}
}

func TestOpposite(t *testing.T) {
	for _, s := range Sides {
		o := s.Opposite()
		if o == s || o.Opposite() != s {
			t.Errorf("%v.Opposite() = %v", s, o)
		}
		if !s.Normal().Add(o.Normal()).ApproxEqual(mgl32.Vec3{}) {
			t.Errorf("%v and %v normals do not cancel", s, o)
		}
		c := Coord{3, -2, 5}
		if c.Neighbor(s).Neighbor(o) != c {
			t.Errorf("stepping %v then %v does not return to %v", s, o, c)
		}
	}
}

func TestTransformPlacesQuadOnFace(t *testing.T) {
	c := Coord{1, -2, 3}
	for _, s := range Sides {
		m := s.Transform(c)
		center := m.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
		want := c.Vec3().Add(s.Normal().Mul(0.5))
		if !center.ApproxEqualThreshold(want, 1e-5) {
			t.Errorf("%v: quad centre %v, want %v", s, center, want)
		}
		normal := m.Mul4x1(mgl32.Vec4{0, 0, 1, 0}).Vec3()
		if !normal.ApproxEqualThreshold(s.Normal(), 1e-5) {
			t.Errorf("%v: quad normal %v, want %v", s, normal, s.Normal())
		}
	}
}

func TestSideSet(t *testing.T) {
	var m SideSet
	m = m.With(Up).With(Back)
	if !m.Has(Up) || !m.Has(Back) || m.Has(Down) {
		t.Fatalf("membership wrong for %v", m)
	}
	if m.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", m.Len())
	}
	if got := m.String(); got != "{Up,Back}" {
		t.Fatalf("String: got %q", got)
	}
	if m.Without(Up).Without(Back) != 0 {
		t.Fatalf("Without did not clear")
	}
	if AllSides.Len() != 6 || !AllSides.Contains(m) {
		t.Fatalf("AllSides wrong: %v", AllSides)
	}
	if got := AllSides.Minus(m).Union(m); got != AllSides {
		t.Fatalf("Minus/Union round trip: %v", got)
	}
}

func TestCoordLayer(t *testing.T) {
	tests := []struct {
		c    Coord
		want int
	}{
		{Coord{0, 0, 0}, 0},
		{Coord{-3, 1, 2}, 3},
		{Coord{1, -1, -4}, 4},
		{Coord{-2, -2, -2}, 2},
	}
	for _, tt := range tests {
		if got := tt.c.Layer(); got != tt.want {
			t.Errorf("%v.Layer(): got %d, want %d", tt.c, got, tt.want)
		}
	}
}
