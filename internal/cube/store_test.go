package cube

import "testing"

func TestStoresKeepSlotsAcrossGrowth(t *testing.T) {
	stores := map[string]store{
		"flat":   newFlatStore(),
		"nested": newNestedStore(),
	}
	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			s.grow()
			s.grow()
			for c := range Volume(2) {
				*s.at(c) = slot{occupied: true, cell: Cell{Coord: c}}
			}
			for want := 3; want <= 6; want++ {
				s.grow()
				if s.radius() != want {
					t.Fatalf("radius: got %d, want %d", s.radius(), want)
				}
				for c := range Volume(want) {
					sl := s.at(c)
					if inner := c.Layer() < 2; sl.occupied != inner {
						t.Fatalf("radius %d slot %v: occupied=%v, want %v", want, c, sl.occupied, inner)
					}
					if sl.occupied && sl.cell.Coord != c {
						t.Fatalf("slot %v holds cell for %v", c, sl.cell.Coord)
					}
				}
			}
		})
	}
}

func TestStoresShrinkClearsShell(t *testing.T) {
	stores := map[string]store{
		"flat":   newFlatStore(),
		"nested": newNestedStore(),
	}
	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			for range 3 {
				s.grow()
			}
			for c := range Volume(3) {
				*s.at(c) = slot{occupied: true}
			}
			s.shrink()
			if s.radius() != 2 {
				t.Fatalf("radius after shrink: %d", s.radius())
			}
			s.grow()
			for c := range Shell(2) {
				if s.at(c).occupied {
					t.Fatalf("slot %v survived shrink and regrow", c)
				}
			}
			for c := range Volume(2) {
				if !s.at(c).occupied {
					t.Fatalf("inner slot %v lost", c)
				}
			}
			for range 4 {
				s.shrink()
			}
			if s.radius() != 0 {
				t.Fatalf("radius after draining: %d", s.radius())
			}
		})
	}
}

func TestNestedStoreListShape(t *testing.T) {
	s := newNestedStore()
	for range 3 {
		s.grow()
	}
	if got := s.cells.Count(); got != 5 {
		t.Fatalf("x extent: got %d, want 5", got)
	}
	if s.cells.MinIndex() != -2 || s.cells.MaxIndex() != 2 {
		t.Fatalf("x indices [%d, %d], want [-2, 2]", s.cells.MinIndex(), s.cells.MaxIndex())
	}
	for x, ys := range s.cells.All() {
		if ys.Count() != 5 {
			t.Fatalf("x=%d: y extent %d", x, ys.Count())
		}
		for y, zs := range ys.All() {
			if zs.Count() != 5 {
				t.Fatalf("x=%d y=%d: z extent %d", x, y, zs.Count())
			}
		}
	}
}
