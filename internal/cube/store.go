package cube

import "cube-of-cubes/internal/twoway"

// store holds the slots of every coordinate with layer below radius().
// Coordinates passed to at must be in range. Slots uncovered by grow are empty.
type store interface {
	radius() int
	at(c Coord) *slot
	grow()
	shrink()
}

// flatStore keeps every slot in one arena sized for extent >= radius, so most
// grow calls only bump the radius. Slots outside the radius are kept zeroed.
type flatStore struct {
	r      int
	extent int
	slots  []slot
}

func newFlatStore() *flatStore { return &flatStore{} }

func (s *flatStore) radius() int { return s.r }

func (s *flatStore) index(c Coord) int {
	o := s.extent - 1
	n := 2*s.extent - 1
	return ((c.X+o)*n+(c.Y+o))*n + (c.Z + o)
}

func (s *flatStore) at(c Coord) *slot { return &s.slots[s.index(c)] }

func (s *flatStore) grow() {
	if s.r+1 > s.extent {
		s.realloc(max(s.r+1, 2*s.extent))
	}
	s.r++
}

func (s *flatStore) realloc(extent int) {
	n := 2*extent - 1
	next := &flatStore{r: s.r, extent: extent, slots: make([]slot, n*n*n)}
	for c := range Volume(s.r) {
		*next.at(c) = *s.at(c)
	}
	*s = *next
}

func (s *flatStore) shrink() {
	if s.r == 0 {
		return
	}
	for c := range Shell(s.r - 1) {
		*s.at(c) = slot{}
	}
	s.r--
}

// nestedStore addresses slots as cells[x][y][z] through three levels of
// two-way lists, growing each level at both ends.
type nestedStore struct {
	r     int
	cells *twoway.List[*twoway.List[*twoway.List[slot]]]
}

func newNestedStore() *nestedStore {
	return &nestedStore{cells: twoway.New[*twoway.List[*twoway.List[slot]]]()}
}

func (s *nestedStore) radius() int { return s.r }

func (s *nestedStore) at(c Coord) *slot {
	ys, _ := s.cells.TryGet(c.X)
	zs, _ := ys.TryGet(c.Y)
	return zs.Ptr(c.Z)
}

// fillCoordList adds one item at index 0 and then one at each end until the
// list spans [-(radius-1), radius-1].
func fillCoordList[T any](l *twoway.List[T], radius int, item func() T) *twoway.List[T] {
	if radius > 0 {
		l.AddForward(item())
		for i := 1; i < radius; i++ {
			l.AddForward(item())
			l.AddBackward(item())
		}
	}
	return l
}

func zLine(radius int) *twoway.List[slot] {
	return fillCoordList(twoway.New[slot](), radius, func() slot { return slot{} })
}

func yzSurface(radius int) *twoway.List[*twoway.List[slot]] {
	return fillCoordList(twoway.New[*twoway.List[slot]](), radius, func() *twoway.List[slot] { return zLine(radius) })
}

func (s *nestedStore) grow() {
	next := s.r + 1
	if s.r == 0 {
		s.cells.AddForward(yzSurface(next))
		s.r = next
		return
	}
	for x := -s.r + 1; x < s.r; x++ {
		ys, _ := s.cells.TryGet(x)
		for y := -s.r + 1; y < s.r; y++ {
			zs, _ := ys.TryGet(y)
			zs.AddForward(slot{})
			zs.AddBackward(slot{})
		}
		ys.AddForward(zLine(next))
		ys.AddBackward(zLine(next))
	}
	s.cells.AddForward(yzSurface(next))
	s.cells.AddBackward(yzSurface(next))
	s.r = next
}

func (s *nestedStore) shrink() {
	switch {
	case s.r == 0:
		return
	case s.r == 1:
		s.cells.Clear()
		s.r = 0
		return
	}
	s.r--
	s.cells.RemoveForward()
	s.cells.RemoveBackward()
	for x := -s.r + 1; x < s.r; x++ {
		ys, _ := s.cells.TryGet(x)
		ys.RemoveForward()
		ys.RemoveBackward()
		for y := -s.r + 1; y < s.r; y++ {
			zs, _ := ys.TryGet(y)
			zs.RemoveForward()
			zs.RemoveBackward()
		}
	}
}
