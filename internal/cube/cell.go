package cube

// Cell is one occupied voxel and the faces it currently shows.
type Cell struct {
	Coord
	visible SideSet
	faces   [sideCount]FaceHandle
}

// VisibleSides returns the set of faces that are turned on.
func (c Cell) VisibleSides() SideSet { return c.visible }

// Visible reports whether side s is turned on.
func (c Cell) Visible(s Side) bool { return c.visible.Has(s) }

// Face returns the renderer handle of side s, if that side is visible.
func (c Cell) Face(s Side) (FaceHandle, bool) {
	if !c.visible.Has(s) {
		return 0, false
	}
	return c.faces[s], true
}

// turnSide switches side s on or off, creating or destroying its face.
func (c *Cell) turnSide(r Renderer, s Side, on bool) {
	switch {
	case on && !c.visible.Has(s):
		c.faces[s] = r.CreateFace(s, c.Coord)
		c.visible = c.visible.With(s)
	case !on && c.visible.Has(s):
		r.DestroyFace(c.faces[s])
		c.faces[s] = 0
		c.visible = c.visible.Without(s)
	}
}

// clearSides destroys every face the cell owns.
func (c *Cell) clearSides(r Renderer) {
	for s := range c.visible.Sides() {
		r.DestroyFace(c.faces[s])
		c.faces[s] = 0
	}
	c.visible = 0
}

// slot is one addressable position of the grid. A zero slot is empty.
type slot struct {
	occupied bool
	cell     Cell
}
