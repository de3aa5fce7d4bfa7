package cube

// FaceHandle identifies one renderable face owned by a Cell. Its meaning is
// private to the Renderer that issued it.
type FaceHandle uint64

// Renderer creates and releases the presentation objects for visible faces.
// Calls arrive in mutation order; a face is always destroyed before a
// replacement for the same coordinate and side is created.
type Renderer interface {
	CreateFace(side Side, pos Coord) FaceHandle
	DestroyFace(h FaceHandle)
}

// NopRenderer discards every face.
type NopRenderer struct{}

func (NopRenderer) CreateFace(Side, Coord) FaceHandle { return 0 }
func (NopRenderer) DestroyFace(FaceHandle) {}
