package cube

import (
	"iter"
	"math/bits"

	"github.com/go-gl/mathgl/mgl32"
)

// Side is one of the six axis-aligned faces of a voxel.
type Side uint8

const (
	Right Side = iota // +X
	Left              // -X
	Up                // +Y
	Down              // -Y
	Front             // +Z
	Back              // -Z

	sideCount = 6
)

// Sides lists every side in declaration order.
var Sides = [sideCount]Side{Right, Left, Up, Down, Front, Back}

var sideOffsets = [sideCount][3]int{
	Right: {1, 0, 0},
	Left:  {-1, 0, 0},
	Up:    {0, 1, 0},
	Down:  {0, -1, 0},
	Front: {0, 0, 1},
	Back:  {0, 0, -1},
}

// Quarter turns (x, y, z) that orient a unit quad lying in the XY plane and
// facing +Z so that it faces outward on the given side.
var sideRotations = [sideCount]mgl32.Vec3{
	Right: {0, 1, 0},
	Left:  {0, -1, 0},
	Up:    {-1, 0, 0},
	Down:  {1, 0, 0},
	Front: {0, 0, 0},
	Back:  {0, 2, 0},
}

var sideNames = [sideCount]string{"Right", "Left", "Up", "Down", "Front", "Back"}

func (s Side) String() string {
	if int(s) < sideCount {
		return sideNames[s]
	}
	return "Side(?)"
}

// Opposite returns the side facing the other way along the same axis.
func (s Side) Opposite() Side { return s ^ 1 }

// Offset returns the unit step from a voxel to its neighbour on this side.
func (s Side) Offset() (dx, dy, dz int) {
	o := sideOffsets[s]
	return o[0], o[1], o[2]
}

// Normal returns the outward unit normal of the side.
func (s Side) Normal() mgl32.Vec3 {
	o := sideOffsets[s]
	return mgl32.Vec3{float32(o[0]), float32(o[1]), float32(o[2])}
}

// Rotation returns the quarter turns around X, Y and Z applied to a +Z facing quad.
func (s Side) Rotation() mgl32.Vec3 { return sideRotations[s] }

// Transform returns the model matrix placing a unit quad (XY plane, facing +Z,
// centred on the origin) on this side of the voxel at c.
func (s Side) Transform(c Coord) mgl32.Mat4 {
	r := sideRotations[s].Mul(mgl32.DegToRad(90))
	center := c.Vec3().Add(s.Normal().Mul(0.5))
	return mgl32.Translate3D(center.X(), center.Y(), center.Z()).
		Mul4(mgl32.HomogRotate3DY(r.Y())).
		Mul4(mgl32.HomogRotate3DX(r.X()))
}

// SideSet is a bitmask of sides.
type SideSet uint8

// AllSides has every side set.
const AllSides SideSet = 1<<sideCount - 1

func (m SideSet) Has(s Side) bool { return m&(1<<s) != 0 }
func (m SideSet) With(s Side) SideSet { return m | 1<<s }
func (m SideSet) Without(s Side) SideSet { return m &^ (1 << s) }
func (m SideSet) Len() int { return bits.OnesCount8(uint8(m)) }
func (m SideSet) Empty() bool { return m == 0 }
func (m SideSet) Contains(o SideSet) bool { return m&o == o }
func (m SideSet) Union(o SideSet) SideSet { return m | o }
func (m SideSet) Minus(o SideSet) SideSet { return m &^ o }

// Sides yields the members of the set in declaration order.
func (m SideSet) Sides() iter.Seq[Side] {
	return func(yield func(Side) bool) {
		for _, s := range Sides {
			if m.Has(s) && !yield(s) {
				return
			}
		}
	}
}

func (m SideSet) String() string {
	if m == 0 {
		return "{}"
	}
	out := "{"
	for s := range m.Sides() {
		if len(out) > 1 {
			out += ","
		}
		out += s.String()
	}
	return out + "}"
}

// Coord is an integer voxel position.
type Coord struct {
	X, Y, Z int
}

// Layer returns the Chebyshev distance from the origin, i.e. the shell index.
func (c Coord) Layer() int {
	return max(abs(c.X), abs(c.Y), abs(c.Z))
}

// Neighbor returns the adjacent coordinate on side s.
func (c Coord) Neighbor(s Side) Coord {
	o := sideOffsets[s]
	return Coord{c.X + o[0], c.Y + o[1], c.Z + o[2]}
}

func (c Coord) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.X), float32(c.Y), float32(c.Z)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Shell yields every coordinate whose layer is exactly k.
func Shell(k int) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		if k < 0 {
			return
		}
		if k == 0 {
			yield(Coord{})
			return
		}
		for x := -k; x <= k; x++ {
			for y := -k; y <= k; y++ {
				if abs(x) == k || abs(y) == k {
					for z := -k; z <= k; z++ {
						if !yield(Coord{x, y, z}) {
							return
						}
					}
					continue
				}
				if !yield(Coord{x, y, -k}) || !yield(Coord{x, y, k}) {
					return
				}
			}
		}
	}
}

// Volume yields every coordinate with layer below radius, x-major.
func Volume(radius int) iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for x := -radius + 1; x < radius; x++ {
			for y := -radius + 1; y < radius; y++ {
				for z := -radius + 1; z < radius; z++ {
					if !yield(Coord{x, y, z}) {
						return
					}
				}
			}
		}
	}
}

// LayerMaxCapacity returns the number of coordinates in shell k.
func LayerMaxCapacity(k int) int {
	if k < 0 {
		return 0
	}
	d := 2*k + 1
	capacity := d * d * d
	if k == 0 {
		return capacity
	}
	inner := d - 2
	return capacity - inner*inner*inner
}
