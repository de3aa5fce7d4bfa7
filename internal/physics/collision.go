package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Collides reports whether a cube of the given half extent centred on pos
// overlaps any occupied voxel.
func Collides(pos mgl32.Vec3, halfExtent float32, src Occupancy) bool {
	lo := pos.Sub(mgl32.Vec3{halfExtent, halfExtent, halfExtent})
	hi := pos.Add(mgl32.Vec3{halfExtent, halfExtent, halfExtent})
	minX, maxX := voxelSpan(lo.X(), hi.X())
	minY, maxY := voxelSpan(lo.Y(), hi.Y())
	minZ, maxZ := voxelSpan(lo.Z(), hi.Z())

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				if src.IsOccupied(x, y, z) {
					return true
				}
			}
		}
	}
	return false
}

// voxelSpan returns the voxels whose interior overlaps [lo, hi].
func voxelSpan(lo, hi float32) (int, int) {
	first := int(math.Floor(float64(lo) + 0.5))
	last := int(math.Ceil(float64(hi)+0.5)) - 1
	return first, last
}
