package physics

import (
	"math"

	"cube-of-cubes/internal/cube"
	"cube-of-cubes/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinReachDistance = 0.1
	MaxReachDistance = 64.0
)

// Occupancy reports whether the voxel centred on (x, y, z) is solid.
type Occupancy interface {
	IsOccupied(x, y, z int) bool
}

// RaycastResult stores the result of a raycast operation
type RaycastResult struct {
	HitPosition      cube.Coord
	AdjacentPosition cube.Coord // last empty voxel before the hit
	Face             cube.Side  // side of the hit voxel the ray entered through
	Distance         float32
	Hit              bool
}

var (
	enterPositive = [3]cube.Side{cube.Left, cube.Down, cube.Back}
	enterNegative = [3]cube.Side{cube.Right, cube.Up, cube.Front}
)

// Raycast walks the voxels crossed by the ray (DDA) and returns the first
// occupied one between minDist and maxDist. Voxel c spans c-0.5 .. c+0.5.
func Raycast(start, direction mgl32.Vec3, minDist, maxDist float32, src Occupancy) RaycastResult {
	defer profiling.Track("physics.Raycast")()
	if direction.Len() == 0 {
		return RaycastResult{}
	}
	dir := direction.Normalize()
	pos := start.Add(mgl32.Vec3{0.5, 0.5, 0.5})
	inf := float32(math.Inf(1))

	var cell, step [3]int
	var tMax, tDelta [3]float32
	for i := 0; i < 3; i++ {
		cell[i] = int(math.Floor(float64(pos[i])))
		switch d := dir[i]; {
		case d > 0:
			step[i] = 1
			tDelta[i] = 1 / d
			tMax[i] = (float32(cell[i]+1) - pos[i]) / d
		case d < 0:
			step[i] = -1
			tDelta[i] = -1 / d
			tMax[i] = (pos[i] - float32(cell[i])) / -d
		default:
			tDelta[i] = inf
			tMax[i] = inf
		}
	}

	prev := cell
	axis := -1
	var t float32
	for t <= maxDist {
		if t >= minDist && src.IsOccupied(cell[0], cell[1], cell[2]) {
			result := RaycastResult{
				HitPosition:      cube.Coord{X: cell[0], Y: cell[1], Z: cell[2]},
				AdjacentPosition: cube.Coord{X: prev[0], Y: prev[1], Z: prev[2]},
				Distance:         t,
				Hit:              true,
			}
			if axis >= 0 {
				if step[axis] > 0 {
					result.Face = enterPositive[axis]
				} else {
					result.Face = enterNegative[axis]
				}
			}
			return result
		}

		prev = cell
		axis = 0
		if tMax[1] < tMax[axis] {
			axis = 1
		}
		if tMax[2] < tMax[axis] {
			axis = 2
		}
		if tMax[axis] == inf {
			break
		}
		cell[axis] += step[axis]
		t = tMax[axis]
		tMax[axis] += tDelta[axis]
	}

	return RaycastResult{}
}
