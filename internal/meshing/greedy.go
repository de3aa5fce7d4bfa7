package meshing

import (
	"cube-of-cubes/internal/cube"
	"cube-of-cubes/internal/profiling"
)

// VertexStride is number of float32 per vertex (pos.xyz + normal.xyz)
const VertexStride = 6

// axis indices (normal, u, v) per side, ordered so that u x v points outward
var sideAxes = [...][3]int{
	cube.Right: {0, 1, 2},
	cube.Left:  {0, 2, 1},
	cube.Up:    {1, 2, 0},
	cube.Down:  {1, 0, 2},
	cube.Front: {2, 0, 1},
	cube.Back:  {2, 1, 0},
}

// BuildGreedyMesh builds a greedy-meshed triangle list (pos+normal interleaved)
// from the faces the grid currently has turned on. Coplanar neighbouring faces
// of the same side merge into one quad.
func BuildGreedyMesh(g *cube.Grid) []float32 {
	defer profiling.Track("meshing.BuildGreedyMesh")()

	vertices := make([]float32, 0, 1024)
	for _, s := range cube.Sides {
		vertices = buildGreedyForSide(g, s, vertices)
	}
	return vertices
}

// QuadCount returns how many quads a vertex list produced by BuildGreedyMesh holds.
func QuadCount(vertices []float32) int {
	return len(vertices) / (6 * VertexStride)
}

// buildGreedyForSide performs 2D greedy meshing for one face direction. Layers
// run along the side's normal axis; each layer gets a UxV mask of visible faces.
func buildGreedyForSide(g *cube.Grid, s cube.Side, vertices []float32) []float32 {
	r := g.Radius()
	if r == 0 {
		return vertices
	}
	lo := -(r - 1)
	n := 2*r - 1
	axes := sideAxes[s]
	normal := s.Normal()
	half := float32(0.5)
	if normal[axes[0]] < 0 {
		half = -0.5
	}

	// Helper lambda to push a quad made of two triangles with given 4 corners
	emitQuad := func(corners [4][3]float32) {
		for _, i := range [6]int{0, 1, 2, 2, 3, 0} {
			c := corners[i]
			vertices = append(vertices, c[0], c[1], c[2], normal[0], normal[1], normal[2])
		}
	}

	mask := make([]bool, n*n)
	var pos [3]int
	for layer := lo; layer < lo+n; layer++ {
		pos[axes[0]] = layer
		for i := range n {
			for j := range n {
				pos[axes[1]] = lo + i
				pos[axes[2]] = lo + j
				cell, ok := g.TryGetCell(pos[0], pos[1], pos[2])
				mask[i*n+j] = ok && cell.Visible(s)
			}
		}

		// Greedy merge over mask (width along v, height along u)
		k := 0
		for k < n*n {
			if !mask[k] {
				k++
				continue
			}
			u0 := k / n
			v0 := k % n
			width := 1
			for v1 := v0 + 1; v1 < n && mask[u0*n+v1]; v1++ {
				width++
			}
			height := 1
		outer:
			for u1 := u0 + 1; u1 < n; u1++ {
				for v1 := v0; v1 < v0+width; v1++ {
					if !mask[u1*n+v1] {
						break outer
					}
				}
				height++
			}

			plane := float32(layer) + half
			ua := float32(lo+u0) - 0.5
			ub := ua + float32(height)
			va := float32(lo+v0) - 0.5
			vb := va + float32(width)
			var corners [4][3]float32
			for ci, uv := range [4][2]float32{{ua, va}, {ub, va}, {ub, vb}, {ua, vb}} {
				corners[ci][axes[0]] = plane
				corners[ci][axes[1]] = uv[0]
				corners[ci][axes[2]] = uv[1]
			}
			emitQuad(corners)

			// zero-out mask region
			for uu := u0; uu < u0+height; uu++ {
				for vv := v0; vv < v0+width; vv++ {
					mask[uu*n+vv] = false
				}
			}
		}
	}
	return vertices
}
