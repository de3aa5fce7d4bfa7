package physics_test

import (
	"testing"

	"cube-of-cubes/internal/cube"
	"cube-of-cubes/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

type voxels map[cube.Coord]bool

func (v voxels) IsOccupied(x, y, z int) bool { return v[cube.Coord{X: x, Y: y, Z: z}] }

func TestRaycast(t *testing.T) {
	blocks := voxels{
		{X: 0, Y: 0, Z: 0}: true,
		{X: 1, Y: 0, Z: 0}: true,
		{X: 0, Y: 1, Z: 0}: true,
		{X: 0, Y: 0, Z: 1}: true,
	}

	tests := []struct {
		name      string
		start     mgl32.Vec3
		direction mgl32.Vec3
		maxDist   float32
		expectHit bool
		hit       cube.Coord
		adjacent  cube.Coord
		face      cube.Side
		distance  float32
	}{
		{
			name:      "look down onto the stack",
			start:     mgl32.Vec3{0, 3, 0},
			direction: mgl32.Vec3{0, -1, 0},
			maxDist:   5,
			expectHit: true,
			hit:       cube.Coord{X: 0, Y: 1, Z: 0},
			adjacent:  cube.Coord{X: 0, Y: 2, Z: 0},
			face:      cube.Up,
			distance:  1.5,
		},
		{
			name:      "look along +X at the side",
			start:     mgl32.Vec3{-3, 0, 0},
			direction: mgl32.Vec3{1, 0, 0},
			maxDist:   5,
			expectHit: true,
			hit:       cube.Coord{X: 0, Y: 0, Z: 0},
			adjacent:  cube.Coord{X: -1, Y: 0, Z: 0},
			face:      cube.Left,
			distance:  2.5,
		},
		{
			name:      "look along -Z at the back",
			start:     mgl32.Vec3{0, 0, 4},
			direction: mgl32.Vec3{0, 0, -2},
			maxDist:   5,
			expectHit: true,
			hit:       cube.Coord{X: 0, Y: 0, Z: 1},
			adjacent:  cube.Coord{X: 0, Y: 0, Z: 2},
			face:      cube.Front,
			distance:  2.5,
		},
		{
			name:      "into empty space",
			start:     mgl32.Vec3{5, 5, 5},
			direction: mgl32.Vec3{1, 0, 0},
			maxDist:   10,
		},
		{
			name:      "target beyond reach",
			start:     mgl32.Vec3{-3, 0, 0},
			direction: mgl32.Vec3{1, 0, 0},
			maxDist:   2,
		},
		{
			name:    "zero direction",
			start:   mgl32.Vec3{-3, 0, 0},
			maxDist: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := physics.Raycast(tt.start, tt.direction, physics.MinReachDistance, tt.maxDist, blocks)
			if r.Hit != tt.expectHit {
				t.Fatalf("hit: got %v, want %v (%+v)", r.Hit, tt.expectHit, r)
			}
			if !tt.expectHit {
				return
			}
			if r.HitPosition != tt.hit {
				t.Errorf("hit position: got %v, want %v", r.HitPosition, tt.hit)
			}
			if r.AdjacentPosition != tt.adjacent {
				t.Errorf("adjacent position: got %v, want %v", r.AdjacentPosition, tt.adjacent)
			}
			if r.Face != tt.face {
				t.Errorf("face: got %v, want %v", r.Face, tt.face)
			}
			if d := r.Distance - tt.distance; d < -0.01 || d > 0.01 {
				t.Errorf("distance: got %f, want %f", r.Distance, tt.distance)
			}
		})
	}
}

func TestRaycastAgainstGrid(t *testing.T) {
	g, err := cube.New(2)
	if err != nil {
		t.Fatal(err)
	}
	start := mgl32.Vec3{3, 3, 3}
	dir := mgl32.Vec3{-1, -1, -1}

	r := physics.Raycast(start, dir, physics.MinReachDistance, physics.MaxReachDistance, g)
	if !r.Hit || r.HitPosition != (cube.Coord{X: 1, Y: 1, Z: 1}) {
		t.Fatalf("expected to hit the corner, got %+v", r)
	}
	if r.HitPosition.Neighbor(r.Face) != r.AdjacentPosition {
		t.Fatalf("face %v of %v does not lead to %v", r.Face, r.HitPosition, r.AdjacentPosition)
	}
	if r.Distance < 2.59 || r.Distance > 2.61 {
		t.Fatalf("distance: got %f, want ~2.598", r.Distance)
	}

	// Carve the corner and the ray reaches the voxel behind it.
	if err := g.SetCell(1, 1, 1, false); err != nil {
		t.Fatal(err)
	}
	r = physics.Raycast(start, dir, physics.MinReachDistance, physics.MaxReachDistance, g)
	if !r.Hit || r.HitPosition.Layer() != 1 || r.HitPosition == (cube.Coord{X: 1, Y: 1, Z: 1}) {
		t.Fatalf("expected a hit next to the carved corner, got %+v", r)
	}
	if g.IsOccupied(r.AdjacentPosition.X, r.AdjacentPosition.Y, r.AdjacentPosition.Z) {
		t.Fatalf("adjacent position %v is occupied", r.AdjacentPosition)
	}
}

func TestCollides(t *testing.T) {
	blocks := voxels{{X: 0, Y: 0, Z: 0}: true}
	tests := []struct {
		name string
		pos  mgl32.Vec3
		want bool
	}{
		{"inside", mgl32.Vec3{0, 0, 0}, true},
		{"overlapping edge", mgl32.Vec3{0.7, 0, 0}, true},
		{"touching face", mgl32.Vec3{0.75, 0, 0}, false},
		{"far away", mgl32.Vec3{3, 3, 3}, false},
	}
	for _, tt := range tests {
		if got := physics.Collides(tt.pos, 0.25, blocks); got != tt.want {
			t.Errorf("%s: Collides(%v) = %v, want %v", tt.name, tt.pos, got, tt.want)
		}
	}
}
