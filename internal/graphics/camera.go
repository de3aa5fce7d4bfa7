package graphics

import (
	"math"

	"cube-of-cubes/internal/config"
	"cube-of-cubes/internal/physics"

	"github.com/go-gl/mathgl/mgl32"
)

// Camera orbits the cube centre and handles the view and projection matrices
type Camera struct {
	AspectRatio float32
	FOV         float32
	NearPlane   float32
	FarPlane    float32

	Yaw      float32 // degrees around +Y, 0 looks down -Z
	Pitch    float32 // degrees above the XZ plane
	Distance float32 // current orbit distance, eased toward config.GetOrbitDistance
	Target   mgl32.Vec3
}

func NewCamera(width, height int) *Camera {
	c := &Camera{
		FOV:       60.0,
		NearPlane: 0.1,
		FarPlane:  1000.0,
		Yaw:       35,
		Pitch:     30,
		Distance:  config.GetOrbitDistance(),
	}
	c.SetViewport(width, height)
	return c
}

// SetViewport updates the aspect ratio; zero sizes (minimised window) are ignored
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

// Rotate turns the camera around the target, keeping pitch short of the poles
func (c *Camera) Rotate(dYaw, dPitch float32) {
	c.Yaw = float32(math.Mod(float64(c.Yaw+dYaw), 360))
	c.Pitch = mgl32.Clamp(c.Pitch+dPitch, -89, 89)
}

// Ease moves Distance toward the configured orbit distance
func (c *Camera) Ease(dt float64) {
	target := config.GetOrbitDistance()
	step := float32(dt) * 8
	if step > 1 {
		step = 1
	}
	c.Distance += (target - c.Distance) * step
}

// KeepOutside pushes the orbit distance out until the eye no longer sits inside an occupied voxel
func (c *Camera) KeepOutside(src physics.Occupancy) {
	for physics.Collides(c.Eye(), 0.25, src) && c.Distance < config.MaxOrbitDistance {
		c.Distance += 0.5
		config.SetOrbitDistance(c.Distance)
	}
}

// Eye returns the camera position in world space
func (c *Camera) Eye() mgl32.Vec3 {
	y := mgl32.DegToRad(c.Yaw)
	p := mgl32.DegToRad(c.Pitch)
	cp := float32(math.Cos(float64(p)))
	dir := mgl32.Vec3{
		cp * float32(math.Sin(float64(y))),
		float32(math.Sin(float64(p))),
		cp * float32(math.Cos(float64(y))),
	}
	return c.Target.Add(dir.Mul(c.Distance))
}

func (c *Camera) GetProjectionMatrix() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), c.AspectRatio, c.NearPlane, c.FarPlane)
}

func (c *Camera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), c.Target, mgl32.Vec3{0, 1, 0})
}

// CursorRay returns the world-space ray under the cursor. Cursor coordinates
// have their origin at the top-left corner of a width x height window.
func (c *Camera) CursorRay(cursorX, cursorY float64, width, height int) (origin, dir mgl32.Vec3, ok bool) {
	view := c.GetViewMatrix()
	proj := c.GetProjectionMatrix()
	winY := float32(height) - float32(cursorY)
	near, err := mgl32.UnProject(mgl32.Vec3{float32(cursorX), winY, 0}, view, proj, 0, 0, width, height)
	if err != nil {
		return mgl32.Vec3{}, mgl32.Vec3{}, false
	}
	far, err := mgl32.UnProject(mgl32.Vec3{float32(cursorX), winY, 1}, view, proj, 0, 0, width, height)
	if err != nil {
		return mgl32.Vec3{}, mgl32.Vec3{}, false
	}
	return near, far.Sub(near).Normalize(), true
}
