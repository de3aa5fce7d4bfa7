package viewer

import (
	"errors"
	"fmt"
	"log"
	"time"

	"cube-of-cubes/internal/config"
	"cube-of-cubes/internal/editor"
	"cube-of-cubes/internal/graphics/renderables/faces"
	"cube-of-cubes/internal/graphics/renderables/wireframe"
	"cube-of-cubes/internal/graphics/renderer"
	"cube-of-cubes/internal/input"
	"cube-of-cubes/internal/profiling"
	"cube-of-cubes/internal/snapshot"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	orbitSpeed     = 90.0 // degrees per second
	dragSpeed      = 0.3  // degrees per pixel
	zoomSpeed      = 1.5  // fraction of the distance per second
	scrollZoomStep = 0.1
)

// Session owns the grid being edited and everything that draws it
type Session struct {
	Window   *glfw.Window
	Renderer *renderer.Renderer
	Faces    *faces.Faces
	Editor   *editor.Editor
	Config   config.Config

	logger *log.Logger

	dragging     bool
	lastX, lastY float64
}

func NewSession(window *glfw.Window, cfg config.Config, logger *log.Logger) (*Session, error) {
	facesRenderer := faces.NewFaces()
	wireframeRenderer := wireframe.NewWireframe(facesRenderer.FaceInstances)

	width, height := window.GetSize()
	r, err := renderer.NewRenderer(width, height, facesRenderer, wireframeRenderer)
	if err != nil {
		return nil, err
	}

	g, err := cfg.Build(facesRenderer, logger)
	if g == nil {
		r.Dispose()
		return nil, err
	}
	if err != nil {
		logger.Printf("config edits: %v", err)
	}

	config.SetAutoResize(cfg.AutoShrink)
	config.SetFPSLimit(cfg.Window.FPSLimit)
	config.SetOrbitDistance(float32(4*max(g.Radius(), 1) + 6))
	cam := r.GetCamera()
	cam.Distance = config.GetOrbitDistance()
	cam.Yaw, cam.Pitch = cfg.Snapshot.Yaw, cfg.Snapshot.Pitch

	return &Session{
		Window:   window,
		Renderer: r,
		Faces:    facesRenderer,
		Editor:   editor.New(g, facesRenderer, logger),
		Config:   cfg,
		logger:   logger,
	}, nil
}

func (s *Session) Cleanup() {
	s.Renderer.Dispose()
	s.Renderer = nil
	s.Editor = nil
}

func (s *Session) Update(dt float64, im *input.InputManager) {
	defer profiling.Track("session.Update")()
	s.updateCamera(dt, im)
	s.updateHover()
	s.handleInputActions(im)
}

func (s *Session) updateCamera(dt float64, im *input.InputManager) {
	cam := s.Renderer.GetCamera()
	step := float32(orbitSpeed * dt)
	if im.IsActive(input.ActionOrbitLeft) {
		cam.Rotate(-step, 0)
	}
	if im.IsActive(input.ActionOrbitRight) {
		cam.Rotate(step, 0)
	}
	if im.IsActive(input.ActionOrbitUp) {
		cam.Rotate(0, step)
	}
	if im.IsActive(input.ActionOrbitDown) {
		cam.Rotate(0, -step)
	}
	zoom := float32(zoomSpeed * dt)
	if im.IsActive(input.ActionZoomIn) {
		config.SetOrbitDistance(config.GetOrbitDistance() * (1 - zoom))
	}
	if im.IsActive(input.ActionZoomOut) {
		config.SetOrbitDistance(config.GetOrbitDistance() * (1 + zoom))
	}
}

func (s *Session) updateHover() {
	x, y := s.Window.GetCursorPos()
	w, h := s.Window.GetSize()
	origin, dir, ok := s.Renderer.GetCamera().CursorRay(x, y, w, h)
	if !ok || s.dragging {
		s.Editor.Hover.Hit = false
		return
	}
	s.Editor.UpdateHover(origin, dir)
}

func (s *Session) handleInputActions(im *input.InputManager) {
	if im.JustPressed(input.ActionMouseLeft) {
		s.report("carve", s.Editor.CarveHovered())
	}
	if im.JustPressed(input.ActionMouseRight) {
		s.report("place", s.Editor.PlaceHovered())
	}

	if im.JustPressed(input.ActionExpand) {
		_, err := s.Editor.Grid.Expand()
		s.report("expand", err)
	}
	if im.JustPressed(input.ActionShrink) {
		_, err := s.Editor.Grid.Shrink()
		s.report("shrink", err)
	}
	if im.JustPressed(input.ActionReset) {
		s.report("reset", s.Editor.Reset(s.Config))
	}
	if im.JustPressed(input.ActionCyclePolicy) {
		s.Editor.CyclePolicy()
	}
	if im.JustPressed(input.ActionSnapshot) {
		s.report("snapshot", s.saveSnapshot())
	}

	if im.JustPressed(input.ActionToggleWireframe) {
		config.SetWireframe(!config.GetWireframe())
	}
	if im.JustPressed(input.ActionToggleAutoResize) {
		config.SetAutoResize(!config.GetAutoResize())
		s.logger.Printf("auto-resize: %v", config.GetAutoResize())
	}
	if im.JustPressed(input.ActionQuit) {
		s.Window.SetShouldClose(true)
	}
}

// HandleCursor orbits the camera while the middle button is held
func (s *Session) HandleCursor(x, y float64, im *input.InputManager) {
	held := im.IsActive(input.ActionMouseMiddle)
	if held && s.dragging {
		s.Renderer.GetCamera().Rotate(float32(x-s.lastX)*dragSpeed, float32(s.lastY-y)*dragSpeed)
	}
	s.dragging = held
	s.lastX, s.lastY = x, y
}

func (s *Session) HandleScroll(yoff float64) {
	config.SetOrbitDistance(config.GetOrbitDistance() * float32(1-yoff*scrollZoomStep))
}

func (s *Session) Render(dt float64) time.Duration {
	renderStart := time.Now()
	s.Renderer.Render(s.Editor.Grid, s.Editor.Hover, dt)
	return time.Since(renderStart)
}

// RefreshRender repaints without advancing input (used during window resize)
func (s *Session) RefreshRender() {
	s.Renderer.Render(s.Editor.Grid, s.Editor.Hover, 0.016)
	s.Window.SwapBuffers()
}

// Status summarises the grid for the window title
func (s *Session) Status() string {
	g := s.Editor.Grid
	status := fmt.Sprintf("radius %d | cells %d | faces %d | policy %v",
		g.Radius(), g.OccupiedCount(), s.Faces.Len(), g.SizeChangeBehaviour())
	if config.GetAutoResize() {
		status += " | auto-resize"
	}
	if h := s.Editor.Hover; h.Hit {
		status += fmt.Sprintf(" | (%d, %d, %d) %v", h.HitPosition.X, h.HitPosition.Y, h.HitPosition.Z, h.Face)
	}
	return status
}

func (s *Session) saveSnapshot() error {
	cam := s.Renderer.GetCamera()
	snap := s.Config.Snapshot
	g := s.Editor.Grid
	img := snapshot.Capture(g).Render(snapshot.Options{
		Width:  snap.Width,
		Height: snap.Height,
		Yaw:    cam.Yaw,
		Pitch:  cam.Pitch,
		Label:  fmt.Sprintf("r=%d cells=%d faces=%d", g.Radius(), g.OccupiedCount(), g.VisibleFaceCount()),
	})
	if err := snapshot.WritePNG(snap.Output, img); err != nil {
		return err
	}
	s.logger.Printf("wrote %s", snap.Output)
	return nil
}

func (s *Session) report(op string, err error) {
	if err == nil || errors.Is(err, editor.ErrNothingHovered) {
		return
	}
	s.logger.Printf("%s: %v", op, err)
}
