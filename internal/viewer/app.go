package viewer

import (
	"fmt"
	"log"
	"time"

	"cube-of-cubes/internal/config"
	"cube-of-cubes/internal/input"
	"cube-of-cubes/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

const titleInterval = 250 * time.Millisecond

type App struct {
	window       *glfw.Window
	inputManager *input.InputManager

	session *Session

	fpsLimiter *FPSLimiter
	lastTime   time.Time
	logger     *log.Logger

	// title bar bookkeeping
	lastTitle time.Time
	frames    int
	fps       float64
}

func NewApp(window *glfw.Window, im *input.InputManager, cfg config.Config, logger *log.Logger) (*App, error) {
	session, err := NewSession(window, cfg, logger)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &App{
		window:       window,
		inputManager: im,
		session:      session,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     now,
		lastTitle:    now,
		logger:       logger,
	}, nil
}

func (a *App) Run() {
	defer a.session.Cleanup()
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	dt := startTick.Sub(a.lastTime).Seconds()
	a.lastTime = startTick

	func() {
		defer profiling.Track("glfw.PollEvents")()
		glfw.PollEvents()
	}()

	a.session.Update(dt, a.inputManager)
	a.session.Render(dt)

	func() {
		defer profiling.Track("glfw.SwapBuffers")()
		a.window.SwapBuffers()
	}()

	if d := time.Since(startTick); d > 16*time.Millisecond {
		a.logger.Printf("slow frame: %v. top tasks: %s", d, profiling.TopN(5))
	}

	a.inputManager.PostUpdate()
	a.updateTitle(startTick)

	idle := a.window.GetAttrib(glfw.Iconified) == glfw.True || a.window.GetAttrib(glfw.Focused) == glfw.False
	a.fpsLimiter.Wait(idle)
}

func (a *App) updateTitle(now time.Time) {
	a.frames++
	elapsed := now.Sub(a.lastTitle)
	if elapsed < titleInterval {
		return
	}
	a.fps = float64(a.frames) / elapsed.Seconds()
	a.frames = 0
	a.lastTitle = now
	a.window.SetTitle(fmt.Sprintf("%s | %s | %.0f fps | %s",
		windowTitle, a.session.Status(), a.fps, profiling.TopN(3)))
}

// RefreshRender handles window resize repaints
func (a *App) RefreshRender() {
	if a.session != nil {
		a.session.RefreshRender()
	}
}
