package viewer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func SetupInputHandlers(app *App) {
	window := app.window
	im := app.inputManager

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if app.session != nil {
			app.session.HandleCursor(xpos, ypos, im)
		}
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		if app.session != nil {
			app.session.HandleScroll(yoff)
		}
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

		// the camera uses window (logical) size for its aspect and pick rays
		winW, winH := w.GetSize()
		if app.session != nil {
			app.session.Renderer.UpdateViewport(winW, winH)
		}
		// NOTE: Do not render here. Rely on SetRefreshCallback for smooth resizing on macOS.
	})

	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		if app.session != nil {
			app.session.Renderer.UpdateViewport(width, height)
		}
	})

	window.SetRefreshCallback(func(w *glfw.Window) {
		app.RefreshRender()
	})
}
