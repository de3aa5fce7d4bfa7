package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical viewer action, not a physical key
type Action int

const (
	ActionOrbitLeft Action = iota
	ActionOrbitRight
	ActionOrbitUp
	ActionOrbitDown
	ActionZoomIn
	ActionZoomOut
	ActionExpand
	ActionShrink
	ActionReset
	ActionCyclePolicy
	ActionSnapshot
	ActionQuit
	ActionToggleWireframe
	ActionToggleAutoResize
	ActionMouseLeft
	ActionMouseRight
	ActionMouseMiddle
	ActionModShift
	ActionCount // Sentinel value for array sizing
)

var defaultKeys = map[glfw.Key]Action{
	glfw.KeyA:          ActionOrbitLeft,
	glfw.KeyLeft:       ActionOrbitLeft,
	glfw.KeyD:          ActionOrbitRight,
	glfw.KeyRight:      ActionOrbitRight,
	glfw.KeyW:          ActionOrbitUp,
	glfw.KeyUp:         ActionOrbitUp,
	glfw.KeyS:          ActionOrbitDown,
	glfw.KeyDown:       ActionOrbitDown,
	glfw.KeyEqual:      ActionZoomIn,
	glfw.KeyKPAdd:      ActionZoomIn,
	glfw.KeyMinus:      ActionZoomOut,
	glfw.KeyKPSubtract: ActionZoomOut,
	glfw.KeyE:          ActionExpand,
	glfw.KeyQ:          ActionShrink,
	glfw.KeyBackspace:  ActionReset,
	glfw.KeyP:          ActionCyclePolicy,
	glfw.KeyF2:         ActionSnapshot,
	glfw.KeyEscape:     ActionQuit,
	glfw.KeyF:          ActionToggleWireframe,
	glfw.KeyR:          ActionToggleAutoResize,
	glfw.KeyLeftShift:  ActionModShift,
	glfw.KeyRightShift: ActionModShift,
}

var defaultButtons = map[glfw.MouseButton]Action{
	glfw.MouseButtonLeft:   ActionMouseLeft,
	glfw.MouseButtonRight:  ActionMouseRight,
	glfw.MouseButtonMiddle: ActionMouseMiddle,
}

// InputManager maps physical keys/buttons to logical actions and tracks
// held state plus per-frame press edges. Events arrive on GLFW callbacks and
// are read by the frame loop.
type InputManager struct {
	mu sync.RWMutex

	// one key can map to multiple actions
	keyToActions         map[glfw.Key][]Action
	mouseButtonToActions map[glfw.MouseButton][]Action

	held        [ActionCount]bool
	justPressed [ActionCount]bool // reset by PostUpdate
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions:         make(map[glfw.Key][]Action),
		mouseButtonToActions: make(map[glfw.MouseButton][]Action),
	}
	for key, action := range defaultKeys {
		im.BindKey(key, action)
	}
	for button, action := range defaultButtons {
		im.BindMouseButton(button, action)
	}
	return im
}

// BindKey binds a physical key to a logical action
// Multiple keys can be bound to the same action (e.g., WASD and arrow keys)
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	if !valid(action) {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// BindMouseButton binds a mouse button to a logical action
func (im *InputManager) BindMouseButton(button glfw.MouseButton, action Action) {
	if !valid(action) {
		return
	}
	im.mu.Lock()
	defer im.mu.Unlock()
	im.mouseButtonToActions[button] = append(im.mouseButtonToActions[button], action)
}

// HandleKeyEvent processes a key event; key repeat counts as held
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.apply(im.keyToActions[key], action == glfw.Press || action == glfw.Repeat)
}

// HandleMouseButtonEvent processes a mouse button event
func (im *InputManager) HandleMouseButtonEvent(button glfw.MouseButton, action glfw.Action) {
	im.mu.Lock()
	defer im.mu.Unlock()
	im.apply(im.mouseButtonToActions[button], action == glfw.Press)
}

func (im *InputManager) apply(actions []Action, pressed bool) {
	for _, act := range actions {
		// Detect edges immediately when event arrives
		if pressed && !im.held[act] {
			im.justPressed[act] = true
		}
		im.held[act] = pressed
	}
}

// PostUpdate must be called at the end of each frame to clear press edges
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()
	clear(im.justPressed[:])
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if !valid(action) {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.held[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if !valid(action) {
		return false
	}
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}

func valid(action Action) bool { return action >= 0 && action < ActionCount }
