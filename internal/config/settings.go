package config

import "sync"

// ViewSettings holds the viewer state that input handlers change at runtime.
type ViewSettings struct {
	mu         sync.RWMutex
	distance   float32 // orbit distance from the cube centre
	autoResize bool
	wireframe  bool
	fpsLimit   int
}

var globalViewSettings = &ViewSettings{
	distance:   12,
	autoResize: true,
	fpsLimit:   120,
}

const (
	MinOrbitDistance = 2
	MaxOrbitDistance = 200
)

// GetOrbitDistance returns the camera distance from the cube centre
func GetOrbitDistance() float32 {
	globalViewSettings.mu.RLock()
	defer globalViewSettings.mu.RUnlock()
	return globalViewSettings.distance
}

// SetOrbitDistance sets the camera distance, clamped to a usable range
func SetOrbitDistance(d float32) {
	globalViewSettings.mu.Lock()
	defer globalViewSettings.mu.Unlock()

	if d < MinOrbitDistance {
		d = MinOrbitDistance
	}
	if d > MaxOrbitDistance {
		d = MaxOrbitDistance
	}
	globalViewSettings.distance = d
}

// GetAutoResize returns whether the viewer grows and shrinks the cube on edits
func GetAutoResize() bool {
	globalViewSettings.mu.RLock()
	defer globalViewSettings.mu.RUnlock()
	return globalViewSettings.autoResize
}

// SetAutoResize toggles automatic growing and shrinking
func SetAutoResize(enabled bool) {
	globalViewSettings.mu.Lock()
	defer globalViewSettings.mu.Unlock()
	globalViewSettings.autoResize = enabled
}

// GetWireframe returns whether faces are drawn as outlines
func GetWireframe() bool {
	globalViewSettings.mu.RLock()
	defer globalViewSettings.mu.RUnlock()
	return globalViewSettings.wireframe
}

// SetWireframe toggles outline drawing
func SetWireframe(enabled bool) {
	globalViewSettings.mu.Lock()
	defer globalViewSettings.mu.Unlock()
	globalViewSettings.wireframe = enabled
}

// GetFPSLimit returns the frame cap; 0 means unlimited
func GetFPSLimit() int {
	globalViewSettings.mu.RLock()
	defer globalViewSettings.mu.RUnlock()
	return globalViewSettings.fpsLimit
}

// SetFPSLimit sets the frame cap; negative values disable it
func SetFPSLimit(limit int) {
	globalViewSettings.mu.Lock()
	defer globalViewSettings.mu.Unlock()
	globalViewSettings.fpsLimit = max(limit, 0)
}
