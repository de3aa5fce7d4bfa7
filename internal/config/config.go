package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"cube-of-cubes/internal/cube"

	"gopkg.in/yaml.v3"
)

// Config describes the cube the tools build and how they present it.
type Config struct {
	Radius           int          `yaml:"radius"`
	SizeChangePolicy string       `yaml:"size_change_policy"`
	Storage          string       `yaml:"storage"`
	AutoShrink       bool         `yaml:"auto_shrink"`
	Place            [][3]int     `yaml:"place,omitempty"`
	Carve            [][3]int     `yaml:"carve,omitempty"`
	Window           WindowSpec   `yaml:"window"`
	Snapshot         SnapshotSpec `yaml:"snapshot"`
}

type WindowSpec struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	FPSLimit int `yaml:"fps_limit"` // 0 disables the limiter
}

type SnapshotSpec struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Yaw    float32 `yaml:"yaw"`
	Pitch  float32 `yaml:"pitch"`
	Output string  `yaml:"output"`
}

const (
	StorageFlat   = "flat"
	StorageNested = "nested"
)

// Load reads a YAML config from path. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if strings.TrimSpace(path) == "" {
		cfg.Normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	return Parse(b)
}

// Parse decodes YAML on top of the defaults.
func Parse(b []byte) (Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("cube.yaml: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("cube.yaml: %w", err)
	}
	return cfg, nil
}

// Defaults is a radius 3 cube with a handful of outer voxels knocked out.
func Defaults() Config {
	return Config{
		Radius:           3,
		SizeChangePolicy: "warning",
		Storage:          StorageFlat,
		AutoShrink:       true,
		Carve: [][3]int{
			{2, -2, 2}, {-2, -2, 2}, {-1, 2, -2},
			{0, 2, 2}, {0, -1, -2}, {2, 0, 2},
			{2, 0, 0}, {2, -2, 1}, {1, -2, -1},
		},
		Window: WindowSpec{Width: 900, Height: 600, FPSLimit: 120},
		Snapshot: SnapshotSpec{
			Width:  800,
			Height: 800,
			Yaw:    35,
			Pitch:  30,
			Output: "cube.png",
		},
	}
}

func (c *Config) Normalize() {
	c.SizeChangePolicy = strings.ToLower(strings.TrimSpace(c.SizeChangePolicy))
	c.Storage = strings.ToLower(strings.TrimSpace(c.Storage))
	if c.Storage == "" {
		c.Storage = StorageFlat
	}
	if c.Snapshot.Output == "" {
		c.Snapshot.Output = "cube.png"
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.Radius < 0 {
		errs = append(errs, fmt.Errorf("radius must be >= 0, got %d", c.Radius))
	}
	if _, err := cube.ParseSizeChangeBehaviour(c.SizeChangePolicy); err != nil {
		errs = append(errs, err)
	}
	if c.Storage != StorageFlat && c.Storage != StorageNested {
		errs = append(errs, fmt.Errorf("storage must be %q or %q, got %q", StorageFlat, StorageNested, c.Storage))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("fps_limit must be >= 0, got %d", c.Window.FPSLimit))
	}
	if c.Snapshot.Width <= 0 || c.Snapshot.Height <= 0 {
		errs = append(errs, fmt.Errorf("snapshot size must be positive, got %dx%d", c.Snapshot.Width, c.Snapshot.Height))
	}
	if c.Snapshot.Pitch <= -90 || c.Snapshot.Pitch >= 90 {
		errs = append(errs, fmt.Errorf("snapshot pitch must be within (-90, 90), got %v", c.Snapshot.Pitch))
	}
	return errors.Join(errs...)
}

// GridOptions turns the config into cube options. extra options are applied last.
func (c Config) GridOptions(extra ...cube.Option) []cube.Option {
	behaviour, _ := cube.ParseSizeChangeBehaviour(c.SizeChangePolicy)
	opts := []cube.Option{cube.WithSizeChangeBehaviour(behaviour)}
	if c.Storage == StorageNested {
		opts = append(opts, cube.WithNestedStorage())
	}
	return append(opts, extra...)
}

// Build creates the configured grid and applies the configured edits. The
// grid is returned even when some edits fail; the error joins every failure.
// r and logger may be nil.
func (c Config) Build(r cube.Renderer, logger *log.Logger) (*cube.Grid, error) {
	var extra []cube.Option
	if r != nil {
		extra = append(extra, cube.WithRenderer(r))
	}
	if logger != nil {
		extra = append(extra, cube.WithLogger(logger))
	}
	g, err := cube.New(c.Radius, c.GridOptions(extra...)...)
	if err != nil {
		return nil, err
	}
	return g, c.Apply(g)
}

// Apply places and then carves the configured voxels. Placing outside the
// current radius expands the grid, subject to its size-change policy.
func (c Config) Apply(g *cube.Grid) error {
	var errs []error
	for _, p := range c.Place {
		pos := cube.Coord{X: p[0], Y: p[1], Z: p[2]}
		if _, err := g.ExpandToInclude(pos); err != nil {
			errs = append(errs, err)
			continue
		}
		if err := g.SetCell(pos.X, pos.Y, pos.Z, true); err != nil {
			errs = append(errs, err)
		}
	}
	carve := make([]cube.Coord, 0, len(c.Carve))
	for _, p := range c.Carve {
		carve = append(carve, cube.Coord{X: p[0], Y: p[1], Z: p[2]})
	}
	if err := g.Carve(carve...); err != nil {
		errs = append(errs, err)
	}
	if c.AutoShrink {
		g.ShrinkWhileEmpty()
	}
	return errors.Join(errs...)
}
