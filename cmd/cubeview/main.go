package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"cube-of-cubes/internal/config"
	"cube-of-cubes/internal/input"
	"cube-of-cubes/internal/viewer"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config (defaults when empty)")
	flag.Parse()

	logger := log.New(os.Stderr, "[cubeview] ", log.LstdFlags)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if err := glfw.Init(); err != nil {
		logger.Fatalf("glfw init: %v", err)
	}
	defer glfw.Terminate()

	window, err := viewer.SetupWindow(cfg.Window)
	if err != nil {
		logger.Fatalf("window: %v", err)
	}

	im := input.NewInputManager()
	app, err := viewer.NewApp(window, im, cfg, logger)
	if err != nil {
		logger.Fatalf("viewer: %v", err)
	}
	viewer.SetupInputHandlers(app)

	app.Run()
}
