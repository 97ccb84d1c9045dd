//go:build !ebiten

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"pico-arcade/pkg/config"
	"pico-arcade/pkg/games"
	"pico-arcade/pkg/hal"
	"pico-arcade/pkg/simulator"
	"pico-arcade/screens/menu"
)

func main() {
	// SDL must stay on the main thread
	runtime.LockOSThread()

	// Configure logging
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load environment configuration
	config.LoadDotEnv()
	cfg := config.Load()

	// Initialize SDL2 with fallback options
	if err := initializeSDL2(); err != nil {
		log.Fatalf("Failed to initialize SDL2: %v", err)
	}
	defer func() {
		log.Println("Shutting down SDL2...")
		sdl.Quit()
	}()

	width := int32(hal.ScreenWidth * cfg.Scale)
	height := int32(hal.ScreenHeight * cfg.Scale)
	log.Printf("Starting %s | Window: %dx%d | Keys: %s", cfg.Title, width, height, simulator.KeyHelp)

	// Create SDL2 window
	window, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		width,
		height,
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}
	defer window.Destroy()

	renderer, err := createRenderer(window)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Destroy()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	board, err := simulator.NewSDLBoard(renderer, cfg, cancel)
	if err != nil {
		log.Fatalf("Failed to create simulator board: %v", err)
	}
	defer board.Close()

	// Run the menu until the window is closed
	screen := menu.NewScreen(board.Board(), games.DefaultTable(), menu.Options{RequireRelease: cfg.RequireRelease})
	if err := screen.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Menu error: %v", err)
	}

	log.Printf("%s shutting down...", cfg.Title)
}

// initializeSDL2 initializes SDL2, trying the usual video drivers in turn
func initializeSDL2() error {
	// Respect environment variable first, then fallback
	var videoDrivers []string
	if envDriver := os.Getenv("SDL_VIDEODRIVER"); envDriver != "" {
		log.Printf("Using environment SDL_VIDEODRIVER: %s", envDriver)
		videoDrivers = append(videoDrivers, envDriver)
	}
	if runtime.GOOS == "darwin" {
		videoDrivers = append(videoDrivers, "cocoa")
	} else {
		videoDrivers = append(videoDrivers, "wayland", "x11", "kmsdrm")
	}

	// Try each fallback driver
	for _, driver := range videoDrivers {
		sdl.SetHint(sdl.HINT_VIDEODRIVER, driver)
		if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
			log.Printf("SDL2 initialization failed with %s driver: %v", driver, err)
			sdl.Quit()
			continue
		}

		log.Printf("SDL2 successfully initialized with %s driver", driver)

		// Audio is not critical, the buzzer emulation is skipped without it
		if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
			log.Printf("Warning: Audio initialization failed: %v", err)
		}
		return nil
	}

	return fmt.Errorf("all SDL2 video drivers failed")
}

// createRenderer prefers an accelerated renderer and falls back to software
func createRenderer(window *sdl.Window) (*sdl.Renderer, error) {
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		log.Printf("Hardware acceleration failed, trying software: %v", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			return nil, err
		}
	}

	// Keep the pixels square and sharp when scaling the panel up
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "0")
	if err := renderer.SetLogicalSize(hal.ScreenWidth, hal.ScreenHeight); err != nil {
		log.Printf("Warning: failed to set logical size: %v", err)
	}

	return renderer, nil
}
