// Command raspi runs the menu on a Raspberry Pi with the same panel,
// buttons and buzzer wired to its header.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"periph.io/x/host/v3"

	"pico-arcade/pkg/config"
	"pico-arcade/pkg/games"
	"pico-arcade/screens/menu"
)

func main() {
	// Configure logging
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load environment configuration
	config.LoadDotEnv()
	cfg := config.Load()

	if _, err := host.Init(); err != nil {
		log.Fatalf("Failed to initialize periph host: %v", err)
	}

	board, err := openBoard(cfg)
	if err != nil {
		log.Fatalf("Failed to bring up board: %v", err)
	}
	defer board.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("Starting %s | Bus: %q | Buzzer: %s", cfg.Title, cfg.I2CBus, cfg.BuzzerPin)
	screen := menu.NewScreen(board.Board(), games.DefaultTable(), menu.Options{RequireRelease: cfg.RequireRelease})
	if err := screen.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Menu error: %v", err)
	}

	log.Printf("%s shutting down...", cfg.Title)
}
