//go:build ebiten

package main

import (
	"context"
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"pico-arcade/pkg/config"
	"pico-arcade/pkg/games"
	"pico-arcade/pkg/simulator"
	"pico-arcade/screens/menu"
)

func main() {
	// Configure logging
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Load environment configuration
	config.LoadDotEnv()
	cfg := config.Load()
	log.Printf("Starting %s | Backend: ebiten | Keys: %s", cfg.Title, simulator.KeyHelp)

	board, err := simulator.NewEbitenBoard(cfg)
	if err != nil {
		log.Fatalf("Failed to create simulator board: %v", err)
	}
	defer board.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	screen := menu.NewScreen(board.Board(), games.DefaultTable(), menu.Options{RequireRelease: cfg.RequireRelease})
	board.Start(ctx, func(ctx context.Context) {
		if err := screen.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("Menu error: %v", err)
		}
	})

	if err := ebiten.RunGame(board); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Printf("Game loop error: %v", err)
	}

	log.Printf("%s shutting down...", cfg.Title)
}
