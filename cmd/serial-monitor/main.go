// Command serial-monitor prints the Pico firmware's log lines with
// arrival timestamps, reconnecting across resets.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pico-arcade/pkg/config"
	"pico-arcade/pkg/monitor"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	config.LoadDotEnv()
	cfg := config.Load()

	port := flag.String("port", cfg.SerialPort, "serial port, empty to detect the pico")
	baud := flag.Int("baud", cfg.SerialBaud, "baud rate")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := monitor.Follow(ctx, *port, *baud, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Serial monitor failed: %v", err)
	}
}
