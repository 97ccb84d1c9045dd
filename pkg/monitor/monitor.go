// Package monitor follows the firmware's log output over the Pico's USB
// serial port.
package monitor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// PicoVID is the Raspberry Pi USB vendor id the RP2040 enumerates with
const PicoVID = "2E8A"

// TimeFormat prefixes every streamed line
const TimeFormat = "15:04:05.000"

// RetryDelay separates reconnect attempts
const RetryDelay = time.Second

var ErrNoPicoFound = errors.New("monitor: no pico found")

// Detect returns the first USB serial port with the Pico's vendor id
func Detect() (string, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return "", fmt.Errorf("monitor: list ports: %w", err)
	}
	name := pickPort(ports)
	if name == "" {
		return "", ErrNoPicoFound
	}
	return name, nil
}

func pickPort(ports []*enumerator.PortDetails) string {
	for _, port := range ports {
		if !port.IsUSB {
			continue
		}
		if strings.EqualFold(port.VID, PicoVID) {
			return port.Name
		}
	}
	return ""
}

// Open opens name at baud, 8N1
func Open(name string, baud int) (serial.Port, error) {
	f, err := serial.Open(name, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("monitor: open %s: %w", name, err)
	}
	return f, nil
}

// Stream copies r to out line by line, each line prefixed with the time
// it arrived. It returns io.EOF when r ends and ctx.Err() once ctx is done.
func Stream(ctx context.Context, r io.Reader, out io.Writer, now func() time.Time) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if _, err := fmt.Fprintf(out, "%s %s\n", now().Format(TimeFormat), line); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("monitor: read: %w", err)
	}
	return io.EOF
}

// Follow streams the port named name, or the detected Pico when name is
// empty, to out. The board resets when a game is flashed, so a lost
// connection is retried until ctx is done.
func Follow(ctx context.Context, name string, baud int, out io.Writer) error {
	for {
		err := followOnce(ctx, name, baud, out)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Printf("Serial connection lost: %v | retry_in=%s", err, RetryDelay)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(RetryDelay):
		}
	}
}

func followOnce(ctx context.Context, name string, baud int, out io.Writer) error {
	portName := name
	if portName == "" {
		var err error
		if portName, err = Detect(); err != nil {
			return err
		}
	}

	f, err := Open(portName, baud)
	if err != nil {
		return err
	}
	log.Printf("Serial connected | port=%s | baud=%d", portName, baud)

	// Closing the port unblocks the pending read
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		f.Close()
	}()

	return Stream(ctx, f, out, time.Now)
}
