package menu

import (
	"time"

	"pico-arcade/pkg/buzzer"
	"pico-arcade/pkg/games"
	"pico-arcade/pkg/hal"
	"pico-arcade/pkg/input"
	"pico-arcade/widgets/gamelist"
)

// Fixed loop timing
const (
	SettleDelay  = 200 * time.Millisecond // after every redraw
	PollInterval = 10 * time.Millisecond  // between button samples
)

// NoSelection marks State.Selected when no game is waiting to start
const NoSelection = -1

// Event is the outcome of one button sample
type Event int

const (
	EventNone Event = iota
	EventMoveDown
	EventMoveUp
	EventConfirm
)

func (e Event) String() string {
	switch e {
	case EventMoveDown:
		return "move-down"
	case EventMoveUp:
		return "move-up"
	case EventConfirm:
		return "confirm"
	}
	return "none"
}

// State is the mutable part of the menu
type State struct {
	Current  int // highlighted entry, always within the list
	Selected int // entry waiting to start, or NoSelection
}

// Options tweaks the loop behaviour
type Options struct {
	// RequireRelease makes a held button fire once; it must be released
	// before it is accepted again. Off by default: a held button repeats
	// on every redraw.
	RequireRelease bool
}

// Screen is the game selection menu
type Screen struct {
	board   *hal.Board
	table   games.Table
	list    *gamelist.Widget
	buzzer  *buzzer.Buzzer
	options Options

	state State

	// Press tracking for RequireRelease
	tracker input.PressTracker
}
