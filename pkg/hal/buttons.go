package hal

import "strings"

// Button identifies one of the six digital inputs
type Button int

const (
	Up Button = iota
	Down
	Left
	Right
	Button1
	Button2
	ButtonCount // Must be last - used for array sizing
)

var buttonNames = [ButtonCount]string{"up", "down", "left", "right", "button1", "button2"}

func (b Button) String() string {
	if b < 0 || b >= ButtonCount {
		return "unknown"
	}
	return buttonNames[b]
}

// Pin is a digital input line. Get reports the logic level: true is high.
type Pin interface {
	Get() bool
}

// PinFunc adapts a plain function to Pin
type PinFunc func() bool

// Get calls f()
func (f PinFunc) Get() bool {
	return f()
}

// Buttons holds one input line per button. Lines are pull-up biased, so an
// idle button reads high and a pressed one reads low.
type Buttons [ButtonCount]Pin

// ButtonState is a single sample of all six buttons; true means pressed.
type ButtonState [ButtonCount]bool

// ReadButtons samples every line once and converts the active-low levels
// into pressed flags. A missing line reads as released.
func ReadButtons(pins Buttons) ButtonState {
	var state ButtonState
	for i, pin := range pins {
		if pin == nil {
			continue
		}
		state[i] = !pin.Get()
	}
	return state
}

// Pressed reports whether any of the given buttons is held
func (s ButtonState) Pressed(buttons ...Button) bool {
	for _, b := range buttons {
		if b >= 0 && b < ButtonCount && s[b] {
			return true
		}
	}
	return false
}

// Any reports whether at least one button is held
func (s ButtonState) Any() bool {
	for _, pressed := range s {
		if pressed {
			return true
		}
	}
	return false
}

func (s ButtonState) String() string {
	var held []string
	for i, pressed := range s {
		if pressed {
			held = append(held, Button(i).String())
		}
	}
	if len(held) == 0 {
		return "none"
	}
	return strings.Join(held, "+")
}
