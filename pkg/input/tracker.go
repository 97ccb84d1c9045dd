package input

import "pico-arcade/pkg/hal"

// PressTracker turns raw button samples into press events so that a held
// button is reported once and must be released before it fires again.
type PressTracker struct {
	pressed hal.ButtonState
}

// NewPressTracker creates a new PressTracker with every button released
func NewPressTracker() PressTracker {
	return PressTracker{}
}

// JustPressed returns the buttons that are down in sample but were up in
// the previous one, and records sample as the new previous state.
func (pt *PressTracker) JustPressed(sample hal.ButtonState) hal.ButtonState {
	var fresh hal.ButtonState
	for i, isCurrentlyPressed := range sample {
		fresh[i] = isCurrentlyPressed && !pt.pressed[i]
	}

	// Update state
	pt.pressed = sample

	return fresh
}

// Held returns the last recorded sample
func (pt *PressTracker) Held() hal.ButtonState {
	return pt.pressed
}
