package input

import (
	"testing"

	"pico-arcade/pkg/hal"
)

func TestJustPressedReportsLeadingEdgeOnly(t *testing.T) {
	pt := NewPressTracker()

	samples := []struct {
		in       hal.ButtonState
		expected hal.ButtonState
	}{
		{hal.ButtonState{hal.Down: true}, hal.ButtonState{hal.Down: true}},
		{hal.ButtonState{hal.Down: true}, hal.ButtonState{}},
		{hal.ButtonState{hal.Down: true, hal.Button1: true}, hal.ButtonState{hal.Button1: true}},
		{hal.ButtonState{}, hal.ButtonState{}},
		{hal.ButtonState{hal.Down: true}, hal.ButtonState{hal.Down: true}},
	}

	for i, s := range samples {
		if got := pt.JustPressed(s.in); got != s.expected {
			t.Fatalf("sample %d: got %v, expected %v", i, got, s.expected)
		}
	}
}

func TestHeldReturnsLastSample(t *testing.T) {
	pt := NewPressTracker()
	pt.JustPressed(hal.ButtonState{hal.Up: true})
	if !pt.Held()[hal.Up] {
		t.Fatalf("up should be held")
	}

	pt.JustPressed(hal.ButtonState{})
	if pt.Held().Any() {
		t.Fatalf("nothing should be held after release")
	}
}
