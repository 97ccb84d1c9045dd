package hal

import "time"

// Screen dimensions of the OLED panel
const (
	ScreenWidth  = 128
	ScreenHeight = 64
)

// Color is a monochrome pixel value
type Color uint8

const (
	Black Color = 0
	White Color = 1
)

// Display is the narrow slice of the panel driver the menu draws with.
// Coordinates are in pixels with the origin at the top-left corner.
type Display interface {
	Clear()
	FillRect(x, y, w, h int16, c Color)
	SetTextColor(c Color)
	SetCursor(x, y int16)
	Print(text string)
	// Display flushes the drawing buffer to the screen
	Display() error
}

// ToneChannel is a pulse-width modulated output driving the buzzer.
// Duty is expressed as a fraction of 65535.
type ToneChannel interface {
	Configure(frequency uint32) error
	SetDuty(duty uint16)
	Disable()
}

// Sleeper blocks the calling goroutine for a fixed duration
type Sleeper interface {
	Sleep(d time.Duration)
}

// SleepFunc adapts a plain function to Sleeper
type SleepFunc func(d time.Duration)

// Sleep calls f(d)
func (f SleepFunc) Sleep(d time.Duration) {
	f(d)
}

// RealTime sleeps on the wall clock
var RealTime Sleeper = SleepFunc(time.Sleep)

// Board bundles the hardware the menu and the games run on
type Board struct {
	Display Display
	Buttons Buttons
	Tone    ToneChannel
	Clock   Sleeper
}
