package gamelist

import (
	"pico-arcade/pkg/games"
	"pico-arcade/pkg/hal"
	"pico-arcade/pkg/oled"
)

// Layout of the list on the panel
const (
	RowHeight  = 8 // pitch between entries
	BarHeight  = 7 // height of the highlight bar
	GlyphWidth = oled.GlyphWidth
)

// Widget draws the game list with the current entry inverted
type Widget struct {
	entries []games.Entry
	width   int16
}

// NewWidget creates a list widget for entries on a panel width pixels wide
func NewWidget(entries []games.Entry, width int16) *Widget {
	return &Widget{
		entries: entries,
		width:   width,
	}
}

// Len returns the number of entries
func (w *Widget) Len() int {
	return len(w.entries)
}

// Draw redraws the whole screen and flushes it
func (w *Widget) Draw(display hal.Display, current int) error {
	display.Clear()

	for row, entry := range w.entries {
		y := int16(row * RowHeight)

		// Highlight selected item
		if row == current {
			display.FillRect(0, y, w.width, BarHeight, hal.White)
			display.SetTextColor(hal.Black)
		} else {
			display.SetTextColor(hal.White)
		}

		display.SetCursor(w.TextX(entry.Label), y)
		display.Print(entry.Label)
	}

	return display.Display()
}

// TextX returns the x position that centers label on the panel
func (w *Widget) TextX(label string) int16 {
	return w.width/2 - int16(len(label)*GlyphWidth)/2
}
