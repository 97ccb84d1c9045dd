package oled

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"pico-arcade/pkg/hal"
)

// Baseline is the distance from the cursor to the text baseline. Capitals
// and digits then cover the 7 rows under the cursor, the same rows as the
// highlight bar. Ascenders reach one row above, descenders two below.
const Baseline = 6

// GlyphWidth is the advance of every glyph in the panel font
const GlyphWidth = 6

var palette = [...]color.RGBA{
	hal.Black: {R: 0, G: 0, B: 0, A: 255},
	hal.White: {R: 255, G: 255, B: 255, A: 255},
}

type bufferClearer interface {
	ClearBuffer()
}

// Canvas implements hal.Display on top of any TinyGo displayer: an SSD1306
// on the Pico or a frame buffer everywhere else.
type Canvas struct {
	dev       drivers.Displayer
	font      *tinyfont.Font
	textColor hal.Color
	cursorX   int16
	cursorY   int16
}

// NewCanvas wraps dev with the default 8pt font and white text
func NewCanvas(dev drivers.Displayer) *Canvas {
	return &Canvas{
		dev:       dev,
		font:      &proggy.TinySZ8pt7b,
		textColor: hal.White,
	}
}

// Clear blanks the drawing buffer. The screen changes on the next Display.
func (c *Canvas) Clear() {
	if bc, ok := c.dev.(bufferClearer); ok {
		bc.ClearBuffer()
		return
	}
	w, h := c.dev.Size()
	c.FillRect(0, 0, w, h, hal.Black)
}

// FillRect paints a solid w x h rectangle with its top-left corner at x, y
func (c *Canvas) FillRect(x, y, w, h int16, col hal.Color) {
	rgba := rgbaOf(col)
	for row := y; row < y+h; row++ {
		for column := x; column < x+w; column++ {
			c.dev.SetPixel(column, row, rgba)
		}
	}
}

// SetTextColor selects the color of subsequent Print calls
func (c *Canvas) SetTextColor(col hal.Color) {
	c.textColor = col
}

// SetCursor moves the top-left corner of the next Print
func (c *Canvas) SetCursor(x, y int16) {
	c.cursorX = x
	c.cursorY = y
}

// Print draws text at the cursor. Only glyph pixels are written, so dark
// text on a filled bar comes out inverted.
func (c *Canvas) Print(text string) {
	tinyfont.WriteLine(c.dev, c.font, c.cursorX, c.cursorY+Baseline, text, rgbaOf(c.textColor))
}

// Display pushes the buffer to the panel
func (c *Canvas) Display() error {
	return c.dev.Display()
}

func rgbaOf(col hal.Color) color.RGBA {
	if int(col) < len(palette) {
		return palette[col]
	}
	return palette[hal.White]
}
