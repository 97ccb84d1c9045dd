package gamelist

import (
	"fmt"
	"testing"

	"pico-arcade/pkg/framebuffer"
	"pico-arcade/pkg/games"
	"pico-arcade/pkg/hal"
	"pico-arcade/pkg/oled"
)

type printed struct {
	text  string
	x, y  int16
	color hal.Color
}

type rect struct {
	x, y, w, h int16
	color      hal.Color
}

// recordingDisplay keeps every draw call in order
type recordingDisplay struct {
	clears   int
	flushes  int
	rects    []rect
	prints   []printed
	color    hal.Color
	cx, cy   int16
	flushErr error
}

func (d *recordingDisplay) Clear() { d.clears++ }
func (d *recordingDisplay) FillRect(x, y, w, h int16, c hal.Color) {
	d.rects = append(d.rects, rect{x, y, w, h, c})
}
func (d *recordingDisplay) SetTextColor(c hal.Color) { d.color = c }
func (d *recordingDisplay) SetCursor(x, y int16)     { d.cx, d.cy = x, y }
func (d *recordingDisplay) Print(text string) {
	d.prints = append(d.prints, printed{text, d.cx, d.cy, d.color})
}
func (d *recordingDisplay) Display() error {
	d.flushes++
	return d.flushErr
}

func TestDrawHighlightsExactlyCurrent(t *testing.T) {
	w := NewWidget(games.List[:], hal.ScreenWidth)

	for current := 0; current < games.Count; current++ {
		d := &recordingDisplay{}
		if err := w.Draw(d, current); err != nil {
			t.Fatal(err)
		}

		if d.clears != 1 || d.flushes != 1 {
			t.Fatalf("current=%d: clears=%d flushes=%d", current, d.clears, d.flushes)
		}
		if len(d.rects) != 1 {
			t.Fatalf("current=%d: %d bars drawn", current, len(d.rects))
		}
		bar := d.rects[0]
		expectedBar := rect{0, int16(current * RowHeight), hal.ScreenWidth, BarHeight, hal.White}
		if bar != expectedBar {
			t.Fatalf("current=%d: bar %+v, expected %+v", current, bar, expectedBar)
		}

		if len(d.prints) != games.Count {
			t.Fatalf("current=%d: %d labels printed", current, len(d.prints))
		}
		for row, p := range d.prints {
			expectedColor := hal.White
			if row == current {
				expectedColor = hal.Black
			}
			if p.text != games.List[row].Label || p.y != int16(row*RowHeight) || p.color != expectedColor {
				t.Fatalf("current=%d row=%d: got %+v", current, row, p)
			}
		}
	}
}

func TestTextXCentersLabels(t *testing.T) {
	w := NewWidget(games.List[:], hal.ScreenWidth)

	table := []struct {
		label    string
		expected int16
	}{
		{"Pong", 52},
		{"Space Invaders", 22},
		{"Lunar Module", 28},
		{"2048", 52},
	}
	for _, entry := range table {
		if got := w.TextX(entry.label); got != entry.expected {
			t.Fatalf("TextX(%q): got %d, expected %d", entry.label, got, entry.expected)
		}
	}
}

func TestDrawReturnsFlushError(t *testing.T) {
	w := NewWidget(games.List[:], hal.ScreenWidth)
	d := &recordingDisplay{flushErr: fmt.Errorf("i2c nack")}
	if err := w.Draw(d, 0); err == nil {
		t.Fatalf("expected the flush error")
	}
}

func TestDrawOnFrameBuffer(t *testing.T) {
	w := NewWidget(games.List[:], hal.ScreenWidth)
	fb := framebuffer.New(hal.ScreenWidth, hal.ScreenHeight, nil)
	canvas := oled.NewCanvas(fb)

	for current := 0; current < games.Count; current++ {
		if err := w.Draw(canvas, current); err != nil {
			t.Fatal(err)
		}
		// Column 0 never carries text, so it is lit only under the bar
		for row := 0; row < games.Count; row++ {
			lit := fb.Pixel(0, int16(row*RowHeight))
			if lit != (row == current) {
				t.Fatalf("current=%d row=%d: lit=%v", current, row, lit)
			}
		}
	}
}

func TestLabelsRenderCentered(t *testing.T) {
	w := NewWidget(games.List[:], hal.ScreenWidth)

	for _, entry := range games.List {
		fb := framebuffer.New(hal.ScreenWidth, hal.ScreenHeight, nil)
		canvas := oled.NewCanvas(fb)
		canvas.SetCursor(w.TextX(entry.Label), 0)
		canvas.Print(entry.Label)

		minX, maxX := int16(hal.ScreenWidth), int16(-1)
		for y := int16(0); y < hal.ScreenHeight; y++ {
			for x := int16(0); x < hal.ScreenWidth; x++ {
				if fb.Pixel(x, y) {
					minX = min(minX, x)
					maxX = max(maxX, x)
				}
			}
		}

		left, right := minX, hal.ScreenWidth-1-maxX
		if d := left - right; d < -1 || d > 1 {
			t.Fatalf("%q: margins left=%d right=%d", entry.Label, left, right)
		}
	}
}

func TestHighlightedLabelKeepsBaseline(t *testing.T) {
	w := NewWidget(games.List[:], hal.ScreenWidth)
	fb := framebuffer.New(hal.ScreenWidth, hal.ScreenHeight, nil)

	for current := 0; current < games.Count; current++ {
		if err := w.Draw(oled.NewCanvas(fb), current); err != nil {
			t.Fatal(err)
		}

		// The last bar row is where the text baseline sits, so the label
		// must cut holes into it
		y := int16(current*RowHeight + BarHeight - 1)
		holes := 0
		for x := int16(0); x < hal.ScreenWidth; x++ {
			if !fb.Pixel(x, y) {
				holes++
			}
		}
		if holes == 0 {
			t.Fatalf("current=%d: %q lost its bottom stroke", current, games.List[current].Label)
		}
	}
}
