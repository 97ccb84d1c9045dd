package framebuffer

import (
	"image"
	"image/color"
)

// FlushFunc receives the buffer every time Display is called
type FlushFunc func(m *Mono) error

// Mono is a one-bit-per-pixel frame buffer. It satisfies the TinyGo
// drivers.Displayer contract so the same drawing code runs against it and
// against a real panel, and it is an image.Image so hosted backends can
// push it to a window or to a periph.io device.
type Mono struct {
	width, height int16
	bits          []byte
	flush         FlushFunc
	flushes       int
}

// New creates a cleared width x height buffer. flush may be nil.
func New(width, height int16, flush FlushFunc) *Mono {
	return &Mono{
		width:  width,
		height: height,
		bits:   make([]byte, (int(width)*int(height)+7)/8),
		flush:  flush,
	}
}

// Size returns the buffer dimensions
func (m *Mono) Size() (x, y int16) {
	return m.width, m.height
}

// SetPixel lights the pixel for any non-black color. Out of range
// coordinates are ignored.
func (m *Mono) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	off := int(y)*int(m.width) + int(x)
	if c.R|c.G|c.B != 0 {
		m.bits[off/8] |= 1 << (off % 8)
	} else {
		m.bits[off/8] &^= 1 << (off % 8)
	}
}

// Pixel reports whether the pixel is lit
func (m *Mono) Pixel(x, y int16) bool {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return false
	}
	off := int(y)*int(m.width) + int(x)
	return m.bits[off/8]&(1<<(off%8)) != 0
}

// ClearBuffer turns every pixel off without flushing
func (m *Mono) ClearBuffer() {
	for i := range m.bits {
		m.bits[i] = 0
	}
}

// Display hands the buffer to the flush hook
func (m *Mono) Display() error {
	m.flushes++
	if m.flush == nil {
		return nil
	}
	return m.flush(m)
}

// Flushes returns how many times Display was called
func (m *Mono) Flushes() int {
	return m.flushes
}

// CopyTo copies the pixels into dst, which must have the same size
func (m *Mono) CopyTo(dst *Mono) {
	copy(dst.bits, m.bits)
}

// ColorModel implements image.Image
func (m *Mono) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds implements image.Image
func (m *Mono) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(m.width), int(m.height))
}

// At implements image.Image
func (m *Mono) At(x, y int) color.Color {
	if m.Pixel(int16(x), int16(y)) {
		return color.Gray{Y: 0xff}
	}
	return color.Gray{Y: 0}
}

// RGBA renders the buffer as packed 8-bit RGBA using on and off as the lit
// and dark colors.
func (m *Mono) RGBA(on, off color.RGBA) []byte {
	pixels := make([]byte, 4*int(m.width)*int(m.height))
	for row := int16(0); row < m.height; row++ {
		for col := int16(0); col < m.width; col++ {
			c := off
			if m.Pixel(col, row) {
				c = on
			}
			i := 4 * (int(row)*int(m.width) + int(col))
			pixels[i+0] = c.R
			pixels[i+1] = c.G
			pixels[i+2] = c.B
			pixels[i+3] = c.A
		}
	}
	return pixels
}
