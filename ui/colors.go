package ui

import "image/color"

// Panel colors. Lit pixels use the pale blue of common SSD1306 modules.
var (
	PixelOn  = color.RGBA{R: 170, G: 220, B: 255, A: 255}
	PixelOff = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)
