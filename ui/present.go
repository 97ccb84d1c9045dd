//go:build !ebiten

package ui

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"pico-arcade/pkg/framebuffer"
)

// NewPanelTexture creates a streaming texture matching the frame buffer
func NewPanelTexture(renderer *sdl.Renderer, fb *framebuffer.Mono) (*sdl.Texture, error) {
	w, h := fb.Size()
	// ABGR8888 is R,G,B,A in memory on little endian hosts
	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING,
		int32(w),
		int32(h),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create panel texture: %v", err)
	}
	return texture, nil
}

// Present copies the frame buffer into texture and shows it scaled to the
// whole window
func Present(renderer *sdl.Renderer, texture *sdl.Texture, fb *framebuffer.Mono) error {
	w, h := fb.Size()
	src := fb.RGBA(PixelOn, PixelOff)
	rowBytes := int(w) * 4

	// Update the texture row by row, the pitch may be padded
	pixels, pitch, err := texture.Lock(nil)
	if err != nil {
		return err
	}
	for row := 0; row < int(h); row++ {
		copy(pixels[row*pitch:row*pitch+rowBytes], src[row*rowBytes:(row+1)*rowBytes])
	}
	texture.Unlock()

	// Present the frame
	renderer.SetDrawColor(PixelOff.R, PixelOff.G, PixelOff.B, PixelOff.A)
	renderer.Clear()
	if err := renderer.Copy(texture, nil, nil); err != nil {
		return err
	}
	renderer.Present()
	return nil
}
