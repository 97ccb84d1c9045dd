//go:build !ebiten

package simulator

import (
	"context"
	"log"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"pico-arcade/pkg/buzzer"
	"pico-arcade/pkg/config"
	"pico-arcade/pkg/framebuffer"
	"pico-arcade/pkg/hal"
	"pico-arcade/pkg/oled"
	"pico-arcade/pkg/performance"
	"pico-arcade/ui"
)

// eventSlice bounds how long a sleep goes without pumping window events
const eventSlice = 5 * time.Millisecond

var sdlKeys = [hal.ButtonCount][]sdl.Scancode{
	hal.Up:      {sdl.SCANCODE_W, sdl.SCANCODE_UP},
	hal.Down:    {sdl.SCANCODE_S, sdl.SCANCODE_DOWN},
	hal.Left:    {sdl.SCANCODE_A, sdl.SCANCODE_LEFT},
	hal.Right:   {sdl.SCANCODE_D, sdl.SCANCODE_RIGHT},
	hal.Button1: {sdl.SCANCODE_K, sdl.SCANCODE_RETURN},
	hal.Button2: {sdl.SCANCODE_J, sdl.SCANCODE_SPACE},
}

// SDLBoard emulates the handheld in an SDL2 window. Everything runs on the
// calling thread: sleeps pump the event queue so the window stays
// responsive while the menu blocks.
type SDLBoard struct {
	renderer *sdl.Renderer
	texture  *sdl.Texture
	fb       *framebuffer.Mono
	canvas   *oled.Canvas
	stats    *performance.FlushMonitor

	// Keyboard state array owned by SDL, refreshed by event pumping
	keyState []uint8

	audio sdl.AudioDeviceID
	tone  *sdlTone

	cancel context.CancelFunc
}

// NewSDLBoard attaches a board to an existing renderer. cancel is called
// when the window is closed or Escape is pressed.
func NewSDLBoard(renderer *sdl.Renderer, cfg config.Config, cancel context.CancelFunc) (*SDLBoard, error) {
	b := &SDLBoard{
		renderer: renderer,
		cancel:   cancel,
	}

	// Draw into a frame buffer and present it on every flush
	b.stats = performance.NewFlushMonitor("sdl", 32, 0)
	b.fb = framebuffer.New(hal.ScreenWidth, hal.ScreenHeight, b.stats.Wrap(func(m *framebuffer.Mono) error {
		return ui.Present(b.renderer, b.texture, m)
	}))
	b.canvas = oled.NewCanvas(b.fb)

	texture, err := ui.NewPanelTexture(renderer, b.fb)
	if err != nil {
		return nil, err
	}
	b.texture = texture

	b.keyState = sdl.GetKeyboardState()

	// Audio is optional, the menu still works without a buzzer
	b.tone = &sdlTone{state: &toneState{muted: cfg.Mute}}
	if dev, err := openAudio(); err != nil {
		log.Printf("Warning: buzzer emulation disabled: %v", err)
	} else {
		b.audio = dev
		b.tone.dev = dev
	}

	return b, nil
}

func openAudio() (sdl.AudioDeviceID, error) {
	if sdl.WasInit(sdl.INIT_AUDIO) == 0 {
		if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
			return 0, err
		}
	}
	return sdl.OpenAudioDevice("", false, &sdl.AudioSpec{
		Freq:     SampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  1024,
	}, nil, 0)
}

// Board returns the hardware view handed to the menu
func (b *SDLBoard) Board() *hal.Board {
	var buttons hal.Buttons
	for i := range buttons {
		scancodes := sdlKeys[i]
		buttons[i] = hal.PinFunc(func() bool {
			for _, sc := range scancodes {
				if b.keyState[sc] != 0 {
					// Pressed pulls the line low
					return false
				}
			}
			return true
		})
	}

	return &hal.Board{
		Display: b.canvas,
		Buttons: buttons,
		Tone:    b.tone,
		Clock:   b,
	}
}

// Sleep waits for d while handling window events
func (b *SDLBoard) Sleep(d time.Duration) {
	deadline := time.Now().Add(d)
	for {
		b.pumpEvents()

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return
		}
		if remaining > eventSlice {
			remaining = eventSlice
		}
		time.Sleep(remaining)
	}
}

func (b *SDLBoard) pumpEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			b.cancel()
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				b.cancel()
			}
		case *sdl.WindowEvent:
			// Redraw after the window was uncovered or resized
			if e.Event == sdl.WINDOWEVENT_EXPOSED {
				if err := ui.Present(b.renderer, b.texture, b.fb); err != nil {
					log.Printf("Present error: %v", err)
				}
			}
		}
	}
}

// Close releases the texture and the audio device
func (b *SDLBoard) Close() {
	r := b.stats.Report()
	log.Printf("Display flush stats | flushes=%d | avg_ms=%.2f | max_ms=%.2f | slow=%d",
		r.Flushes, r.AvgMs, r.MaxMs, r.Slow)

	if b.audio != 0 {
		sdl.CloseAudioDevice(b.audio)
	}
	if b.texture != nil {
		b.texture.Destroy()
	}
}

// sdlTone feeds a queued SDL audio device. Starting the tone queues half a
// second of square wave; stopping it drops whatever is still queued.
type sdlTone struct {
	dev   sdl.AudioDeviceID
	state *toneState
}

func (t *sdlTone) Configure(frequency uint32) error {
	t.state.configure(frequency)
	return nil
}

func (t *sdlTone) SetDuty(duty uint16) {
	t.state.setDuty(duty)
	if t.dev == 0 {
		return
	}

	sdl.ClearQueuedAudio(t.dev)
	if !t.state.sounding() {
		sdl.PauseAudioDevice(t.dev, true)
		return
	}

	samples := t.state.next(SampleRate / 2)
	if err := sdl.QueueAudio(t.dev, buzzer.EncodePCM16(samples, 1)); err != nil {
		log.Printf("Warning: failed to queue tone: %v", err)
		return
	}
	sdl.PauseAudioDevice(t.dev, false)
}

func (t *sdlTone) Disable() {
	t.SetDuty(0)
}
