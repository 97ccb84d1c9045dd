//go:build ebiten

package simulator

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"pico-arcade/pkg/buzzer"
	"pico-arcade/pkg/config"
	"pico-arcade/pkg/framebuffer"
	"pico-arcade/pkg/hal"
	"pico-arcade/pkg/oled"
	"pico-arcade/ui"
)

var ebitenKeys = [hal.ButtonCount][]ebiten.Key{
	hal.Up:      {ebiten.KeyW, ebiten.KeyArrowUp},
	hal.Down:    {ebiten.KeyS, ebiten.KeyArrowDown},
	hal.Left:    {ebiten.KeyA, ebiten.KeyArrowLeft},
	hal.Right:   {ebiten.KeyD, ebiten.KeyArrowRight},
	hal.Button1: {ebiten.KeyK, ebiten.KeyEnter},
	hal.Button2: {ebiten.KeyJ, ebiten.KeySpace},
}

// EbitenBoard emulates the handheld as an ebiten game. The menu loop runs
// on its own goroutine against real time while ebiten owns the main thread.
type EbitenBoard struct {
	fb     *framebuffer.Mono
	canvas *oled.Canvas

	// Last flushed frame, shared with Draw
	mu    sync.Mutex
	front *framebuffer.Mono

	keys [hal.ButtonCount]atomic.Bool
	done atomic.Bool

	tone   *toneState
	player *audio.Player
}

// NewEbitenBoard sets up the window, the panel and the audio player
func NewEbitenBoard(cfg config.Config) (*EbitenBoard, error) {
	ebiten.SetWindowSize(hal.ScreenWidth*cfg.Scale, hal.ScreenHeight*cfg.Scale)
	ebiten.SetWindowTitle(cfg.Title)

	b := &EbitenBoard{
		front: framebuffer.New(hal.ScreenWidth, hal.ScreenHeight, nil),
		tone:  &toneState{muted: cfg.Mute},
	}
	b.fb = framebuffer.New(hal.ScreenWidth, hal.ScreenHeight, func(m *framebuffer.Mono) error {
		b.mu.Lock()
		defer b.mu.Unlock()
		m.CopyTo(b.front)
		return nil
	})
	b.canvas = oled.NewCanvas(b.fb)

	player, err := audio.NewContext(SampleRate).NewPlayer(&toneReader{state: b.tone})
	if err != nil {
		return nil, err
	}
	player.Play()
	b.player = player

	return b, nil
}

// Board returns the hardware view handed to the menu
func (b *EbitenBoard) Board() *hal.Board {
	var buttons hal.Buttons
	for i := range buttons {
		key := &b.keys[i]
		buttons[i] = hal.PinFunc(func() bool {
			// Pressed pulls the line low
			return !key.Load()
		})
	}

	return &hal.Board{
		Display: b.canvas,
		Buttons: buttons,
		Tone:    ebitenTone{state: b.tone},
		Clock:   hal.RealTime,
	}
}

// Start runs fn on its own goroutine and ends the game once it returns
func (b *EbitenBoard) Start(ctx context.Context, fn func(ctx context.Context)) {
	go func() {
		defer b.done.Store(true)
		fn(ctx)
	}()
}

// Update samples the keyboard for the menu goroutine
func (b *EbitenBoard) Update() error {
	if b.done.Load() || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for i, keys := range ebitenKeys {
		pressed := false
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				pressed = true
				break
			}
		}
		b.keys[i].Store(pressed)
	}
	return nil
}

// Draw shows the last flushed frame
func (b *EbitenBoard) Draw(screen *ebiten.Image) {
	b.mu.Lock()
	pixels := b.front.RGBA(ui.PixelOn, ui.PixelOff)
	b.mu.Unlock()

	screen.WritePixels(pixels)
}

// Layout keeps the logical screen at panel resolution
func (b *EbitenBoard) Layout(outsideWidth, outsideHeight int) (int, int) {
	return hal.ScreenWidth, hal.ScreenHeight
}

// Close stops the audio player
func (b *EbitenBoard) Close() {
	if b.player != nil {
		if err := b.player.Close(); err != nil {
			log.Printf("Warning: failed to close audio player: %v", err)
		}
	}
}

// ebitenTone drives the shared tone state; the audio player pulls from it
type ebitenTone struct {
	state *toneState
}

func (t ebitenTone) Configure(frequency uint32) error {
	t.state.configure(frequency)
	return nil
}

func (t ebitenTone) SetDuty(duty uint16) {
	t.state.setDuty(duty)
}

func (t ebitenTone) Disable() {
	t.state.setDuty(0)
}

// toneReader streams the tone as 16-bit stereo PCM
type toneReader struct {
	state *toneState
}

func (r *toneReader) Read(buf []byte) (int, error) {
	frames := len(buf) / 4
	if frames == 0 {
		return 0, nil
	}
	if !r.state.sounding() {
		clear(buf[:frames*4])
		return frames * 4, nil
	}
	return copy(buf, buzzer.EncodePCM16(r.state.next(frames), 2)), nil
}
