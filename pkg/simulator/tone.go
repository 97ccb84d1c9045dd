package simulator

import (
	"sync"

	"pico-arcade/pkg/buzzer"
)

// SampleRate of the emulated buzzer output
const SampleRate = 44100

// toneState is the emulated PWM slice: a frequency, a duty and the phase
// of the running square wave. Audio callbacks read it from their own
// goroutine, so every access is locked.
type toneState struct {
	mu        sync.Mutex
	frequency uint32
	duty      uint16
	muted     bool
	phase     int
}

func (t *toneState) configure(frequency uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frequency = frequency
	t.phase = 0
}

func (t *toneState) setDuty(duty uint16) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.muted {
		duty = 0
	}
	t.duty = duty
}

func (t *toneState) sounding() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.duty != 0 && t.frequency != 0
}

// next returns the following n mono samples of the wave
func (t *toneState) next(n int) []int16 {
	t.mu.Lock()
	defer t.mu.Unlock()

	samples := buzzer.SquareWave(SampleRate, int(t.frequency), t.duty, t.phase, n)

	// One second always holds a whole number of periods
	t.phase = (t.phase + n) % SampleRate
	return samples
}
