package buzzer

import (
	"fmt"
	"time"

	"pico-arcade/pkg/hal"
)

// Fixed beep parameters
const (
	Frequency = 1000 // Hz
	Duty      = 2000 // of 65535
	Duration  = 100 * time.Millisecond
)

// Buzzer plays the confirmation beep on a PWM channel
type Buzzer struct {
	channel hal.ToneChannel
	clock   hal.Sleeper
}

// New creates a Buzzer driving channel and timing the beep with clock
func New(channel hal.ToneChannel, clock hal.Sleeper) *Buzzer {
	return &Buzzer{channel: channel, clock: clock}
}

// Beep drives the channel for Duration and then turns it off. It blocks
// for the whole tone.
func (b *Buzzer) Beep() error {
	if b.channel == nil {
		return fmt.Errorf("buzzer: no tone channel")
	}

	if err := b.channel.Configure(Frequency); err != nil {
		return fmt.Errorf("buzzer: configure %d Hz: %w", Frequency, err)
	}

	b.channel.SetDuty(Duty)
	b.clock.Sleep(Duration)

	// Silence and release the channel
	b.channel.SetDuty(0)
	b.channel.Disable()

	return nil
}
