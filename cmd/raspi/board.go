package main

import (
	"fmt"
	"image"
	"log"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ssd1306"

	"pico-arcade/pkg/config"
	"pico-arcade/pkg/framebuffer"
	"pico-arcade/pkg/hal"
	"pico-arcade/pkg/oled"
	"pico-arcade/pkg/performance"
)

const (
	flushWindow      = 32
	flushReportEvery = 100
)

// piBoard owns the periph.io devices behind the menu's board
type piBoard struct {
	bus    i2c.BusCloser
	dev    *ssd1306.Dev
	fb     *framebuffer.Mono
	pins   hal.Buttons
	tone   *gpioTone
	buzzer gpio.PinIO
}

func openBoard(cfg config.Config) (*piBoard, error) {
	bus, err := i2creg.Open(cfg.I2CBus)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", cfg.I2CBus, err)
	}

	dev, err := ssd1306.NewI2C(bus, &ssd1306.DefaultOpts)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("open ssd1306: %w", err)
	}

	b := &piBoard{bus: bus, dev: dev}
	// I2C transfers dominate the loop, keep an eye on them
	stats := performance.NewFlushMonitor("ssd1306", flushWindow, flushReportEvery)
	b.fb = framebuffer.New(hal.ScreenWidth, hal.ScreenHeight, stats.Wrap(func(m *framebuffer.Mono) error {
		return dev.Draw(dev.Bounds(), m, image.Point{})
	}))

	for i, name := range cfg.ButtonPins {
		p := gpioreg.ByName(name)
		if p == nil {
			b.Close()
			return nil, fmt.Errorf("unknown %s pin %q", hal.Button(i), name)
		}
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			b.Close()
			return nil, fmt.Errorf("configure %s pin %s: %w", hal.Button(i), name, err)
		}
		b.pins[i] = gpioPin{p}
	}

	b.buzzer = gpioreg.ByName(cfg.BuzzerPin)
	if b.buzzer == nil {
		b.Close()
		return nil, fmt.Errorf("unknown buzzer pin %q", cfg.BuzzerPin)
	}
	b.tone = &gpioTone{pin: b.buzzer, muted: cfg.Mute}

	return b, nil
}

// Board returns the hardware view handed to the menu
func (b *piBoard) Board() *hal.Board {
	return &hal.Board{
		Display: oled.NewCanvas(b.fb),
		Buttons: b.pins,
		Tone:    b.tone,
		Clock:   hal.RealTime,
	}
}

// Close blanks the panel and releases the bus
func (b *piBoard) Close() {
	if b.buzzer != nil {
		if err := b.buzzer.Halt(); err != nil {
			log.Printf("Warning: failed to halt buzzer: %v", err)
		}
	}
	if b.dev != nil {
		if err := b.dev.Halt(); err != nil {
			log.Printf("Warning: failed to halt display: %v", err)
		}
	}
	if err := b.bus.Close(); err != nil {
		log.Printf("Warning: failed to close i2c bus: %v", err)
	}
}

// gpioPin reads a periph.io input as a raw line level
type gpioPin struct {
	p gpio.PinIn
}

func (g gpioPin) Get() bool {
	return g.p.Read() == gpio.High
}

// gpioTone drives the buzzer with the pin's hardware PWM
type gpioTone struct {
	pin       gpio.PinIO
	frequency physic.Frequency
	muted     bool
}

func (t *gpioTone) Configure(frequency uint32) error {
	if frequency == 0 {
		return fmt.Errorf("zero tone frequency")
	}
	t.frequency = physic.Frequency(frequency) * physic.Hertz
	return nil
}

func (t *gpioTone) SetDuty(duty uint16) {
	if t.muted {
		duty = 0
	}
	if err := t.pin.PWM(dutyOf(duty), t.frequency); err != nil {
		log.Printf("Warning: buzzer PWM failed: %v", err)
	}
}

func (t *gpioTone) Disable() {
	if err := t.pin.Halt(); err != nil {
		log.Printf("Warning: failed to halt buzzer: %v", err)
	}
}

// dutyOf maps a 0..65535 duty onto periph.io's scale
func dutyOf(duty uint16) gpio.Duty {
	return gpio.Duty(int64(gpio.DutyMax) * int64(duty) / 65535)
}
