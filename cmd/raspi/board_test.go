package main

import (
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"

	"pico-arcade/pkg/buzzer"
	"pico-arcade/pkg/hal"
)

func TestGPIOPinIsActiveLow(t *testing.T) {
	p := &gpiotest.Pin{N: "GPIO17", L: gpio.High}
	var pins hal.Buttons
	pins[hal.Up] = gpioPin{p}

	if hal.ReadButtons(pins).Pressed(hal.Up) {
		t.Fatalf("high line should read released")
	}

	p.L = gpio.Low
	if !hal.ReadButtons(pins).Pressed(hal.Up) {
		t.Fatalf("low line should read pressed")
	}
}

func TestGPIOToneBeep(t *testing.T) {
	p := &gpiotest.Pin{N: "GPIO18"}
	tone := &gpioTone{pin: p}

	if err := tone.Configure(buzzer.Frequency); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	tone.SetDuty(buzzer.Duty)

	if p.F != 1000*physic.Hertz {
		t.Fatalf("frequency = %v, want 1kHz", p.F)
	}
	if want := dutyOf(buzzer.Duty); p.D != want || want == 0 {
		t.Fatalf("duty = %v, want %v", p.D, want)
	}

	tone.SetDuty(0)
	if p.D != 0 {
		t.Fatalf("duty = %v after silence", p.D)
	}
}

func TestGPIOToneMuted(t *testing.T) {
	p := &gpiotest.Pin{N: "GPIO18"}
	tone := &gpioTone{pin: p, muted: true}

	if err := tone.Configure(buzzer.Frequency); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	tone.SetDuty(buzzer.Duty)
	if p.D != 0 {
		t.Fatalf("muted buzzer got duty %v", p.D)
	}
}

func TestGPIOToneRejectsZeroFrequency(t *testing.T) {
	tone := &gpioTone{pin: &gpiotest.Pin{N: "GPIO18"}}
	if err := tone.Configure(0); err == nil {
		t.Fatalf("expected an error")
	}
}

func TestDutyOf(t *testing.T) {
	if dutyOf(0) != 0 {
		t.Fatalf("zero duty")
	}
	if dutyOf(65535) != gpio.DutyMax {
		t.Fatalf("full duty = %v", dutyOf(65535))
	}
}
