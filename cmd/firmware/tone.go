//go:build tinygo

package main

import (
	"errors"
	"machine"
)

var errZeroFrequency = errors.New("zero tone frequency")

// pwmGroup is the part of a TinyGo PWM slice the buzzer needs
type pwmGroup interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Set(channel uint8, value uint32)
	Top() uint32
	SetPeriod(period uint64) error
	Enable(enable bool)
}

// pwmTone drives the buzzer from one PWM channel. Duty values are on the
// 0..65535 scale and get mapped onto the slice's counter top.
type pwmTone struct {
	pwm     pwmGroup
	channel uint8
}

func newPWMTone(pwm pwmGroup, pin machine.Pin) (*pwmTone, error) {
	if err := pwm.Configure(machine.PWMConfig{}); err != nil {
		return nil, err
	}
	channel, err := pwm.Channel(pin)
	if err != nil {
		return nil, err
	}
	pwm.Set(channel, 0)
	return &pwmTone{pwm: pwm, channel: channel}, nil
}

func (t *pwmTone) Configure(frequency uint32) error {
	if frequency == 0 {
		return errZeroFrequency
	}
	if err := t.pwm.SetPeriod(uint64(1e9 / frequency)); err != nil {
		return err
	}
	t.pwm.Enable(true)
	return nil
}

func (t *pwmTone) SetDuty(duty uint16) {
	t.pwm.Set(t.channel, uint32(uint64(t.pwm.Top())*uint64(duty)/65535))
}

func (t *pwmTone) Disable() {
	t.pwm.Set(t.channel, 0)
	t.pwm.Enable(false)
}
