//go:build tinygo

// Command firmware is the menu as it runs on the Pico itself.
package main

import (
	"context"
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"

	"pico-arcade/pkg/games"
	"pico-arcade/pkg/hal"
	"pico-arcade/pkg/oled"
	"pico-arcade/screens/menu"
)

// StartupDelay lets the panel power up before the first I2C transfer
const StartupDelay = 200 * time.Millisecond

var buttonPins = [hal.ButtonCount]machine.Pin{
	hal.Up:      machine.GP2,
	hal.Down:    machine.GP3,
	hal.Left:    machine.GP4,
	hal.Right:   machine.GP5,
	hal.Button1: machine.GP6,
	hal.Button2: machine.GP7,
}

const (
	i2cSDA    = machine.GP14
	i2cSCL    = machine.GP15
	buzzerPin = machine.GP18

	displayAddress = 0x3C
)

func main() {
	time.Sleep(StartupDelay)

	board, err := bringUp()
	if err != nil {
		halt("bring-up failed", err)
	}

	println("menu ready")
	screen := menu.NewScreen(board, games.DefaultTable(), menu.Options{})
	if err := screen.Run(context.Background()); err != nil {
		halt("menu stopped", err)
	}
}

func bringUp() (*hal.Board, error) {
	// Buttons are wired to ground
	var buttons hal.Buttons
	for i, pin := range buttonPins {
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
		buttons[i] = pin
	}

	err := machine.I2C1.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       i2cSDA,
		SCL:       i2cSCL,
	})
	if err != nil {
		return nil, err
	}

	dev := ssd1306.NewI2C(machine.I2C1)
	dev.Configure(ssd1306.Config{
		Width:    hal.ScreenWidth,
		Height:   hal.ScreenHeight,
		Address:  displayAddress,
		VccState: ssd1306.SWITCHCAPVCC,
	})

	tone, err := newPWMTone(machine.PWM1, buzzerPin)
	if err != nil {
		return nil, err
	}

	return &hal.Board{
		Display: oled.NewCanvas(&dev),
		Buttons: buttons,
		Tone:    tone,
		Clock:   hal.RealTime,
	}, nil
}

// halt reports a fatal error on the USB console forever
func halt(msg string, err error) {
	for {
		println(msg+":", err.Error())
		time.Sleep(time.Second)
	}
}
