package config

import (
	"os"
	"path/filepath"
	"testing"

	"pico-arcade/pkg/hal"
)

func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"ARCADE_TITLE", "ARCADE_SCALE", "ARCADE_MUTE", "ARCADE_REQUIRE_RELEASE",
		"ARCADE_I2C_BUS", "ARCADE_PIN_BUZZER", "ARCADE_SERIAL_PORT", "ARCADE_SERIAL_BAUD",
	}
	keys = append(keys, buttonEnv[:]...)
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	c := Load()
	if c != Default() {
		t.Fatalf("got %+v, expected defaults", c)
	}
	if c.Scale != 6 || c.SerialBaud != 115200 || c.ButtonPins[hal.Down] != "GPIO27" {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ARCADE_TITLE", "Bench")
	t.Setenv("ARCADE_SCALE", "3")
	t.Setenv("ARCADE_MUTE", "true")
	t.Setenv("ARCADE_REQUIRE_RELEASE", "1")
	t.Setenv("ARCADE_PIN_BUTTON2", "GPIO5")
	t.Setenv("ARCADE_SERIAL_PORT", "/dev/ttyACM0")

	c := Load()
	if c.Title != "Bench" || c.Scale != 3 || !c.Mute || !c.RequireRelease {
		t.Fatalf("got %+v", c)
	}
	if c.ButtonPins[hal.Button2] != "GPIO5" || c.ButtonPins[hal.Button1] != "GPIO24" {
		t.Fatalf("pins: %v", c.ButtonPins)
	}
	if c.SerialPort != "/dev/ttyACM0" {
		t.Fatalf("serial port: %q", c.SerialPort)
	}
}

func TestLoadMalformedFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("ARCADE_SCALE", "big")
	t.Setenv("ARCADE_MUTE", "maybe")
	t.Setenv("ARCADE_SERIAL_BAUD", "fast")

	c := Load()
	if c.Scale != 6 || c.Mute || c.SerialBaud != 115200 {
		t.Fatalf("got %+v", c)
	}

	t.Setenv("ARCADE_SCALE", "0")
	if c := Load(); c.Scale != 6 {
		t.Fatalf("non-positive scale accepted: %d", c.Scale)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("ARCADE_TITLE=From File\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// godotenv does not override variables that are already set
	os.Unsetenv("ARCADE_TITLE")
	LoadDotEnv(path)
	if c := Load(); c.Title != "From File" {
		t.Fatalf("title: %q", c.Title)
	}

	// A missing file only logs
	LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
}
