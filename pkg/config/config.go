package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"pico-arcade/pkg/hal"
)

// Config holds the settings of hosted builds. The Pico firmware has no
// environment and always runs with Default().
type Config struct {
	Title          string
	Scale          int
	Mute           bool
	RequireRelease bool

	// Raspberry Pi wiring
	I2CBus     string
	ButtonPins [hal.ButtonCount]string
	BuzzerPin  string

	// Serial monitor
	SerialPort string
	SerialBaud int
}

var defaultConfig = Config{
	Title:          "Pico Arcade",
	Scale:          6,
	Mute:           false,
	RequireRelease: false,
	I2CBus:         "",
	ButtonPins: [hal.ButtonCount]string{
		hal.Up:      "GPIO17",
		hal.Down:    "GPIO27",
		hal.Left:    "GPIO22",
		hal.Right:   "GPIO23",
		hal.Button1: "GPIO24",
		hal.Button2: "GPIO25",
	},
	BuzzerPin:  "GPIO18",
	SerialPort: "",
	SerialBaud: 115200,
}

var buttonEnv = [hal.ButtonCount]string{
	hal.Up:      "ARCADE_PIN_UP",
	hal.Down:    "ARCADE_PIN_DOWN",
	hal.Left:    "ARCADE_PIN_LEFT",
	hal.Right:   "ARCADE_PIN_RIGHT",
	hal.Button1: "ARCADE_PIN_BUTTON1",
	hal.Button2: "ARCADE_PIN_BUTTON2",
}

// Default returns the built-in configuration
func Default() Config {
	return defaultConfig
}

// LoadDotEnv loads a .env file into the environment when one is present.
// A missing file is not an error.
func LoadDotEnv(filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}
}

// Load reads ARCADE_* variables from the environment. Unset or malformed
// values fall back to the defaults so the application can keep running.
func Load() Config {
	c := Default()

	c.Title = stringEnv("ARCADE_TITLE", c.Title)
	c.Scale = intEnv("ARCADE_SCALE", c.Scale)
	if c.Scale < 1 {
		log.Printf("Warning: ARCADE_SCALE must be positive, using %d", defaultConfig.Scale)
		c.Scale = defaultConfig.Scale
	}
	c.Mute = boolEnv("ARCADE_MUTE", c.Mute)
	c.RequireRelease = boolEnv("ARCADE_REQUIRE_RELEASE", c.RequireRelease)

	c.I2CBus = stringEnv("ARCADE_I2C_BUS", c.I2CBus)
	for i, key := range buttonEnv {
		c.ButtonPins[i] = stringEnv(key, c.ButtonPins[i])
	}
	c.BuzzerPin = stringEnv("ARCADE_PIN_BUZZER", c.BuzzerPin)

	c.SerialPort = stringEnv("ARCADE_SERIAL_PORT", c.SerialPort)
	c.SerialBaud = intEnv("ARCADE_SERIAL_BAUD", c.SerialBaud)

	return c
}

func stringEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: invalid %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}

func boolEnv(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Warning: invalid %s=%q: %v", key, v, err)
		return fallback
	}
	return b
}
