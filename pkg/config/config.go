// Package config loads the demo settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/chazu/colorbuttons/pkg/frame"
)

// Config holds the window and loop settings.
type Config struct {
	Title     string `env:"DEMO_TITLE,default=Hello imgui-rs!" validate:"required"`
	Width     int    `env:"DEMO_WIDTH,default=600" validate:"gt=0"`
	Height    int    `env:"DEMO_HEIGHT,default=400" validate:"gt=0"`
	Maximized bool   `env:"DEMO_MAXIMIZED,default=true"`
	// ContinuousRedraw redraws every vsync; otherwise only on input.
	ContinuousRedraw bool   `env:"DEMO_CONTINUOUS_REDRAW,default=true"`
	QuitMode         string `env:"DEMO_QUIT_MODE,default=immediate" validate:"oneof=immediate frame"`
	RenderFailure    string `env:"DEMO_RENDER_FAILURE,default=abort" validate:"oneof=abort log"`
	LogLevel         string `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
}

// Load reads an optional .env file, then the process environment.
func Load() (Config, error) {
	if err := loadDotenv(".env"); err != nil {
		return Config{}, err
	}
	es, err := env.EnvironToEnvSet(os.Environ())
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return FromEnvSet(es)
}

// loadDotenv exports the variables of path. A missing file is not an
// error; a malformed one is.
func loadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// FromEnvSet builds a validated Config from es.
func FromEnvSet(es env.EnvSet) (Config, error) {
	var cfg Config
	if err := env.Unmarshal(es, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// DriverOptions converts the loop settings.
func (c Config) DriverOptions() (frame.Options, error) {
	qm, err := frame.ParseQuitMode(c.QuitMode)
	if err != nil {
		return frame.Options{}, err
	}
	rp, err := frame.ParseRenderPolicy(c.RenderFailure)
	if err != nil {
		return frame.Options{}, err
	}
	return frame.Options{QuitMode: qm, RenderPolicy: rp}, nil
}
