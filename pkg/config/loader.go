package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates the configuration struct from environment variables,
// loading a .env file once per process first (a missing .env file is not
// an error). Struct fields use caarlos0/env tags:
//
//	type Config struct {
//	    Timeout   time.Duration `env:"CLIENTPRINT_TIMEOUT" envDefault:"1s"`
//	    LogLevel  string        `env:"CLIENTPRINT_LOG_LEVEL" envDefault:"info"`
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Errorf("config: %w", err))
	}
}
