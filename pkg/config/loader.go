package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cache      sync.Map // reflect.Type -> value of that type
	dotenvOnce sync.Once
)

// Load returns a T populated from environment variables according to its env
// struct tags. The first call also loads a .env file from the working
// directory if present. Successful results are cached per type, so later
// calls return the same values even if the environment changed.
//
// Example:
//
//	type AppConfig struct {
//		Env  string `env:"APP_ENV" envDefault:"development"`
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	cfg, err := config.Load[AppConfig]()
func Load[T any]() (T, error) {
	dotenvOnce.Do(func() {
		// A missing .env file is normal outside development.
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()
	if cached, ok := cache.Load(key); ok {
		return cached.(T), nil
	}

	v, err := env.ParseAs[T]()
	if err != nil {
		var zero T
		return zero, errors.Join(ErrParsingConfig, err)
	}

	actual, _ := cache.LoadOrStore(key, v)
	return actual.(T), nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// the process cannot start without.
func MustLoad[T any]() T {
	v, err := Load[T]()
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return v
}

// LoadDotenv loads the given files into the process environment without
// overriding variables that are already set.
func LoadDotenv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingDotenv, err)
	}
	return nil
}

// Reset drops all cached configurations.
func Reset() {
	cache.Clear()
}
