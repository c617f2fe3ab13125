// Package config loads typed configuration structs from environment
// variables.
//
// Structs are described with github.com/caarlos0/env tags. A .env file in the
// working directory is read once through github.com/joho/godotenv before the
// first parse, and each parsed type is cached for the life of the process:
//
//	type Config struct {
//		Env     string         `env:"APP_ENV" envDefault:"development"`
//		Session session.Config
//	}
//
//	cfg := config.MustLoad[Config]()
package config
