package main

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the bot settings, read from the environment.
type Config struct {
	Token  string `env:"TOKEN"         env-required:"true"`
	Prefix string `env:"PINYIN_PREFIX" env-default:"%py"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("config: read env: %w", err)
	}
	return cfg, nil
}
