// Package config loads server configuration from config.yml with an
// environment-variable overlay.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Addr         string `yaml:"addr" env:"ADDR" env-default:":8080"`
	SaveDir      string `yaml:"save_dir" env:"SAVE_DIR" env-default:"saves"`
	TemplatesDir string `yaml:"templates_dir" env:"TEMPLATES_DIR" env-default:"templates"`
	StaticDir    string `yaml:"static_dir" env:"STATIC_DIR" env-default:"static"`
	Log          LogConfig
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Pretty bool   `yaml:"pretty" env:"LOG_PRETTY" env-default:"false"`
}

// Load reads config.yml if present, otherwise environment variables only.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("load configuration: %w", err)
		}
	}
	return &cfg, nil
}
