package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"NINAROW_LOG_LEVEL" env-default:"info"`
	Game     Game   `yaml:"game"`
}

type Game struct {
	BoardSize  int    `yaml:"board-size" env:"NINAROW_BOARD_SIZE" env-default:"3"`
	EngineMark string `yaml:"engine-mark" env:"NINAROW_ENGINE_MARK" env-default:"X"`
	HumanMark  string `yaml:"human-mark" env:"NINAROW_HUMAN_MARK" env-default:"O"`

	// SearchDepth overrides the per-size search depth when positive.
	SearchDepth int `yaml:"search-depth" env:"NINAROW_SEARCH_DEPTH" env-default:"0"`

	// Seed fixes the starting-player choice; 0 means seed from the clock.
	Seed int64 `yaml:"seed" env:"NINAROW_SEED" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file. A missing file is
// fine: defaults and environment variables apply.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to load config from environment: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
