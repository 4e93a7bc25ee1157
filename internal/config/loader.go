// Package config loads CLI defaults from a config file and the environment.
// Precedence is flags over environment over file over built-in defaults; the
// flag layer lives in cmd and only sees the merged result from here.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"svw.info/peaceable/internal/board"
	"svw.info/peaceable/internal/solver"
)

// Config carries every tunable the CLI exposes.
type Config struct {
	Size          int     `mapstructure:"size"`
	BlockRatio    float64 `mapstructure:"block_ratio"`
	MinValidRatio float64 `mapstructure:"min_valid_ratio"`
	MaxAttempts   int     `mapstructure:"max_attempts"`
	NodeBudget    int     `mapstructure:"node_budget"`
	LogLevel      string  `mapstructure:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Size:          board.DefaultSize,
		BlockRatio:    board.DefaultBlockRatio,
		MinValidRatio: board.DefaultMinValidRatio,
		MaxAttempts:   10,
		NodeBudget:    solver.DefaultNodeBudget,
		LogLevel:      "info",
	}
}

// Load merges defaults, an optional config file, and PEACEABLE_* environment
// variables. path "" searches for peaceable.{yaml,toml,json} in the working
// directory; a missing file is not an error, a malformed one is.
func Load(path string) (Config, error) {
	// .env is a convenience for local runs; absence is fine.
	_ = godotenv.Load()

	v := viper.New()
	def := Default()
	v.SetDefault("size", def.Size)
	v.SetDefault("block_ratio", def.BlockRatio)
	v.SetDefault("min_valid_ratio", def.MinValidRatio)
	v.SetDefault("max_attempts", def.MaxAttempts)
	v.SetDefault("node_budget", def.NodeBudget)
	v.SetDefault("log_level", def.LogLevel)

	v.SetEnvPrefix("PEACEABLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("peaceable")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("config: size must be positive, got %d", c.Size)
	}
	if c.BlockRatio < 0 || c.BlockRatio > 1 {
		return fmt.Errorf("config: block_ratio must be in [0,1], got %v", c.BlockRatio)
	}
	if c.MinValidRatio < 0 || c.MinValidRatio > 1 {
		return fmt.Errorf("config: min_valid_ratio must be in [0,1], got %v", c.MinValidRatio)
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("config: max_attempts must be positive, got %d", c.MaxAttempts)
	}
	return nil
}
