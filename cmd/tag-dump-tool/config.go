package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/simonhull/audiotag/internal/types"
)

type config struct {
	LogLevel            zerolog.Level
	MaxDecompressedSize int
	Strict              bool
	ShowBinary          bool
}

func defaultConfig() config {
	return config{
		LogLevel:            zerolog.InfoLevel,
		MaxDecompressedSize: types.DefaultMaxDecompressedSize,
	}
}

type fileConfig struct {
	LogLevel            string `toml:"log_level"`
	MaxDecompressedSize int    `toml:"max_decompressed_size"`
	Strict              bool   `toml:"strict"`
	ShowBinary          bool   `toml:"show_binary"`
}

// loadConfig applies the keys set in the TOML file at path on top of cfg.
func loadConfig(path string, cfg config) (config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("log_level") {
		level, err := zerolog.ParseLevel(strings.TrimSpace(raw.LogLevel))
		if err != nil {
			return config{}, fmt.Errorf("parse log_level: %w", err)
		}
		cfg.LogLevel = level
	}

	if meta.IsDefined("max_decompressed_size") {
		if raw.MaxDecompressedSize <= 0 {
			return config{}, fmt.Errorf("max_decompressed_size must be positive, got %d", raw.MaxDecompressedSize)
		}
		cfg.MaxDecompressedSize = raw.MaxDecompressedSize
	}

	if meta.IsDefined("strict") {
		cfg.Strict = raw.Strict
	}

	if meta.IsDefined("show_binary") {
		cfg.ShowBinary = raw.ShowBinary
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

func (c config) options(logger zerolog.Logger) *types.Options {
	o := types.DefaultOptions()
	o.Logger = logger
	o.Strict = c.Strict
	o.MaxDecompressedSize = c.MaxDecompressedSize
	return o
}
