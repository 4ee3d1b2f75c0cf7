package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/simonhull/audiotag/internal/types"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dump.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"
max_decompressed_size = 4096
strict = true
show_binary = true
`)

	cfg, err := loadConfig(path, defaultConfig())
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	want := config{LogLevel: zerolog.DebugLevel, MaxDecompressedSize: 4096, Strict: true, ShowBinary: true}
	if cfg != want {
		t.Errorf("loadConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfig_KeepsUnsetKeys(t *testing.T) {
	path := writeConfig(t, "show_binary = true\n")

	base := defaultConfig()
	base.Strict = true
	cfg, err := loadConfig(path, base)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if !cfg.Strict || !cfg.ShowBinary {
		t.Errorf("loadConfig() = %+v, want strict kept and show_binary set", cfg)
	}
	if cfg.LogLevel != zerolog.InfoLevel || cfg.MaxDecompressedSize != types.DefaultMaxDecompressedSize {
		t.Errorf("loadConfig() = %+v, want defaults for unset keys", cfg)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"bad level", `log_level = "loud"`, "log_level"},
		{"zero size", "max_decompressed_size = 0", "max_decompressed_size"},
		{"unknown key", "colour = true", "colour"},
		{"bad syntax", "strict = ", "load config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.body), defaultConfig())
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("loadConfig() error = %v, want one mentioning %q", err, tt.wantErr)
			}
		})
	}

	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), defaultConfig()); err == nil {
		t.Error("loadConfig(missing) error = nil, want error")
	}
}
