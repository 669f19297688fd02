package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/bombgrid.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:      "info",
			Timestamps: false,
		},
		Journal: JournalConfig{
			Enabled: false,
			Path:    "~/.bombgrid/journal.db",
		},
		Server: ServerConfig{
			Address:      ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			MaxBodyBytes: 1 << 20,
		},
		Render: RenderConfig{
			Color: "auto",
		},
	}
}
