package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	TablesPath string     // e.g. "/etc/litstat/tables.yaml"; empty uses the embedded tables
	LogLevel   slog.Level // e.g. "debug"
	Scale      string     // fixed, auto or dynamic
	Format     string     // json, pretty, png or svg
}

func FromEnv() Config {
	level := slog.LevelInfo
	if s := os.Getenv("LITSTAT_LOG_LEVEL"); s != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(s)); err == nil {
			level = l
		}
	}
	scale := strings.ToLower(os.Getenv("LITSTAT_SCALE"))
	switch scale {
	case "fixed", "auto", "dynamic":
	default:
		scale = "dynamic"
	}
	format := strings.ToLower(os.Getenv("LITSTAT_FORMAT"))
	switch format {
	case "json", "pretty", "png", "svg":
	default:
		format = "json"
	}
	return Config{
		TablesPath: os.Getenv("LITSTAT_TABLES"),
		LogLevel:   level,
		Scale:      scale,
		Format:     format,
	}
}
