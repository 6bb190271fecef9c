package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	Sources  Sources    `mapstructure:",squash"`
}

type HTTP struct {
	Port         int           `mapstructure:"HTTP_PORT"`
	Timeout      time.Duration `mapstructure:"HTTP_TIMEOUT"`
	RateLimitRPS int           `mapstructure:"HTTP_RATE_LIMIT"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// SourceFile maps a source name to the search response stored at Path.
type SourceFile struct {
	Name string `mapstructure:"name"`
	Path string `mapstructure:"path"`
}

// Sources holds the configured search responses, given as a JSON array in SOURCES,
// e.g. [{"name":"via_3","path":"data/RS_Via-3.xml"}]
type Sources struct {
	Files []SourceFile `mapstructure:"SOURCES"`
}
