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
	Session  Session    `mapstructure:",squash"`
	OpenAI   OpenAI     `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

type Redis struct {
	Addr     string `mapstructure:"REDIS_ADDR"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

// Session controls booking session storage. Expiration is the TTL of a
// session in redis; LockTimeout bounds the per-session transition lock.
type Session struct {
	Expiration  time.Duration `mapstructure:"SESSION_EXPIRATION"`
	LockTimeout time.Duration `mapstructure:"SESSION_LOCK_TIMEOUT"`
}

// OpenAI holds the text-generation service configuration. A missing or
// invalid API key surfaces through the summarizer's unavailability path at
// call time, never as a startup failure.
type OpenAI struct {
	APIKey       string        `mapstructure:"OPENAI_API_KEY"`
	Model        string        `mapstructure:"OPENAI_MODEL"`
	Timeout      time.Duration `mapstructure:"OPENAI_TIMEOUT"`
	RateLimitRPS int           `mapstructure:"SUMMARIZER_RATE_LIMIT"`
}
