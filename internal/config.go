package internal

import (
	"fmt"
	"regexp"

	"user-lab/users"
)

// Config is the process configuration of the demo binary. Every field has
// a default so an empty environment still yields a runnable setup.
type Config struct {
	EmailMinLength    int    `env:"EMAIL_MIN_LENGTH,default=5"`
	NameMinLength     int    `env:"NAME_MIN_LENGTH,default=2"`
	PasswordMinLength int    `env:"PASSWORD_MIN_LENGTH,default=8"`
	EmailPattern      string `env:"EMAIL_PATTERN"`
	LoggingEnabled    bool   `env:"LOGGING_ENABLED,default=true"`
	LogLevel          string `env:"LOG_LEVEL,default=INFO"`
}

// UserRules maps the environment values onto a validation config.
// An empty EMAIL_PATTERN keeps the built-in pattern.
func (c Config) UserRules() (users.Config, error) {
	cfg := users.Config{
		EmailMinLength:    c.EmailMinLength,
		NameMinLength:     c.NameMinLength,
		PasswordMinLength: c.PasswordMinLength,
		LoggingEnabled:    c.LoggingEnabled,
	}
	if c.EmailPattern != "" {
		pattern, err := regexp.Compile(c.EmailPattern)
		if err != nil {
			return users.Config{}, fmt.Errorf("EMAIL_PATTERN is not a valid regexp: %w", err)
		}
		cfg.EmailPattern = pattern
	}
	return cfg, nil
}
