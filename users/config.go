// Package users implements the user management sample: a field validator,
// a record formatter and a manager composing the two. The manager keeps no
// state between calls; every operation returns a fresh record.
package users

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// DefaultEmailPattern accepts a local part of word characters/./%/+/-,
// an @, a domain of word characters/./- and a TLD of at least two letters.
var DefaultEmailPattern = regexp.MustCompile(`^[\w.%+-]+@[\w.-]+\.[A-Za-z]{2,}$`)

const (
	DefaultEmailMinLength    = 5
	DefaultNameMinLength     = 2
	DefaultPasswordMinLength = 8
)

// Config holds the validation rules of a Manager. It is set once at
// construction and never mutated afterwards; the Manager owns its copy.
type Config struct {
	EmailMinLength    int            `validate:"gte=1"`
	NameMinLength     int            `validate:"gte=1"`
	PasswordMinLength int            `validate:"gte=1"`
	EmailPattern      *regexp.Regexp `validate:"required"`
	LoggingEnabled    bool
}

// DefaultConfig returns the rules used when the caller supplies none.
func DefaultConfig() Config {
	return Config{
		EmailMinLength:    DefaultEmailMinLength,
		NameMinLength:     DefaultNameMinLength,
		PasswordMinLength: DefaultPasswordMinLength,
		EmailPattern:      DefaultEmailPattern,
		LoggingEnabled:    true,
	}
}

// withDefaults fills the zero-valued rule fields. LoggingEnabled is left
// as given: false is a valid, deliberate setting.
func (c Config) withDefaults() Config {
	if c.EmailMinLength == 0 {
		c.EmailMinLength = DefaultEmailMinLength
	}
	if c.NameMinLength == 0 {
		c.NameMinLength = DefaultNameMinLength
	}
	if c.PasswordMinLength == 0 {
		c.PasswordMinLength = DefaultPasswordMinLength
	}
	if c.EmailPattern == nil {
		c.EmailPattern = DefaultEmailPattern
	}
	return c
}

func (c Config) check() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid validation config: %w", err)
	}
	return nil
}
