package users

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"user-lab/domain"
	"user-lab/errors"
)

// Validator checks a UserInput against the configured rules.
// Checks run in a fixed order (email length, email format, name,
// password) and the first failure aborts: no aggregated reporting.
type Validator struct {
	cfg Config
}

func NewValidator(cfg Config) Validator {
	return Validator{cfg: cfg}
}

// Validate returns nil or the sentinel matching the first failing field.
// On update the password is optional: absent passes, present-but-short fails.
func (v Validator) Validate(in domain.UserInput, isUpdate bool) error {
	// The formatter trims the email before any record reaches a caller,
	// so the checks run against the trimmed value as well.
	email := strings.TrimSpace(in.Email)
	if err := minLength(email, v.cfg.EmailMinLength, errors.ErrInvalidEmail); err != nil {
		return err
	}
	if !v.cfg.EmailPattern.MatchString(email) {
		return fmt.Errorf("%w: %q", errors.ErrInvalidEmailFormat, email)
	}
	if err := minLength(in.Name, v.cfg.NameMinLength, errors.ErrInvalidName); err != nil {
		return err
	}
	if !isUpdate || in.Password != "" {
		if err := minLength(in.Password, v.cfg.PasswordMinLength, errors.ErrPasswordTooShort); err != nil {
			return err
		}
	}
	return nil
}

func minLength(value string, min int, kind error) error {
	if value == "" || utf8.RuneCountInString(value) < min {
		return kind
	}
	return nil
}
