// Package domain contains the core types of the user management sample.
// Records are plain values: nothing here persists or shares state.
package domain

import (
	"time"
)

// UserInput is the free-form input describing a user to create or update.
// An empty Password means the caller did not supply one.
type UserInput struct {
	Email    string
	Name     string
	Password string
}

// UserRecord is a normalized user as returned to callers.
// CreatedAt is only set when the record was produced by a create;
// update results carry no created-at value and callers must retain
// it out-of-band (see the demo for the re-merge).
type UserRecord struct {
	ID        string // immutable once assigned
	Email     string // always trimmed and lower-cased
	Name      string // always trimmed
	Password  string // carried through unchanged, may be empty
	CreatedAt *time.Time
	UpdatedAt time.Time
}
