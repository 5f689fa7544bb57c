package users

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"user-lab/domain"
	"user-lab/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewManager(t *testing.T) {
	t.Run("should apply defaults to a zero config", func(t *testing.T) {
		req := require.New(t)
		m, err := NewManager(Config{}, discardLogger())
		req.NoError(err)

		_, err = m.CreateUser(domain.UserInput{
			Email:    "john@example.com",
			Name:     "John Doe",
			Password: "password123",
		})
		req.NoError(err)
	})

	t.Run("should reject a negative minimum length", func(t *testing.T) {
		req := require.New(t)
		_, err := NewManager(Config{EmailMinLength: -1}, discardLogger())
		req.Error(err)
	})
}

func TestManager_CreateUser(t *testing.T) {
	manager, err := NewManager(Config{}, discardLogger())
	require.NoError(t, err)

	t.Run("should create a normalized record with matching timestamps", func(t *testing.T) {
		req := require.New(t)
		user, err := manager.CreateUser(domain.UserInput{
			Email:    "john@example.com",
			Name:     "John Doe",
			Password: "password123",
		})

		req.NoError(err)
		req.NotEmpty(user.ID)
		req.Equal("john@example.com", user.Email)
		req.Equal("John Doe", user.Name)
		req.NotNil(user.CreatedAt)
		req.Equal(user.UpdatedAt, *user.CreatedAt)
	})

	t.Run("should fail on a short email without generating an id", func(t *testing.T) {
		req := require.New(t)
		user, err := manager.CreateUser(domain.UserInput{
			Email:    "a@b",
			Name:     "John Doe",
			Password: "password123",
		})

		req.ErrorIs(err, errors.ErrInvalidEmail)
		req.Empty(user.ID)
	})

	t.Run("should fail on a malformed email", func(t *testing.T) {
		req := require.New(t)
		_, err := manager.CreateUser(domain.UserInput{
			Email:    "not-an-email",
			Name:     "John Doe",
			Password: "password123",
		})
		req.ErrorIs(err, errors.ErrInvalidEmailFormat)
	})

	t.Run("should honor a stricter password minimum", func(t *testing.T) {
		req := require.New(t)
		strict, err := NewManager(Config{PasswordMinLength: 12}, discardLogger())
		req.NoError(err)

		_, err = strict.CreateUser(domain.UserInput{
			Email:    "bob@example.com",
			Name:     "Bob Johnson",
			Password: "password123", // 11 characters, below the custom minimum
		})
		req.ErrorIs(err, errors.ErrPasswordTooShort)
	})
}

func TestManager_UpdateUser(t *testing.T) {
	manager, err := NewManager(Config{}, discardLogger())
	require.NoError(t, err)

	t.Run("should normalize the input and keep the given id", func(t *testing.T) {
		req := require.New(t)
		user, err := manager.UpdateUser("existing-id", domain.UserInput{
			Email: "JANE@Example.com ",
			Name:  " Jane ",
		})

		req.NoError(err)
		req.Equal("existing-id", user.ID)
		req.Equal("jane@example.com", user.Email)
		req.Equal("Jane", user.Name)
		req.Nil(user.CreatedAt)
	})

	t.Run("should allow an update without a password", func(t *testing.T) {
		req := require.New(t)
		_, err := manager.UpdateUser("existing-id", domain.UserInput{
			Email: "jane@example.com",
			Name:  "Jane",
		})
		req.NoError(err)
	})

	t.Run("should reject a short password on update", func(t *testing.T) {
		req := require.New(t)
		_, err := manager.UpdateUser("existing-id", domain.UserInput{
			Email:    "jane@example.com",
			Name:     "Jane",
			Password: "short",
		})
		req.ErrorIs(err, errors.ErrPasswordTooShort)
	})
}

func TestManager_Logging(t *testing.T) {
	newManager := func(t *testing.T, enabled bool, out io.Writer) *Manager {
		t.Helper()
		m, err := NewManager(Config{LoggingEnabled: enabled},
			slog.New(slog.NewTextHandler(out, nil)))
		require.NoError(t, err)
		return m
	}

	input := domain.UserInput{
		Email:    "john@example.com",
		Name:     "John Doe",
		Password: "password123",
	}

	t.Run("should log the creation event when enabled", func(t *testing.T) {
		req := require.New(t)
		var buf bytes.Buffer
		_, err := newManager(t, true, &buf).CreateUser(input)

		req.NoError(err)
		req.Contains(buf.String(), "User created: John Doe (john@example.com)")
	})

	t.Run("should log the update event when enabled", func(t *testing.T) {
		req := require.New(t)
		var buf bytes.Buffer
		_, err := newManager(t, true, &buf).UpdateUser("existing-id", input)

		req.NoError(err)
		req.Contains(buf.String(), "User updated: John Doe (john@example.com)")
	})

	t.Run("should stay silent when logging is disabled", func(t *testing.T) {
		req := require.New(t)
		var buf bytes.Buffer
		_, err := newManager(t, false, &buf).CreateUser(input)

		req.NoError(err)
		req.Empty(buf.String())
	})
}
