package users

import (
	"fmt"
	"log/slog"

	"user-lab/domain"
)

type IUserManager interface {
	CreateUser(in domain.UserInput) (domain.UserRecord, error)
	UpdateUser(id string, in domain.UserInput) (domain.UserRecord, error)
}

var _ IUserManager = (*Manager)(nil)

// Manager composes validation and formatting behind the two user
// operations. It holds no record state: results only go to the caller.
type Manager struct {
	cfg       Config
	validator Validator
	formatter Formatter
	log       *slog.Logger
}

func NewManager(cfg Config, log *slog.Logger) (*Manager, error) {
	cfg = cfg.withDefaults()
	if err := cfg.check(); err != nil {
		return nil, err
	}
	return &Manager{
		cfg:       cfg,
		validator: NewValidator(cfg),
		formatter: Formatter{},
		log:       log,
	}, nil
}

func (m *Manager) CreateUser(in domain.UserInput) (domain.UserRecord, error) {
	// 1. Validate with the password required
	if err := m.validator.Validate(in, false); err != nil {
		return domain.UserRecord{}, err
	}

	// 2. Format as a new record (fresh id, CreatedAt set)
	user := m.formatter.Format(in, "")

	m.logEvent("User created", user)
	return user, nil
}

func (m *Manager) UpdateUser(id string, in domain.UserInput) (domain.UserRecord, error) {
	// 1. Validate with the password optional
	if err := m.validator.Validate(in, true); err != nil {
		return domain.UserRecord{}, err
	}

	// 2. Format against the existing id (CreatedAt left to the caller)
	user := m.formatter.Format(in, id)

	m.logEvent("User updated", user)
	return user, nil
}

func (m *Manager) logEvent(event string, user domain.UserRecord) {
	if !m.cfg.LoggingEnabled {
		return
	}
	m.log.Info(fmt.Sprintf("%s: %s (%s)", event, user.Name, user.Email))
}
