package users

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"user-lab/domain"
)

// Formatter produces the normalized record handed back to callers.
type Formatter struct{}

// Format normalizes the input into a UserRecord. An empty existingID means
// a new record: a fresh id is generated and CreatedAt is set to the same
// instant as UpdatedAt. With an existingID the id is preserved and
// CreatedAt stays nil (the caller retains the original value).
func (Formatter) Format(in domain.UserInput, existingID string) domain.UserRecord {
	now := time.Now()

	record := domain.UserRecord{
		ID:        existingID,
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Name:      strings.TrimSpace(in.Name),
		Password:  in.Password,
		UpdatedAt: now,
	}
	if existingID == "" {
		record.ID = uuid.New().String()
		record.CreatedAt = lo.ToPtr(now)
	}
	return record
}
