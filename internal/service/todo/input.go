package todo

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mpetrenko/todoswitch/internal/domain"
)

// CreateInput holds a fully validated create payload. The HTTP schema
// requires every field, so none are optional here.
type CreateInput struct {
	ID        string
	Text      string
	Completed bool
	CreatedAt time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if _, err := uuid.Parse(i.ID); err != nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must be a valid UUID"})
	}
	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "must not be empty"})
	}
	if i.CreatedAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "createdAt", Message: "must be a timestamp"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds an update payload. The schema matches CreateInput, but
// only Text and Completed are ever forwarded to storage: id and createdAt
// are immutable.
type UpdateInput struct {
	ID        string
	Text      string
	Completed bool
	CreatedAt time.Time
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	return CreateInput(i).Validate()
}
