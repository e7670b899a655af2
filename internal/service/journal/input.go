package journal

import (
	"strings"
	"time"

	"github.com/arjunbhatia/healthlog-backend/internal/domain"
)

// SubmitInput holds the parameters for submitting journal text for parsing.
type SubmitInput struct {
	RawText string
	Date    *time.Time
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	text := strings.TrimSpace(i.RawText)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "raw_text", Message: "required"})
	}
	if len(text) > MaxRawTextLen {
		errs = append(errs, domain.FieldError{Field: "raw_text", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds the parameters for listing journal entries.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
