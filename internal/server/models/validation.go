package models

import (
	"fmt"
	"strings"
)

// Rating bounds enforced at the persistence boundary. The interactive admin
// surfaces cap input at 5 stars, but stored records may carry the wider range.
const (
	RatingMin = 1
	RatingMax = 10
)

// FieldError describes a single failing field in a record.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors aggregates every failing field of a record so a caller can
// surface all of them at once instead of fixing one at a time.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// validator accumulates field errors while a record is checked.
type validator struct {
	errs ValidationErrors
}

func (v *validator) require(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.errs = append(v.errs, FieldError{Field: field, Message: "is required"})
	}
}

func (v *validator) requireNonZero(field string, value int) {
	if value == 0 {
		v.errs = append(v.errs, FieldError{Field: field, Message: "is required"})
	}
}

func (v *validator) ratingInRange(field string, value int) {
	// 0 means "not rated"; the bounds apply only when a rating is present.
	if value != 0 && (value < RatingMin || value > RatingMax) {
		v.errs = append(v.errs, FieldError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d", RatingMin, RatingMax),
		})
	}
}

func (v *validator) result() error {
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}
