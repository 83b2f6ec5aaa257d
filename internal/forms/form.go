// Package forms holds the client-local drafts used during create and
// edit flows: field state, required-field checks, derived-field
// recomputation, and submission against the api client. A draft has no
// identity until the create succeeds; an edit draft mirrors an existing
// record's id.
package forms

import (
	"context"
	"errors"
	"strings"
)

// ErrInvalidForm means a local required-field check failed and no
// network call was made.
var ErrInvalidForm = errors.New("form has validation errors")

type State int

const (
	StateEmpty State = iota
	StateEditing
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// FieldErrors maps a field name to its inline error message.
type FieldErrors map[string]string

func (fe FieldErrors) requirePresent(field, value string) {
	if strings.TrimSpace(value) == "" {
		fe[field] = "This field is required."
	}
}

func (fe FieldErrors) requirePositive(field string, value float64) {
	if value <= 0 {
		fe[field] = "This field is required."
	}
}

func (fe FieldErrors) requireID(field string, value int) {
	if value <= 0 {
		fe[field] = "This field is required."
	}
}

// RefreshFunc is called after a successful submit so the owning list
// view refetches its current page.
type RefreshFunc func(ctx context.Context) error

// NotifyFunc surfaces a transient success or failure message.
type NotifyFunc func(message string)

func notify(fn NotifyFunc, message string) {
	if fn != nil {
		fn(message)
	}
}

func refresh(ctx context.Context, fn RefreshFunc) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}
