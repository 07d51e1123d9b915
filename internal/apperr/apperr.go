// Package apperr defines the error taxonomy shared by the service and
// storage layers: not-found, validation, and reference errors. Store
// infrastructure failures stay plain wrapped errors and map to none of
// these.
package apperr

import (
	"errors"
	"fmt"
)

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Kind string // "ledger", "group", "contact", "entry", "financial year"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// NotFound builds a NotFoundError for the given entity kind and id.
func NotFound(kind, id string) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// ValidationError reports a structural or business-rule violation.
// The operation was rejected before any write.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validation builds a ValidationError from a format string.
func Validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ReferenceError reports that an entry line names a ledger that does
// not exist. It counts as a validation failure.
type ReferenceError struct {
	LedgerID string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("ledger %s does not exist", e.LedgerID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation reports whether err is a ValidationError or a
// ReferenceError.
func IsValidation(err error) bool {
	var ve *ValidationError
	var re *ReferenceError
	return errors.As(err, &ve) || errors.As(err, &re)
}
