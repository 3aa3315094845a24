package command

import (
	"errors"
	"fmt"

	"github.com/mmynk/projectbook/internal/book"
	"github.com/mmynk/projectbook/internal/models"
)

// ErrorKind categorizes command failures.
type ErrorKind string

const (
	// KindInvalidIndex indicates an index outside the displayed list.
	KindInvalidIndex ErrorKind = "INVALID_INDEX"

	// KindDuplicate indicates the result would duplicate an existing entity.
	KindDuplicate ErrorKind = "DUPLICATE"

	// KindNotFound indicates a name that matches nothing.
	KindNotFound ErrorKind = "NOT_FOUND"

	// KindAmbiguous indicates a name that matches more than one person.
	KindAmbiguous ErrorKind = "AMBIGUOUS"

	KindAlreadyMember ErrorKind = "ALREADY_MEMBER"
	KindNotMember     ErrorKind = "NOT_MEMBER"

	// KindRoleField indicates a committee or organisation on the wrong role.
	KindRoleField ErrorKind = "ROLE_FIELD"

	KindNoFieldEdited ErrorKind = "NO_FIELD_EDITED"

	// KindInternal indicates a broken invariant rather than bad input.
	KindInternal ErrorKind = "INTERNAL"
)

// Error is a command-level failure. Message is meant for the user; the
// model is left unchanged whenever Execute returns an *Error.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is a command Error of the given kind.
// Uses errors.As to handle wrapped errors.
func IsKind(err error, kind ErrorKind) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// internal wraps an error that should have been ruled out by earlier checks.
func internal(op string, err error) *Error {
	return &Error{
		Kind:    KindInternal,
		Message: fmt.Sprintf("failed to %s: %v", op, err),
		Err:     err,
	}
}

// classify maps book and model sentinels onto command errors.
func classify(op string, err error) *Error {
	switch {
	case errors.Is(err, book.ErrDuplicatePerson):
		return &Error{Kind: KindDuplicate, Message: MessageDuplicatePerson, Err: err}
	case errors.Is(err, book.ErrDuplicateProject):
		return &Error{Kind: KindDuplicate, Message: MessageDuplicateProject, Err: err}
	case errors.Is(err, book.ErrAlreadyMember):
		return &Error{Kind: KindAlreadyMember, Message: err.Error(), Err: err}
	case errors.Is(err, book.ErrNotMember):
		return &Error{Kind: KindNotMember, Message: err.Error(), Err: err}
	case errors.Is(err, models.ErrRoleFieldNotAllowed), errors.Is(err, models.ErrMissingRoleField):
		return &Error{Kind: KindRoleField, Message: err.Error(), Err: err}
	case errors.Is(err, models.ErrDuplicateRemark):
		return &Error{Kind: KindDuplicate, Message: err.Error(), Err: err}
	default:
		return internal(op, err)
	}
}
