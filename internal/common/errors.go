// Package common defines the error taxonomy and small helpers shared by every
// QuestKeeper layer. Callers match error kinds with errors.Is and show
// err.Error() to the user as-is.
package common

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation reports a field length or format violation.
	ErrValidation = errors.New("validation error")
	// ErrConflict reports a duplicate email or username.
	ErrConflict = errors.New("conflict")
	// ErrAuth reports an unknown identity, wrong password or wrong answer.
	ErrAuth = errors.New("authentication failed")
	// ErrState reports a referenced quest, user or item that does not exist.
	ErrState = errors.New("not found")
	// ErrEconomy reports insufficient funds, already owned or not owned.
	ErrEconomy = errors.New("economy error")
	// ErrPersistence reports an unreadable or unwritable store.
	ErrPersistence = errors.New("persistence error")
	// ErrImport reports a malformed import payload.
	ErrImport = errors.New("import error")
	// ErrCancelled is returned when the user declines a confirmation.
	ErrCancelled = errors.New("cancelled")
)

// Error is a domain error with a user-facing message. It unwraps to its
// Kind, so errors.Is(err, ErrAuth) works on any wrapped *Error.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) error { return newError(ErrValidation, format, args...) }
func Conflict(format string, args ...any) error   { return newError(ErrConflict, format, args...) }
func Auth(format string, args ...any) error       { return newError(ErrAuth, format, args...) }
func State(format string, args ...any) error      { return newError(ErrState, format, args...) }
func Economy(format string, args ...any) error    { return newError(ErrEconomy, format, args...) }
func Import(format string, args ...any) error     { return newError(ErrImport, format, args...) }

// Persistence wraps a storage failure so that it matches ErrPersistence
// while keeping the underlying cause reachable through errors.As.
func Persistence(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
}

// Kind returns the sentinel kind for err, or nil for foreign errors.
func Kind(err error) error {
	for _, k := range []error{ErrValidation, ErrConflict, ErrAuth, ErrState, ErrEconomy, ErrPersistence, ErrImport, ErrCancelled} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
