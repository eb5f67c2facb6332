package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	// ErrUnauthorized means no caller identity was presented.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means the caller is known but lacks the role or the
	// authorized relationship the operation needs.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict is reserved; duplicates are tolerated everywhere today.
	ErrConflict = errors.New("conflict")
	ErrInternal = errors.New("internal error")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func notFound(what string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, what)
}

func internal(err error) error {
	return fmt.Errorf("%w: %w", ErrInternal, err)
}

// passThrough keeps usecase sentinels produced inside a transaction and
// wraps everything else as internal.
func passThrough(err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{ErrInvalidInput, ErrNotFound, ErrUnauthorized, ErrForbidden, ErrConflict, ErrInternal} {
		if errors.Is(err, known) {
			return err
		}
	}
	return internal(err)
}

// validation lifts a domain validation error into ErrInvalidInput while
// keeping the domain sentinel reachable through errors.Is.
func validation(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}
