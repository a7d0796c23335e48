package usecase

import (
	"errors"
	"fmt"

	"cinema-screening/pkg/utils"

	"github.com/google/uuid"
)

// Error kinds. Handlers map them to HTTP status codes with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

// ErrSeatAlreadyBooked is the conflict returned by the booking guard.
var ErrSeatAlreadyBooked error = &DomainError{
	kind: ErrConflict,
	msg:  "This seat is already booked for this screening.",
}

// DomainError carries a client-facing message and one of the error kinds.
type DomainError struct {
	kind error
	msg  string
}

func (e *DomainError) Error() string { return e.msg }

func (e *DomainError) Unwrap() error { return e.kind }

func notFound(format string, args ...any) error {
	return &DomainError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func invalid(format string, args ...any) error {
	return &DomainError{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

func conflict(format string, args ...any) error {
	return &DomainError{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}

func validationFailed(errs map[string]string) error {
	return invalid("validation failed: %s", utils.FormatValidationErrors(errs))
}

func parseID(kind, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, invalid("invalid %s id: %s", kind, raw)
	}
	return id, nil
}

func parseOptionalID(kind string, raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := utils.ParseOptionalUUID(*raw)
	if err != nil {
		return nil, invalid("invalid %s id: %s", kind, *raw)
	}
	return id, nil
}
