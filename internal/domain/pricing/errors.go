package pricing

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySelection = errors.New("no services selected")
	ErrUnknownService = errors.New("unknown service")
	ErrInvalidInput   = errors.New("invalid input")
)

// UnknownServiceError reports a selected id that the catalog snapshot does not contain.
type UnknownServiceError struct {
	ID string
}

func (e *UnknownServiceError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownService, e.ID)
}

func (e *UnknownServiceError) Is(target error) bool {
	return target == ErrUnknownService
}

// InvalidInputError reports a numeric field the calculator refuses to price with.
type InvalidInputError struct {
	Field string
	Value string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%v: %s=%s", ErrInvalidInput, e.Field, e.Value)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
