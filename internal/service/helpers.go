package service

import (
	"errors"
	"fmt"
)

// ErrValidation marks input rejected before it reaches the session.
var ErrValidation = errors.New("validation failed")

func formatValidationErrors(what string, errs []error) error {
	msg := fmt.Sprintf("%s (%d errors):", what, len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
