// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package publish

import (
	"errors"
	"fmt"
)

var (
	// ErrConvert identifies a failed README conversion.
	ErrConvert = errors.New("conversion failed")
	// ErrPublish identifies a failed build-and-upload.
	ErrPublish = errors.New("publish failed")
)

// StepError reports the step whose command exited non-zero.
type StepError struct {
	Step   string
	Reason string
	Code   int
	// Kind is ErrConvert or ErrPublish.
	Kind error
	// Err is the underlying process error, if any.
	Err error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s (exit status %d)", e.Reason, e.Code)
}

// Unwrap exposes both the step kind and the process error to errors.Is/As.
func (e *StepError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// Reason returns the user-facing abort reason carried by err, or err's
// message when it is not a *StepError.
func Reason(err error) string {
	var se *StepError
	if errors.As(err, &se) {
		return se.Reason
	}
	return err.Error()
}
