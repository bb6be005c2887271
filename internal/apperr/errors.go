package apperr

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ForbiddenError means the authorization policy denied the action.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string {
	return e.Reason
}

func Forbidden(format string, args ...interface{}) *ForbiddenError {
	return &ForbiddenError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError means a referenced employee, team or task does not resolve.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ValidationError collects every violated constraint of a request so the
// caller sees the full list at once.
type ValidationError struct {
	violations *multierror.Error
}

func NewValidation() *ValidationError {
	return &ValidationError{}
}

func (e *ValidationError) Addf(format string, args ...interface{}) {
	e.violations = multierror.Append(e.violations, fmt.Errorf(format, args...))
}

func (e *ValidationError) HasViolations() bool {
	return e.violations.ErrorOrNil() != nil
}

func (e *ValidationError) Messages() []string {
	if e.violations == nil {
		return nil
	}
	messages := make([]string, 0, len(e.violations.Errors))
	for _, err := range e.violations.Errors {
		messages = append(messages, err.Error())
	}
	return messages
}

func (e *ValidationError) Error() string {
	if e.violations == nil {
		return "validation failed"
	}
	return e.violations.Error()
}
