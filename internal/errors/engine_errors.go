package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory represents the kinds of failures the risk engine can surface
type ErrorCategory string

const (
	// Caller contract violations (non-positive prices, zero peak balance, ...)
	ErrorCategoryValidation ErrorCategory = "VALIDATION"

	// Not enough market history to run a calculation
	ErrorCategoryData ErrorCategory = "DATA"
)

// EngineError is a categorized error with component and operation context
type EngineError struct {
	Category   ErrorCategory
	Component  string
	Operation  string
	Message    string
	Underlying error
}

// Error implements the error interface
func (e *EngineError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s:%s] %s in %s: %v", e.Category, e.Component, e.Operation, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s:%s] %s in %s", e.Category, e.Component, e.Operation, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *EngineError) Unwrap() error {
	return e.Underlying
}

// NewEngineError creates a new categorized engine error
func NewEngineError(category ErrorCategory, component, operation, message string) *EngineError {
	return &EngineError{
		Category:  category,
		Component: component,
		Operation: operation,
		Message:   message,
	}
}

// NewInvalidInputError reports a caller contract violation. These are never
// retried: the same inputs will fail the same way.
func NewInvalidInputError(component, operation, message string) *EngineError {
	return NewEngineError(ErrorCategoryValidation, component, operation, message)
}

// NewInsufficientDataError reports a series too short for the requested
// calculation. The caller decides whether to retry with more history.
func NewInsufficientDataError(component, operation, message string) *EngineError {
	return NewEngineError(ErrorCategoryData, component, operation, message)
}

// WrapError wraps an existing error with engine error context
func WrapError(err error, category ErrorCategory, component, operation string) *EngineError {
	if err == nil {
		return nil
	}

	return &EngineError{
		Category:   category,
		Component:  component,
		Operation:  operation,
		Message:    "operation failed",
		Underlying: err,
	}
}

// IsInvalidInput reports whether err (or anything it wraps) is a validation error
func IsInvalidInput(err error) bool {
	return hasCategory(err, ErrorCategoryValidation)
}

// IsInsufficientData reports whether err (or anything it wraps) is a data error
func IsInsufficientData(err error) bool {
	return hasCategory(err, ErrorCategoryData)
}

func hasCategory(err error, category ErrorCategory) bool {
	var engineErr *EngineError
	if stderrors.As(err, &engineErr) {
		return engineErr.Category == category
	}
	return false
}
