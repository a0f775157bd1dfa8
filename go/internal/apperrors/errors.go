// Package apperrors defines the error taxonomy shared by the app layers.
// Domain code returns the typed errors below, wrapped with fmt.Errorf as it
// travels up; the HTTP layer classifies them with errors.Is.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that an entity addressed by id does not exist
	ErrNotFound = errors.New("not found")

	// ErrReferenceNotFound indicates that a related entity named in a payload does not exist
	ErrReferenceNotFound = errors.New("reference not found")

	// ErrConflict indicates that a write violated a uniqueness constraint
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates that a payload failed validation
	ErrInvalidInput = errors.New("invalid input")
)

// NotFoundError is returned when a resource looked up by key is absent
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.Key)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, key string) *NotFoundError {
	return &NotFoundError{Resource: resource, Key: key}
}

// ReferenceError is returned when a payload references a related entity by
// name and no such entity exists
type ReferenceError struct {
	Resource string
	Name     string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Name)
}

// Is implements errors.Is support
func (e *ReferenceError) Is(target error) bool {
	return target == ErrReferenceNotFound
}

// NewReferenceError creates a new ReferenceError
func NewReferenceError(resource, name string) *ReferenceError {
	return &ReferenceError{Resource: resource, Name: name}
}

// ConflictError is returned when a write collides with an existing row
type ConflictError struct {
	Resource   string
	Constraint string
	Message    string
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

// Is implements errors.Is support
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// NewConflictError creates a new ConflictError
func NewConflictError(resource, constraint, message string) *ConflictError {
	return &ConflictError{Resource: resource, Constraint: constraint, Message: message}
}

// ValidationError represents a field-level validation failure
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
