package domain

import (
	"errors"
	"fmt"
)

// NotFoundError signals that a referenced entity id does not exist.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not exist", e.Kind, e.ID)
}

func NewNotFound(kind string, id int64) error {
	return &NotFoundError{Kind: kind, ID: id}
}

// ValidationError signals a failed business-rule precondition. Never
// retried automatically.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// AccessDeniedError signals that the caller lacks the relationship the
// operation requires (not owner, booker or author).
type AccessDeniedError struct {
	UserID  int64
	Message string
}

func (e *AccessDeniedError) Error() string {
	return e.Message
}

func NewAccessDenied(userID int64, format string, args ...any) error {
	return &AccessDeniedError{UserID: userID, Message: fmt.Sprintf(format, args...)}
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsAccessDenied(err error) bool {
	var e *AccessDeniedError
	return errors.As(err, &e)
}
