package domain

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	ErrBadRequest    ErrorCode = "BAD_REQUEST"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrUnprocessable ErrorCode = "UNPROCESSABLE"
	ErrInternal      ErrorCode = "INTERNAL_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Status maps the error code onto an HTTP status.
func (e *DomainError) Status() int {
	switch e.Code {
	case ErrBadRequest:
		return http.StatusBadRequest
	case ErrNotFound:
		return http.StatusNotFound
	case ErrUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewBadRequestError(message string) *DomainError {
	return NewError(ErrBadRequest, message, nil)
}

func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewUnprocessableError(message string) *DomainError {
	return NewError(ErrUnprocessable, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewQuestionNotFoundError(id int64) *DomainError {
	return NewError(ErrNotFound, fmt.Sprintf("Question with id: %d could not be found.", id), nil)
}

func NewCategoryNotFoundError(id int64) *DomainError {
	return NewError(ErrNotFound, fmt.Sprintf("Category with id: %d could not be found.", id), nil)
}

func NewDrinkNotFoundError(id int64) *DomainError {
	return NewError(ErrNotFound, fmt.Sprintf("Drink with id: %d could not be found.", id), nil)
}

// AuthError is raised by the bearer-token check. Status and Description are
// sent to the client as-is.
type AuthError struct {
	Code        string
	Description string
	Status      int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

func NewAuthError(code, description string, status int) *AuthError {
	return &AuthError{Code: code, Description: description, Status: status}
}
