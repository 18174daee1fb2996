// Package errors defines the error values returned to API clients.
package errors

import "fmt"

// DomainError is a coded error raised by the service layer.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// BadRequestAlertError rejects a request that is malformed for a given entity.
// ErrorKey is the machine code sent to clients (e.g. "idexists").
type BadRequestAlertError struct {
	EntityName string
	ErrorKey   string
	Message    string
}

// NewBadRequestAlert builds a BadRequestAlertError.
func NewBadRequestAlert(message, entityName, errorKey string) *BadRequestAlertError {
	return &BadRequestAlertError{
		EntityName: entityName,
		ErrorKey:   errorKey,
		Message:    message,
	}
}

func (e *BadRequestAlertError) Error() string {
	return fmt.Sprintf("%s (%s.%s)", e.Message, e.EntityName, e.ErrorKey)
}

// MessageKey is the translation key clients display, e.g. "error.idnull".
func (e *BadRequestAlertError) MessageKey() string {
	return "error." + e.ErrorKey
}
