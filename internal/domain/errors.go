package domain

import (
	"errors"
	"fmt"
)

// ErrorKind clasifica los errores que llegan al borde HTTP.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindDatabase
	KindMethodNotAllowed
)

// String devuelve el nombre del tipo de error (se usa en logs y métricas).
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindDatabase:
		return "database"
	case KindMethodNotAllowed:
		return "method_not_allowed"
	default:
		return "internal"
	}
}

// Error error de dominio con tipo, mensaje para el cliente y causa opcional.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrMethodNotAllowed se devuelve para cualquier verbo distinto de POST.
var ErrMethodNotAllowed = &Error{Kind: KindMethodNotAllowed, Message: "Only POST method is allowed"}

// NewValidationError entrada malformada, ausente o no convertible.
func NewValidationError(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// NewInvalidJSONError cuerpo que no es JSON válido.
func NewInvalidJSONError(err error) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf("Invalid JSON: %s", err), Err: err}
}

// NewDatabaseError cualquier fallo reportado por el driver o la sesión Oracle.
func NewDatabaseError(err error) *Error {
	return &Error{Kind: KindDatabase, Message: fmt.Sprintf("Database error: %s", err), Err: err}
}

// NewInternalError fallo inesperado fuera de la capa de datos.
func NewInternalError(err error) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf("Unexpected error: %s", err), Err: err}
}

// AsError normaliza err a *Error. Lo que no es un error de dominio se trata como interno.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var de *Error
	if errors.As(err, &de) {
		return de
	}
	return NewInternalError(err)
}

// KindOf devuelve el tipo de err (KindInternal si no es un error de dominio).
func KindOf(err error) ErrorKind {
	return AsError(err).Kind
}
