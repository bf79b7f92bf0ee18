// Package apperr agrupa los errores de dominio compartidos por servicios,
// adapters de storage y handlers HTTP.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
)

// Invalid devuelve un error de validación para un campo concreto.
// errors.Is(err, ErrInvalidInput) sigue funcionando.
func Invalid(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}

type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidInput, e.Reason)
	}
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrInvalidInput }

// NotFound envuelve ErrNotFound con el tipo de entidad ("medication", "contact").
func NotFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}
