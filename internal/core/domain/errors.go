package domain

import (
	"errors"
	"fmt"
)

var ErrCredencialesInvalidas = errors.New("credenciales incorrectas")
var ErrCuentaInactiva = errors.New("tu cuenta no está activa, contacta al administrador")
var ErrAccesoDenegado = errors.New("acceso denegado, solo administradores pueden iniciar sesión")

// ValidationError is a client-correctable request problem. The message is the
// exact human-readable text returned in the 400 body.
type ValidationError struct {
	Mensaje string
}

func (e *ValidationError) Error() string { return e.Mensaje }

// Validation builds a ValidationError from a format string.
func Validation(format string, args ...any) error {
	return &ValidationError{Mensaje: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a missing record. Desaparecido marks the concurrent
// case: the record existed when loaded but vanished before the write landed.
type NotFoundError struct {
	Recurso      string // article + noun, e.g. "El usuario", "La factura"
	ID           int
	Desaparecido bool
}

func (e *NotFoundError) Error() string {
	if e.Desaparecido {
		return fmt.Sprintf("%s con ID %d ya no existe", e.Recurso, e.ID)
	}
	return fmt.Sprintf("%s con ID %d no existe", e.Recurso, e.ID)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// PersistenceError wraps a database-layer failure. Mensaje goes into the 500
// body's "message" field, Causa into its "error" field.
type PersistenceError struct {
	Mensaje string
	Causa   error
}

func (e *PersistenceError) Error() string {
	if e.Causa == nil {
		return e.Mensaje
	}
	return e.Mensaje + ": " + e.Causa.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Causa }
