package helpers

import (
	"fmt"
	"sort"
	"strings"
)

// AppError representa un error controlado con código HTTP y mensaje funcional.
type AppError struct {
	Status  int
	Message string
	Err     error
}

// Error implementa la interfaz error.
func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap permite extraer el error original cuando exista.
func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewAppError construye un AppError con mensaje y status.
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{Status: status, Message: message, Err: err}
}

// AsAppError convierte cualquier error en AppError con status 500 por defecto.
// Los errores de validación del core conservan su 400 y el detalle aplanado.
func AsAppError(err error, defaultMessage string) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	if valErr, ok := err.(*ValidationError); ok {
		return &AppError{Status: 400, Message: valErr.Flatten(), Err: valErr}
	}
	msg := defaultMessage
	if msg == "" {
		msg = "error inesperado"
	}
	return &AppError{Status: 500, Message: msg, Err: err}
}

// FieldErrors es el cuerpo de un 400 del core: campo -> lista de mensajes.
type FieldErrors map[string][]string

// ValidationError envuelve los errores de validación por campo que devuelve el
// core para mostrarlos como una sola línea junto al formulario.
type ValidationError struct {
	Fields FieldErrors
	Detail string
}

// Error implementa la interfaz error.
func (e *ValidationError) Error() string {
	return e.Flatten()
}

// Flatten aplana campo→mensajes en un texto legible y estable
// ("campo: m1, m2 | otro: m3"). Si el core envió solo detail, se usa tal cual.
func (e *ValidationError) Flatten() string {
	if e == nil {
		return ""
	}
	if e.Detail != "" {
		return e.Detail
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e.Fields[k], ", ")))
	}
	if len(parts) == 0 {
		return "datos inválidos"
	}
	return strings.Join(parts, " | ")
}
