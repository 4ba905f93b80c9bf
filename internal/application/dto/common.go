package dto

import (
	"bytes"
	"encoding/json"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OKResponse respuesta de escritura exitosa; ID solo en creaciones.
type OKResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id,omitempty"`
}

// Optional distingue en un update parcial entre campo ausente, null explícito y valor.
// El valor cero es "ausente".
type Optional[T any] struct {
	set   bool
	null  bool
	value T
}

// Some construye un Optional con valor (útil en tests y llamadas internas).
func Some[T any](v T) Optional[T] {
	return Optional[T]{set: true, value: v}
}

// Null construye un Optional con null explícito.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// UnmarshalJSON solo se invoca si la clave está presente en el JSON.
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.null = true
		var zero T
		o.value = zero
		return nil
	}
	o.null = false
	return json.Unmarshal(b, &o.value)
}

// IsSet indica si la clave vino en el cuerpo (con null o con valor).
func (o Optional[T]) IsSet() bool { return o.set }

// IsNull indica null explícito.
func (o Optional[T]) IsNull() bool { return o.set && o.null }

// Value devuelve el valor y true solo si vino un valor no nulo.
func (o Optional[T]) Value() (T, bool) {
	return o.value, o.set && !o.null
}

// Ptr convierte a puntero: nil para null. Solo tiene sentido si IsSet.
func (o Optional[T]) Ptr() *T {
	if !o.set || o.null {
		return nil
	}
	v := o.value
	return &v
}
