package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	// ErrBusinessRule agrupa las violaciones de regla de negocio:
	// estado destino inválido, cotización no aprobada, negocio duplicado
	// por cotización, factura sin líneas, monto de pago no positivo.
	ErrBusinessRule = errors.New("violación de regla de negocio")
)
