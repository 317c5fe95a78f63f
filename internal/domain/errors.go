package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// ErrInvalidChargePolicy indica un tipo de cargo de fabricación desconocido.
	// Es un defecto de código o configuración, nunca un error de captura del usuario.
	ErrInvalidChargePolicy = errors.New("política de cargo de fabricación inválida")
	// ErrNegativeUnitInput se produce cuando un peso, tarifa o monto negativo llega al conversor de unidades.
	ErrNegativeUnitInput = errors.New("valor negativo en conversión de unidades")
)
