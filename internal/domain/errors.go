package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrFutureDate       = errors.New("la fecha de venta no puede ser futura")
	ErrDuplicateReceipt = errors.New("el número de recibo ya existe")
	ErrOverpayment      = errors.New("el abono excede el saldo pendiente")
	ErrStoreUnavailable = errors.New("almacén de datos no disponible")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
)
