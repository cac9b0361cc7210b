package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrUsernameTaken      = errors.New("el nombre de usuario ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrEmptyCart          = errors.New("el carrito está vacío")
	ErrInvalidCartData    = errors.New("los datos del carrito son inválidos")
	ErrMissingAddress     = errors.New("falta la dirección de entrega")
	ErrMissingPayment     = errors.New("falta el método de pago")
	ErrCatalogUnavailable = errors.New("no se pudo obtener el catálogo de productos")
)
