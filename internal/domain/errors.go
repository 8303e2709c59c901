package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Errores de las líneas de documento (importación, exportación, traslado, solicitud de compra).
	ErrMissingSelection     = errors.New("debe seleccionar producto, color y talla")
	ErrInvalidQuantity      = errors.New("la cantidad debe ser un entero positivo")
	ErrDuplicateCombination = errors.New("la combinación producto/color/talla ya existe en el documento")
	ErrLocked               = errors.New("el documento está siendo modificado por otra solicitud")
)
