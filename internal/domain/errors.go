package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrValidation        = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrOutOfStock        = errors.New("sin stock en la ubicación principal")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrCategoryInUse     = errors.New("la categoría tiene productos asociados")
	ErrImmutableCategory = errors.New("las categorías base no se pueden eliminar")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrPersistence       = errors.New("error de persistencia")
)
