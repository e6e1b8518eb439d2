package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrNoOrganization     = errors.New("el usuario no pertenece a ninguna organización")
	ErrMembershipPending  = errors.New("membresía pendiente de aprobación")
	ErrMembershipRejected = errors.New("membresía rechazada")
	ErrAlreadyReverted    = errors.New("el movimiento ya fue revertido")
	ErrOrderNotDraft      = errors.New("la orden ya fue confirmada")
)
