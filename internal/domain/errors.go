package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrVisitorNotFound    = errors.New("visitante no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrAlreadyCheckedOut: el pase está en estado terminal; ningún escaneo lo modifica.
	ErrAlreadyCheckedOut = errors.New("already checked out")
	// ErrScanConflict: otro escaneo concurrente ganó la transición; el registro no fue tocado.
	ErrScanConflict = errors.New("el pase cambió de estado durante el escaneo")
)
