package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
// Los handlers los traducen a códigos HTTP con errors.Is; cualquier otro error es un fallo interno.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")

	ErrProductNotFound = fmt.Errorf("producto: %w", ErrNotFound)
	ErrOrderNotFound   = fmt.Errorf("orden: %w", ErrNotFound)
)

// InvalidInput envuelve ErrInvalidInput con el detalle del campo rechazado.
func InvalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
