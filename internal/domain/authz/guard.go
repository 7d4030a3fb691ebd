// Package authz decide si un principal puede mutar un recurso con dueño.
package authz

import (
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

// Owned lo implementa todo recurso cuyo dueño es un usuario (Product y Order).
type Owned interface {
	OwnerID() entity.UserID
}

var (
	_ Owned = (*entity.Product)(nil)
	_ Owned = (*entity.Order)(nil)
)

// Authorize compara el principal con el dueño registrado del recurso.
// Devuelve nil si está permitido y domain.ErrUnauthorized en cualquier otro caso.
// Un principal sin identificador nunca es dueño de nada.
func Authorize(p entity.Principal, r Owned) error {
	if p.IsZero() || r == nil {
		return domain.ErrUnauthorized
	}
	if r.OwnerID() != p.ID {
		return domain.ErrUnauthorized
	}
	return nil
}
