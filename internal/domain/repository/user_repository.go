package repository

import (
	"context"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

// UserRepository lectura de usuarios para expandir referencias (populate).
// El alta de usuarios pertenece al proveedor de autenticación; Upsert solo se usa para sembrar datos.
type UserRepository interface {
	GetByIDs(ctx context.Context, ids []entity.UserID) (map[entity.UserID]*entity.User, error)
	Upsert(ctx context.Context, user *entity.User) error
}
