// Package seed carga usuarios de demostración y emite tokens para probar la API en local.
// Reemplaza al proveedor de autenticación externo solo en desarrollo.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
	"github.com/jhoicas/Marketplace-api/pkg/config"
	"github.com/jhoicas/Marketplace-api/pkg/jwt"
)

// Credential usuario sembrado y su Bearer token.
type Credential struct {
	User  entity.User
	Token string
}

// Users devuelve los usuarios de demostración (IDs fijos para que los tokens sean reproducibles).
func Users() []entity.User {
	return []entity.User{
		{ID: "00000000-0000-0000-0000-00000000a001", Name: "Vendedora Demo", Email: "vendedora@demo.local", Role: entity.RoleSeller},
		{ID: "00000000-0000-0000-0000-00000000a002", Name: "Vendedor Demo", Email: "vendedor@demo.local", Role: entity.RoleSeller},
		{ID: "00000000-0000-0000-0000-00000000b001", Name: "Comprador Demo", Email: "comprador@demo.local", Role: entity.RoleBuyer},
	}
}

// Run hace upsert de users en repo y genera un token por usuario.
func Run(ctx context.Context, repo repository.UserRepository, cfg config.JWTConfig, users []entity.User) ([]Credential, error) {
	now := time.Now().UTC()
	out := make([]Credential, 0, len(users))
	for _, u := range users {
		if u.CreatedAt.IsZero() {
			u.CreatedAt = now
		}
		if err := repo.Upsert(ctx, &u); err != nil {
			return nil, fmt.Errorf("upsert usuario %s: %w", u.ID, err)
		}
		tok, err := jwt.Generate(cfg.Secret, u.ID.String(), u.Email, cfg.Issuer, cfg.Expiration)
		if err != nil {
			return nil, fmt.Errorf("token usuario %s: %w", u.ID, err)
		}
		out = append(out, Credential{User: u, Token: tok})
	}
	return out, nil
}
