package postgres

import (
	"context"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo lectura de la tabla users que mantiene el proveedor de autenticación.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// GetByIDs resuelve varios usuarios en una sola consulta (solo nombre y email para expansión).
func (r *UserRepo) GetByIDs(ctx context.Context, ids []entity.UserID) (map[entity.UserID]*entity.User, error) {
	out := make(map[entity.UserID]*entity.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	raw := make([]string, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, string(id))
	}
	rows, err := r.q.Query(ctx,
		`SELECT id, name, email, role, created_at FROM users WHERE id = ANY($1)`, raw)
	if err != nil {
		return nil, classify("get users by ids", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			u  entity.User
			id string
		)
		if err := rows.Scan(&id, &u.Name, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, classify("scan user", err)
		}
		u.ID = entity.UserID(id)
		out[u.ID] = &u
	}
	if err := rows.Err(); err != nil {
		return nil, classify("get users by ids", err)
	}
	return out, nil
}

// Upsert crea o actualiza un usuario (solo para sembrar datos de desarrollo).
func (r *UserRepo) Upsert(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, role, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email, role = EXCLUDED.role`
	if _, err := r.q.Exec(ctx, query, string(u.ID), u.Name, u.Email, u.Role, u.CreatedAt); err != nil {
		return classify("upsert user", err)
	}
	return nil
}
