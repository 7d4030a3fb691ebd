package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo directorio de usuarios en memoria.
type UserRepo struct {
	mu    sync.RWMutex
	items map[entity.UserID]entity.User
}

// NewUserRepository construye el directorio, opcionalmente con usuarios iniciales.
func NewUserRepository(users ...entity.User) *UserRepo {
	r := &UserRepo{items: make(map[entity.UserID]entity.User, len(users))}
	for _, u := range users {
		r.items[u.ID] = u
	}
	return r
}

// GetByIDs resuelve varios usuarios; los desconocidos se omiten.
func (r *UserRepo) GetByIDs(_ context.Context, ids []entity.UserID) (map[entity.UserID]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[entity.UserID]*entity.User, len(ids))
	for _, id := range ids {
		if u, ok := r.items[id]; ok {
			out[id] = &u
		}
	}
	return out, nil
}

// Upsert crea o reemplaza un usuario.
func (r *UserRepo) Upsert(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[user.ID] = *user
	return nil
}
