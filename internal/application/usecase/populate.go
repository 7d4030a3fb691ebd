package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

// populator resuelve referencias (populate) en lote para los listados.
type populator struct {
	users    repository.UserRepository
	products repository.ProductRepository
}

func (p populator) usersByID(ctx context.Context, ids []entity.UserID) (map[entity.UserID]*entity.User, error) {
	if len(ids) == 0 {
		return map[entity.UserID]*entity.User{}, nil
	}
	users, err := p.users.GetByIDs(ctx, uniqueUserIDs(ids))
	if err != nil {
		return nil, fmt.Errorf("expandir usuarios: %w", err)
	}
	return users, nil
}

func (p populator) productsByID(ctx context.Context, ids []string) (map[string]*entity.Product, error) {
	if len(ids) == 0 {
		return map[string]*entity.Product{}, nil
	}
	products, err := p.products.GetByIDs(ctx, uniqueStrings(ids))
	if err != nil {
		return nil, fmt.Errorf("expandir productos: %w", err)
	}
	return products, nil
}

func toUserRef(id entity.UserID, users map[entity.UserID]*entity.User) dto.UserRef {
	u, ok := users[id]
	if !ok || u == nil {
		return dto.UserRef{ID: id.String(), Resolved: false}
	}
	return dto.UserRef{ID: id.String(), Name: u.Name, Email: u.Email, Resolved: true}
}

func toProductRef(id string, products map[string]*entity.Product) dto.ProductRef {
	p, ok := products[id]
	if !ok || p == nil {
		return dto.ProductRef{ID: id, Resolved: false}
	}
	return dto.ProductRef{ID: id, Resolved: true, Product: toProductResponse(p)}
}

func uniqueUserIDs(ids []entity.UserID) []entity.UserID {
	seen := make(map[entity.UserID]struct{}, len(ids))
	out := make([]entity.UserID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func uniqueStrings(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
