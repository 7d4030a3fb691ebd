// Package memory implementa los puertos de persistencia en memoria (desarrollo local y tests).
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/catalog"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo guarda copias de los productos; nadie fuera del repo comparte punteros con el mapa.
type ProductRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Product
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{items: make(map[string]entity.Product)}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[product.ID]; ok {
		return domain.ErrDuplicate
	}
	r.items[product.ID] = *product
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetByIDs resuelve varios productos a la vez.
func (r *ProductRepo) GetByIDs(_ context.Context, ids []string) (map[string]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]*entity.Product, len(ids))
	for _, id := range ids {
		if p, ok := r.items[id]; ok {
			out[id] = &p
		}
	}
	return out, nil
}

// Update reemplaza los campos del listing conservando SellerID y CreatedAt.
func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	current, ok := r.items[product.ID]
	if !ok {
		return domain.ErrProductNotFound
	}
	current.Name = product.Name
	current.Description = product.Description
	current.Price = product.Price
	current.Category = product.Category
	current.Location = product.Location
	current.UpdatedAt = product.UpdatedAt
	r.items[product.ID] = current
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

// Find devuelve los productos que cumplen el predicado, del más reciente al más antiguo.
func (r *ProductRepo) Find(_ context.Context, pred catalog.Predicate) ([]*entity.Product, error) {
	return r.list(pred.Matches), nil
}

// ListBySeller lista los productos de un vendedor.
func (r *ProductRepo) ListBySeller(_ context.Context, sellerID entity.UserID) ([]*entity.Product, error) {
	return r.list(func(p *entity.Product) bool { return p.SellerID == sellerID }), nil
}

func (r *ProductRepo) list(keep func(*entity.Product) bool) []*entity.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		p := p
		if keep(&p) {
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}
