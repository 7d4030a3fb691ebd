package repository

import (
	"context"

	"github.com/jhoicas/Marketplace-api/internal/domain/catalog"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDs resuelve referencias en lote; los ids inexistentes no aparecen en el mapa.
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Product, error)
	// Update persiste los campos del listing. Nunca modifica SellerID.
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	// Find devuelve todos los productos que cumplen el predicado (sin paginación).
	Find(ctx context.Context, pred catalog.Predicate) ([]*entity.Product, error)
	ListBySeller(ctx context.Context, sellerID entity.UserID) ([]*entity.Product, error)
}
