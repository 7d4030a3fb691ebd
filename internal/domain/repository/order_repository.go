package repository

import (
	"context"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP). No hay borrado de órdenes.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	// GetByID devuelve (nil, nil) si la orden no existe.
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	ListByBuyer(ctx context.Context, buyerID entity.UserID) ([]*entity.Order, error)
	ListBySeller(ctx context.Context, sellerID entity.UserID) ([]*entity.Order, error)
}
