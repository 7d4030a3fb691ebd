package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo repositorio de órdenes en memoria.
type OrderRepo struct {
	mu    sync.RWMutex
	items map[string]entity.Order
	now   func() time.Time
}

// NewOrderRepository construye el repositorio vacío.
func NewOrderRepository() *OrderRepo {
	return &OrderRepo{items: make(map[string]entity.Order), now: time.Now}
}

// Create persiste una nueva orden.
func (r *OrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[order.ID]; ok {
		return domain.ErrDuplicate
	}
	r.items[order.ID] = *order
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

// UpdateStatus sobrescribe el estado de la orden.
func (r *OrderRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.items[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.Status = status
	o.UpdatedAt = r.now()
	r.items[id] = o
	return nil
}

// ListByBuyer lista las órdenes de un comprador.
func (r *OrderRepo) ListByBuyer(_ context.Context, buyerID entity.UserID) ([]*entity.Order, error) {
	return r.list(func(o *entity.Order) bool { return o.BuyerID == buyerID }), nil
}

// ListBySeller lista las órdenes recibidas por un vendedor.
func (r *OrderRepo) ListBySeller(_ context.Context, sellerID entity.UserID) ([]*entity.Order, error) {
	return r.list(func(o *entity.Order) bool { return o.SellerID == sellerID }), nil
}

func (r *OrderRepo) list(keep func(*entity.Order) bool) []*entity.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Order, 0)
	for _, o := range r.items {
		o := o
		if keep(&o) {
			out = append(out, &o)
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
