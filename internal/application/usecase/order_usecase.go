package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/authz"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

// maxStatusLen límite del estado de texto libre.
const maxStatusLen = 64

// OrderUseCase ciclo de vida de las órdenes: creación por el comprador y cambio de estado por el vendedor.
type OrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	populate populator
	rec      Recorder
	now      func() time.Time
}

// NewOrderUseCase construye el caso de uso. rec puede ser nil.
func NewOrderUseCase(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	rec Recorder,
) *OrderUseCase {
	return &OrderUseCase{
		orders:   orders,
		products: products,
		populate: populator{users: users, products: products},
		rec:      recorderOrNoop(rec),
		now:      time.Now,
	}
}

// Create crea una orden en estado pending. El vendedor se toma del producto, nunca del cliente.
// No hay control de stock ni de órdenes duplicadas.
func (uc *OrderUseCase) Create(ctx context.Context, buyer entity.Principal, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if buyer.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	productID := strings.TrimSpace(in.ProductID)
	if productID == "" {
		return nil, domain.InvalidInput("product_id es requerido")
	}
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	now := uc.now().UTC()
	order := &entity.Order{
		ID:        uuid.New().String(),
		BuyerID:   buyer.ID,
		SellerID:  product.SellerID,
		ProductID: product.ID,
		Status:    entity.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	uc.rec.OrderCreated()
	return toOrderResponse(order), nil
}

// ListForBuyer lista las órdenes del comprador con producto y vendedor expandidos.
func (uc *OrderUseCase) ListForBuyer(ctx context.Context, buyer entity.Principal) ([]dto.OrderDetailResponse, error) {
	if buyer.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	list, err := uc.orders.ListByBuyer(ctx, buyer.ID)
	if err != nil {
		return nil, err
	}
	return uc.expand(ctx, list)
}

// ListForSeller lista las órdenes recibidas por el vendedor con producto y comprador expandidos.
func (uc *OrderUseCase) ListForSeller(ctx context.Context, seller entity.Principal) ([]dto.OrderDetailResponse, error) {
	if seller.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	list, err := uc.orders.ListBySeller(ctx, seller.ID)
	if err != nil {
		return nil, err
	}
	return uc.expand(ctx, list)
}

// UpdateStatus sobrescribe el estado sin validar transiciones. Solo el vendedor de la orden puede hacerlo.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, seller entity.Principal, orderID string, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if err := authz.Authorize(seller, order); err != nil {
		uc.rec.Unauthorized("order")
		return nil, err
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		return nil, domain.InvalidInput("status es requerido")
	}
	if utf8.RuneCountInString(status) > maxStatusLen {
		return nil, domain.InvalidInput("status admite hasta %d caracteres", maxStatusLen)
	}
	if err := uc.orders.UpdateStatus(ctx, order.ID, status); err != nil {
		return nil, err
	}
	order.Status = status
	order.UpdatedAt = uc.now().UTC()
	uc.rec.OrderStatusChanged(status)
	return toOrderResponse(order), nil
}

// expand resuelve comprador, vendedor y producto de cada orden.
// Un producto eliminado queda como referencia no resuelta en lugar de fallar el listado.
func (uc *OrderUseCase) expand(ctx context.Context, list []*entity.Order) ([]dto.OrderDetailResponse, error) {
	userIDs := make([]entity.UserID, 0, len(list)*2)
	productIDs := make([]string, 0, len(list))
	for _, o := range list {
		userIDs = append(userIDs, o.BuyerID, o.SellerID)
		productIDs = append(productIDs, o.ProductID)
	}
	users, err := uc.populate.usersByID(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	products, err := uc.populate.productsByID(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderDetailResponse, 0, len(list))
	for _, o := range list {
		items = append(items, dto.OrderDetailResponse{
			ID:        o.ID,
			Buyer:     toUserRef(o.BuyerID, users),
			Seller:    toUserRef(o.SellerID, users),
			Product:   toProductRef(o.ProductID, products),
			Status:    o.Status,
			CreatedAt: o.CreatedAt,
			UpdatedAt: o.UpdatedAt,
		})
	}
	return items, nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:        o.ID,
		BuyerID:   o.BuyerID.String(),
		SellerID:  o.SellerID.String(),
		ProductID: o.ProductID,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
