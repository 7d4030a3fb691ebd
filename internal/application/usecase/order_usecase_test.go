package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/application/usecase"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/infrastructure/memory"
)

func TestOrderCreate_DerivaVendedorYPending(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	x := f.createProduct(t, sellerA, "X", 100, "tools")

	order, err := f.orderUC.Create(ctx, buyer, dto.CreateOrderRequest{ProductID: x.ID})
	require.NoError(t, err)
	assert.Equal(t, "seller-a", order.SellerID)
	assert.Equal(t, "buyer-1", order.BuyerID)
	assert.Equal(t, x.ID, order.ProductID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, 1, f.rec.ordersCreated)

	stored, err := f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.UserID("seller-a"), stored.SellerID)
	assert.Equal(t, entity.OrderStatusPending, stored.Status)
}

func TestOrderCreate_ProductoInexistente(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.orderUC.Create(ctx, buyer, dto.CreateOrderRequest{ProductID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = f.orderUC.Create(ctx, buyer, dto.CreateOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.orderUC.Create(ctx, entity.Principal{}, dto.CreateOrderRequest{ProductID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestOrderCreate_SinControlDeDuplicados(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	x := f.createProduct(t, sellerA, "X", 100, "tools")

	first, err := f.orderUC.Create(ctx, buyer, dto.CreateOrderRequest{ProductID: x.ID})
	require.NoError(t, err)
	second, err := f.orderUC.Create(ctx, buyer, dto.CreateOrderRequest{ProductID: x.ID})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

// Comprador crea orden → pending; A la marca shipped; B (no dueño) recibe no autorizado.
func TestOrderUpdateStatus_Escenario(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	x := f.createProduct(t, sellerA, "X", 100, "tools")
	order, err := f.orderUC.Create(ctx, buyer, dto.CreateOrderRequest{ProductID: x.ID})
	require.NoError(t, err)

	updated, err := f.orderUC.UpdateStatus(ctx, sellerA, order.ID, dto.UpdateOrderStatusRequest{Status: "shipped"})
	require.NoError(t, err)
	assert.Equal(t, "shipped", updated.Status)
	assert.Equal(t, 1, f.rec.statuses["shipped"])

	_, err = f.orderUC.UpdateStatus(ctx, sellerB, order.ID, dto.UpdateOrderStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	// Tampoco el comprador puede cambiar el estado.
	_, err = f.orderUC.UpdateStatus(ctx, buyer, order.ID, dto.UpdateOrderStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	stored, _ := f.orders.GetByID(ctx, order.ID)
	assert.Equal(t, "shipped", stored.Status)
}

func TestOrderUpdateStatus_TextoLibreSinTransiciones(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	x := f.createProduct(t, sellerA, "X", 100, "tools")
	order, err := f.orderUC.Create(ctx, buyer, dto.CreateOrderRequest{ProductID: x.ID})
	require.NoError(t, err)

	for _, s := range []string{"delivered", "pending", "en camino", "delivered"} {
		out, err := f.orderUC.UpdateStatus(ctx, sellerA, order.ID, dto.UpdateOrderStatusRequest{Status: s})
		require.NoError(t, err)
		assert.Equal(t, s, out.Status)
	}

	_, err = f.orderUC.UpdateStatus(ctx, sellerA, order.ID, dto.UpdateOrderStatusRequest{Status: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.orderUC.UpdateStatus(ctx, sellerA, order.ID, dto.UpdateOrderStatusRequest{Status: strings.Repeat("x", 65)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderUpdateStatus_NoEncontrada(t *testing.T) {
	f := newFixture()
	_, err := f.orderUC.UpdateStatus(context.Background(), sellerA, "ghost", dto.UpdateOrderStatusRequest{Status: "shipped"})
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderListados_ExpandenReferencias(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	x := f.createProduct(t, sellerA, "X", 100, "tools")
	y := f.createProduct(t, sellerB, "Y", 20, "home")
	_, err := f.orderUC.Create(ctx, buyer, dto.CreateOrderRequest{ProductID: x.ID})
	require.NoError(t, err)
	_, err = f.orderUC.Create(ctx, buyer, dto.CreateOrderRequest{ProductID: y.ID})
	require.NoError(t, err)

	mine, err := f.orderUC.ListForBuyer(ctx, buyer)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, o := range mine {
		assert.Equal(t, "Carla", o.Buyer.Name)
		assert.True(t, o.Seller.Resolved)
		assert.True(t, o.Product.Resolved)
		require.NotNil(t, o.Product.Product)
	}

	received, err := f.orderUC.ListForSeller(ctx, sellerA)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, "Ana", received[0].Seller.Name)
	assert.Equal(t, "buyer@example.com", received[0].Buyer.Email)
	assert.Equal(t, "X", received[0].Product.Product.Name)
}

func TestOrderListados_ProductoEliminadoQuedaSinResolver(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	x := f.createProduct(t, sellerA, "X", 100, "tools")
	order, err := f.orderUC.Create(ctx, buyer, dto.CreateOrderRequest{ProductID: x.ID})
	require.NoError(t, err)

	_, err = f.productUC.Delete(ctx, sellerA, x.ID)
	require.NoError(t, err)

	list, err := f.orderUC.ListForBuyer(ctx, buyer)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, order.ID, list[0].ID)
	assert.Equal(t, dto.ProductRef{ID: x.ID, Resolved: false}, list[0].Product)

	// La orden sigue siendo gestionable por el vendedor.
	_, err = f.orderUC.UpdateStatus(ctx, sellerA, order.ID, dto.UpdateOrderStatusRequest{Status: "cancelled"})
	assert.NoError(t, err)
}

func TestOrderCreate_FalloDePersistencia(t *testing.T) {
	uc := usecase.NewOrderUseCase(memory.NewOrderRepository(), brokenProducts{}, memory.NewUserRepository(), nil)
	_, err := uc.Create(context.Background(), buyer, dto.CreateOrderRequest{ProductID: "p1"})
	assert.ErrorIs(t, err, errStoreDown)
}
