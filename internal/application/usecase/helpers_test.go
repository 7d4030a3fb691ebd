package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/application/usecase"
	"github.com/jhoicas/Marketplace-api/internal/domain/catalog"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/infrastructure/memory"
)

var (
	sellerA = entity.Principal{ID: "seller-a", Email: "a@example.com"}
	sellerB = entity.Principal{ID: "seller-b", Email: "b@example.com"}
	buyer   = entity.Principal{ID: "buyer-1", Email: "buyer@example.com"}
)

// fixture agrupa los repositorios en memoria y los casos de uso sobre ellos.
type fixture struct {
	products  *memory.ProductRepo
	orders    *memory.OrderRepo
	users     *memory.UserRepo
	rec       *countingRecorder
	productUC *usecase.ProductUseCase
	orderUC   *usecase.OrderUseCase
}

func newFixture() *fixture {
	f := &fixture{
		products: memory.NewProductRepository(),
		orders:   memory.NewOrderRepository(),
		users: memory.NewUserRepository(
			entity.User{ID: "seller-a", Name: "Ana", Email: "a@example.com", Role: entity.RoleSeller},
			entity.User{ID: "seller-b", Name: "Beto", Email: "b@example.com", Role: entity.RoleSeller},
			entity.User{ID: "buyer-1", Name: "Carla", Email: "buyer@example.com", Role: entity.RoleBuyer},
		),
		rec: &countingRecorder{statuses: map[string]int{}},
	}
	f.productUC = usecase.NewProductUseCase(f.products, f.users, f.rec)
	f.orderUC = usecase.NewOrderUseCase(f.orders, f.products, f.users, f.rec)
	return f
}

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func strPtr(s string) *string { return &s }

func (f *fixture) createProduct(t *testing.T, seller entity.Principal, name string, p int64, category string) *dto.ProductResponse {
	t.Helper()
	out, err := f.productUC.Create(context.Background(), seller, dto.CreateProductRequest{
		Name:        name,
		Description: "descripción de " + name,
		Price:       price(p),
		Category:    category,
		Location:    "bogota",
	})
	require.NoError(t, err)
	return out
}

type countingRecorder struct {
	productsCreated, productsUpdated, productsDeleted int
	ordersCreated                                     int
	statuses                                          map[string]int
	unauthorized                                      int
}

func (r *countingRecorder) ProductCreated()              { r.productsCreated++ }
func (r *countingRecorder) ProductUpdated()              { r.productsUpdated++ }
func (r *countingRecorder) ProductDeleted()              { r.productsDeleted++ }
func (r *countingRecorder) OrderCreated()                { r.ordersCreated++ }
func (r *countingRecorder) OrderStatusChanged(s string)  { r.statuses[s]++ }
func (r *countingRecorder) Unauthorized(resource string) { r.unauthorized++ }

var errStoreDown = errors.New("conexión rechazada")

// brokenProducts simula un fallo de persistencia en todas las operaciones.
type brokenProducts struct{}

func (brokenProducts) Create(context.Context, *entity.Product) error { return errStoreDown }
func (brokenProducts) GetByID(context.Context, string) (*entity.Product, error) {
	return nil, errStoreDown
}
func (brokenProducts) GetByIDs(context.Context, []string) (map[string]*entity.Product, error) {
	return nil, errStoreDown
}
func (brokenProducts) Update(context.Context, *entity.Product) error { return errStoreDown }
func (brokenProducts) Delete(context.Context, string) error          { return errStoreDown }
func (brokenProducts) Find(context.Context, catalog.Predicate) ([]*entity.Product, error) {
	return nil, errStoreDown
}
func (brokenProducts) ListBySeller(context.Context, entity.UserID) ([]*entity.Product, error) {
	return nil, errStoreDown
}
