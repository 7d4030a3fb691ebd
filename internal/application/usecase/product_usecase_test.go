package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/application/usecase"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/catalog"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/infrastructure/memory"
)

func TestProductCreate_AsignaVendedorPrincipal(t *testing.T) {
	f := newFixture()
	out := f.createProduct(t, sellerA, "Taladro", 100, "tools")

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "seller-a", out.SellerID)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 1, f.rec.productsCreated)

	stored, err := f.products.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.UserID("seller-a"), stored.SellerID)
}

func TestProductCreate_Validacion(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.productUC.Create(ctx, sellerA, dto.CreateProductRequest{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.productUC.Create(ctx, sellerA, dto.CreateProductRequest{
		Name: "x", Description: "d", Price: price(-1), Category: "c", Location: "l",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.productUC.Create(ctx, entity.Principal{}, dto.CreateProductRequest{
		Name: "x", Description: "d", Price: price(1), Category: "c", Location: "l",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	free, err := f.productUC.Create(ctx, sellerA, dto.CreateProductRequest{
		Name: "Regalo", Description: "d", Price: price(0), Category: "c", Location: "l",
	})
	require.NoError(t, err, "precio cero es válido")
	assert.True(t, free.Price.IsZero())
}

// Vendedor A crea X (100, tools); B intenta bajar el precio → no autorizado y X sigue en 100.
func TestProductUpdate_OtroVendedorNoAutorizado(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	x := f.createProduct(t, sellerA, "X", 100, "tools")

	_, err := f.productUC.Update(ctx, sellerB, x.ID, dto.UpdateProductRequest{Price: price(50)})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 1, f.rec.unauthorized)

	stored, _ := f.products.GetByID(ctx, x.ID)
	assert.True(t, stored.Price.Equal(decimal.NewFromInt(100)))
}

func TestProductUpdate_ParcialSoloCamposEnviados(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	x := f.createProduct(t, sellerA, "X", 100, "tools")

	out, err := f.productUC.Update(ctx, sellerA, x.ID, dto.UpdateProductRequest{
		Price:    price(80),
		Location: strPtr("medellin"),
	})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, "medellin", out.Location)
	assert.Equal(t, "X", out.Name)
	assert.Equal(t, "tools", out.Category)
	assert.Equal(t, "descripción de X", out.Description)
	assert.Equal(t, 1, f.rec.productsUpdated)
}

func TestProductUpdate_ValoresVaciosExplicitos(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	x := f.createProduct(t, sellerA, "X", 100, "tools")

	// Enviar precio 0 o descripción vacía es distinto de no enviarlos.
	out, err := f.productUC.Update(ctx, sellerA, x.ID, dto.UpdateProductRequest{
		Price:       price(0),
		Description: strPtr(""),
	})
	require.NoError(t, err)
	assert.True(t, out.Price.IsZero())
	assert.Equal(t, "", out.Description)

	_, err = f.productUC.Update(ctx, sellerA, x.ID, dto.UpdateProductRequest{Name: strPtr("  ")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.productUC.Update(ctx, sellerA, x.ID, dto.UpdateProductRequest{Price: price(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_SinCamposEsNoOp(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	x := f.createProduct(t, sellerA, "X", 100, "tools")
	before, err := f.products.GetByID(ctx, x.ID)
	require.NoError(t, err)

	out, err := f.productUC.Update(ctx, sellerA, x.ID, dto.UpdateProductRequest{})
	require.NoError(t, err)

	after, err := f.products.GetByID(ctx, x.ID)
	require.NoError(t, err)
	assert.Equal(t, *before, *after)
	assert.Equal(t, before.UpdatedAt, out.UpdatedAt)
	assert.Equal(t, 0, f.rec.productsUpdated)
}

func TestProductUpdate_NoEncontrado(t *testing.T) {
	f := newFixture()
	_, err := f.productUC.Update(context.Background(), sellerA, "ghost", dto.UpdateProductRequest{Price: price(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_SoloElDueño(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	x := f.createProduct(t, sellerA, "X", 100, "tools")

	_, err := f.productUC.Delete(ctx, sellerB, x.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	stored, _ := f.products.GetByID(ctx, x.ID)
	require.NotNil(t, stored, "el producto sigue almacenado tras un intento no autorizado")

	msg, err := f.productUC.Delete(ctx, sellerA, x.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, msg.Message)
	gone, _ := f.products.GetByID(ctx, x.ID)
	assert.Nil(t, gone)

	_, err = f.productUC.Delete(ctx, sellerA, x.ID)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductListAll_ExpandeVendedor(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.createProduct(t, sellerA, "X", 100, "tools")
	f.createProduct(t, entity.Principal{ID: "desconocido"}, "Y", 5, "home")

	list, err := f.productUC.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	bySeller := map[string]dto.UserRef{}
	for _, item := range list {
		bySeller[item.SellerID] = item.Seller
	}
	assert.Equal(t, dto.UserRef{ID: "seller-a", Name: "Ana", Email: "a@example.com", Resolved: true}, bySeller["seller-a"])
	assert.Equal(t, dto.UserRef{ID: "desconocido", Resolved: false}, bySeller["desconocido"])
}

func TestProductListMine(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.createProduct(t, sellerA, "X", 100, "tools")
	f.createProduct(t, sellerA, "Y", 10, "tools")
	f.createProduct(t, sellerB, "Z", 10, "tools")

	mine, err := f.productUC.ListMine(ctx, sellerA)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, p := range mine {
		assert.Equal(t, "seller-a", p.SellerID)
	}
}

func TestProductSearch_RangoDePrecio(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.createProduct(t, sellerA, "Barato", 10, "tools")
	mid := f.createProduct(t, sellerA, "Medio", 75, "tools")
	f.createProduct(t, sellerB, "Caro", 200, "tools")

	list, err := f.productUC.Search(ctx, catalog.SearchParams{MinPrice: "50", MaxPrice: "150"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mid.ID, list[0].ID)
	assert.True(t, list[0].Seller.Resolved)

	_, err = f.productUC.Search(ctx, catalog.SearchParams{MaxPrice: "mucho"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductGetByID(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	x := f.createProduct(t, sellerA, "X", 100, "tools")

	got, err := f.productUC.GetByID(ctx, x.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Seller.Name)

	_, err = f.productUC.GetByID(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProduct_FalloDePersistenciaSePropaga(t *testing.T) {
	uc := usecase.NewProductUseCase(brokenProducts{}, memory.NewUserRepository(), nil)
	ctx := context.Background()

	_, err := uc.ListAll(ctx)
	assert.ErrorIs(t, err, errStoreDown)
	_, err = uc.Delete(ctx, sellerA, "p1")
	assert.ErrorIs(t, err, errStoreDown)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
