package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/domain"
	"github.com/jhoicas/Marketplace-api/internal/domain/authz"
	"github.com/jhoicas/Marketplace-api/internal/domain/catalog"
	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
	"github.com/jhoicas/Marketplace-api/internal/domain/repository"
)

// ProductUseCase ciclo de vida de las publicaciones. Solo el vendedor dueño puede modificarlas o eliminarlas.
type ProductUseCase struct {
	repo     repository.ProductRepository
	populate populator
	rec      Recorder
	now      func() time.Time
}

// NewProductUseCase construye el caso de uso. rec puede ser nil.
func NewProductUseCase(repo repository.ProductRepository, users repository.UserRepository, rec Recorder) *ProductUseCase {
	return &ProductUseCase{
		repo:     repo,
		populate: populator{users: users, products: repo},
		rec:      recorderOrNoop(rec),
		now:      time.Now,
	}
}

// Create publica un producto a nombre del principal.
func (uc *ProductUseCase) Create(ctx context.Context, seller entity.Principal, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if seller.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	if err := validateCreate(in); err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       *in.Price,
		Category:    in.Category,
		Location:    in.Location,
		SellerID:    seller.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.rec.ProductCreated()
	return toProductResponse(product), nil
}

// GetByID obtiene un producto con su vendedor expandido.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductListingResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	list, err := uc.withSellers(ctx, []*entity.Product{product})
	if err != nil {
		return nil, err
	}
	return &list[0], nil
}

// Update aplica una actualización parcial: solo se sobrescriben los campos enviados.
// Una petición sin campos no escribe nada y devuelve el producto tal cual.
func (uc *ProductUseCase) Update(ctx context.Context, seller entity.Principal, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.ownedProduct(ctx, seller, id)
	if err != nil {
		return nil, err
	}
	if in.IsEmpty() {
		return toProductResponse(product), nil
	}
	if err := validateUpdate(in); err != nil {
		return nil, err
	}
	if in.Name != nil {
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Location != nil {
		product.Location = *in.Location
	}
	product.UpdatedAt = uc.now().UTC()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	uc.rec.ProductUpdated()
	return toProductResponse(product), nil
}

// Delete elimina la publicación. Las órdenes que la referencian no se tocan.
func (uc *ProductUseCase) Delete(ctx context.Context, seller entity.Principal, id string) (*dto.MessageResponse, error) {
	if _, err := uc.ownedProduct(ctx, seller, id); err != nil {
		return nil, err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	uc.rec.ProductDeleted()
	return &dto.MessageResponse{Message: "producto eliminado correctamente"}, nil
}

// ListAll lista todas las publicaciones con el vendedor expandido (público).
func (uc *ProductUseCase) ListAll(ctx context.Context) ([]dto.ProductListingResponse, error) {
	return uc.Search(ctx, catalog.SearchParams{})
}

// Search filtra el catálogo con los parámetros opcionales. Sin paginación.
func (uc *ProductUseCase) Search(ctx context.Context, params catalog.SearchParams) ([]dto.ProductListingResponse, error) {
	pred, err := catalog.BuildQuery(params)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.Find(ctx, pred)
	if err != nil {
		return nil, err
	}
	return uc.withSellers(ctx, list)
}

// ListMine lista las publicaciones del principal.
func (uc *ProductUseCase) ListMine(ctx context.Context, seller entity.Principal) ([]dto.ProductResponse, error) {
	if seller.IsZero() {
		return nil, domain.ErrUnauthorized
	}
	list, err := uc.repo.ListBySeller(ctx, seller.ID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// ownedProduct busca el producto y verifica que el principal sea su vendedor.
func (uc *ProductUseCase) ownedProduct(ctx context.Context, seller entity.Principal, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	if err := authz.Authorize(seller, product); err != nil {
		uc.rec.Unauthorized("product")
		return nil, err
	}
	return product, nil
}

func (uc *ProductUseCase) withSellers(ctx context.Context, list []*entity.Product) ([]dto.ProductListingResponse, error) {
	sellerIDs := make([]entity.UserID, 0, len(list))
	for _, p := range list {
		sellerIDs = append(sellerIDs, p.SellerID)
	}
	users, err := uc.populate.usersByID(ctx, sellerIDs)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductListingResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ProductListingResponse{
			ProductResponse: *toProductResponse(p),
			Seller:          toUserRef(p.SellerID, users),
		})
	}
	return items, nil
}

func validateCreate(in dto.CreateProductRequest) error {
	var missing []string
	if strings.TrimSpace(in.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(in.Description) == "" {
		missing = append(missing, "description")
	}
	if in.Price == nil {
		missing = append(missing, "price")
	}
	if strings.TrimSpace(in.Category) == "" {
		missing = append(missing, "category")
	}
	if strings.TrimSpace(in.Location) == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return domain.InvalidInput("campos requeridos: %s", strings.Join(missing, ", "))
	}
	if in.Price.IsNegative() {
		return domain.InvalidInput("price debe ser >= 0, recibido %s", in.Price.String())
	}
	return nil
}

func validateUpdate(in dto.UpdateProductRequest) error {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return domain.InvalidInput("name no puede quedar vacío")
	}
	if in.Price != nil && in.Price.IsNegative() {
		return domain.InvalidInput("price debe ser >= 0, recibido %s", in.Price.String())
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Location:    p.Location,
		SellerID:    p.SellerID.String(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
