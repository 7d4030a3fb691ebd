package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para publicar un producto. Todos los campos son obligatorios.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,min=1,max=200"`
	Description string           `json:"description" validate:"required"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Category    string           `json:"category" validate:"required"`
	Location    string           `json:"location" validate:"required"`
}

// UpdateProductRequest actualización parcial: nil = campo no enviado, se conserva el valor actual.
// El vendedor no es modificable.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Location    *string          `json:"location"`
}

// IsEmpty indica que no se envió ningún campo.
func (r UpdateProductRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Price == nil && r.Category == nil && r.Location == nil
}

// SearchProductsQuery parámetros de GET /products/search.
type SearchProductsQuery struct {
	Keyword  string `query:"keyword"`
	Category string `query:"category"`
	Location string `query:"location"`
	MinPrice string `query:"minPrice"`
	MaxPrice string `query:"maxPrice"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Location    string          `json:"location"`
	SellerID    string          `json:"seller_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListingResponse producto con el vendedor expandido (listados públicos).
type ProductListingResponse struct {
	ProductResponse
	Seller UserRef `json:"seller"`
}

// ProductRef referencia expandida a un producto desde una orden.
// Resolved=false: el producto fue eliminado después de crear la orden.
type ProductRef struct {
	ID       string           `json:"id"`
	Resolved bool             `json:"resolved"`
	Product  *ProductResponse `json:"product,omitempty"`
}
