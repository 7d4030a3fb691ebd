package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa una publicación (listing) de un vendedor.
// SellerID se fija al crear y no cambia nunca.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, no negativo
	Category    string          // etiqueta libre
	Location    string          // etiqueta libre
	SellerID    UserID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OwnerID devuelve el vendedor dueño de la publicación.
func (p *Product) OwnerID() UserID { return p.SellerID }
