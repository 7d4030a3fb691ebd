package entity

import "time"

// OrderStatusPending estado inicial de toda orden. El resto de estados es texto libre del vendedor.
const OrderStatusPending = "pending"

// Order representa una orden de compra de un producto.
// SellerID se copia del producto al crear la orden; nunca lo envía el cliente.
type Order struct {
	ID        string
	BuyerID   UserID
	SellerID  UserID
	ProductID string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnerID devuelve el vendedor, único autorizado a cambiar el estado.
func (o *Order) OwnerID() UserID { return o.SellerID }
