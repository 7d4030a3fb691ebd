package dto

import "time"

// CreateOrderRequest entrada para crear una orden. El vendedor y el estado no se aceptan del cliente.
type CreateOrderRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// UpdateOrderStatusRequest entrada para cambiar el estado (texto libre).
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,max=64"`
}

// OrderResponse salida de una orden con referencias sin expandir.
type OrderResponse struct {
	ID        string    `json:"id"`
	BuyerID   string    `json:"buyer_id"`
	SellerID  string    `json:"seller_id"`
	ProductID string    `json:"product_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderDetailResponse orden con comprador, vendedor y producto expandidos.
type OrderDetailResponse struct {
	ID        string     `json:"id"`
	Buyer     UserRef    `json:"buyer"`
	Seller    UserRef    `json:"seller"`
	Product   ProductRef `json:"product"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
