package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Marketplace-api/internal/application/dto"
	"github.com/jhoicas/Marketplace-api/internal/application/usecase"
	"github.com/jhoicas/Marketplace-api/pkg/logger"
)

// OrderHandler maneja las peticiones HTTP de órdenes (todas protegidas).
type OrderHandler struct {
	uc  *usecase.OrderUseCase
	log *logger.Logger
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase, log *logger.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, log: log}
}

// createOrderBody acepta product_id y también productId (clientes existentes).
type createOrderBody struct {
	ProductID      string `json:"product_id"`
	ProductIDCamel string `json:"productId"`
}

// Create godoc
// @Summary      Crear orden
// @Description  El vendedor se toma del producto y el estado inicial es pending.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Producto a comprar"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var body createOrderBody
	if err := c.BodyParser(&body); err != nil {
		return invalidBody(c)
	}
	in := dto.CreateOrderRequest{ProductID: body.ProductID}
	if in.ProductID == "" {
		in.ProductID = body.ProductIDCamel
	}
	out, err := h.uc.Create(c.UserContext(), GetPrincipal(c), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MyOrders godoc
// @Summary      Mis compras
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.OrderDetailResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/orders/my-orders [get]
func (h *OrderHandler) MyOrders(c *fiber.Ctx) error {
	out, err := h.uc.ListForBuyer(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// SellerOrders godoc
// @Summary      Órdenes recibidas como vendedor
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.OrderDetailResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/orders/seller [get]
func (h *OrderHandler) SellerOrders(c *fiber.Ctx) error {
	out, err := h.uc.ListForSeller(c.UserContext(), GetPrincipal(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de una orden
// @Description  Solo el vendedor de la orden. El estado es texto libre.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateOrderStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), GetPrincipal(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
