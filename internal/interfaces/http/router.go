package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Marketplace-api/internal/application/usecase"
	"github.com/jhoicas/Marketplace-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	OrderUC   *usecase.OrderUseCase
	JWTSecret string
	Logger    *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	auth := AuthMiddleware(deps.JWTSecret)
	api := app.Group("/api")

	// Products: lectura pública, escritura protegida.
	// search y my-products antes de /:id.
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, log)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/my-products", auth, productHandler.ListMine)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", auth, productHandler.Create)
	products.Put("/:id", auth, productHandler.Update)
	products.Delete("/:id", auth, productHandler.Delete)

	// Orders (protegido)
	orders := api.Group("/orders", auth)
	orderHandler := NewOrderHandler(deps.OrderUC, log)
	orders.Post("/", orderHandler.Create)
	orders.Get("/my-orders", orderHandler.MyOrders)
	orders.Get("/seller", orderHandler.SellerOrders)
	orders.Put("/:id", orderHandler.UpdateStatus)
}
