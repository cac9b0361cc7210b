package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Tienda-api/internal/application/auth"
	"github.com/jhoicas/Tienda-api/internal/application/cart"
	"github.com/jhoicas/Tienda-api/internal/application/checkout"
	"github.com/jhoicas/Tienda-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CartUC     *cart.CartUseCase
	CheckoutUC *checkout.CheckoutUseCase
	ReceiptUC  *checkout.ReceiptUseCase
	CatalogUC  *usecase.CatalogUseCase
	ProfileUC  *usecase.ProfileUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo externo (protegido)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/catalog", catalogHandler.List)

	// Carrito (protegido)
	cartHandler := NewCartHandler(deps.CartUC)
	protected.Get("/cart", cartHandler.GetCart)
	protected.Post("/cart/items", cartHandler.AddItem)
	protected.Delete("/cart/items/:productID", cartHandler.RemoveItem)

	// Checkout (protegido)
	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC)
	protected.Get("/checkout/quote", checkoutHandler.Quote)
	protected.Post("/checkout", checkoutHandler.Confirm)

	// Pedidos (protegido)
	orderHandler := NewOrderHandler(deps.CheckoutUC, deps.ReceiptUC)
	orders := protected.Group("/orders")
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.Get)
	orders.Get("/:id/pdf", orderHandler.DownloadPDF)

	// Perfil (protegido)
	profileHandler := NewProfileHandler(deps.ProfileUC)
	protected.Get("/profile", profileHandler.Get)
}
