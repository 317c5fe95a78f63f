package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/joyeria-api/internal/application/auth"
	"github.com/jhoicas/joyeria-api/internal/application/inventory"
	"github.com/jhoicas/joyeria-api/internal/application/pricing"
	"github.com/jhoicas/joyeria-api/internal/application/usecase"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	QuoteUC          *pricing.QuoteUseCase
	ItemUC           *usecase.ItemUseCase
	MaterialUC       *usecase.MaterialUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users: alta solo admin
	protected.Get("/users/me", authHandler.Me)
	protected.Post("/users", RequireRole(entity.RoleAdmin), authHandler.Register)

	// Pricing (cualquier rol)
	pricingHandler := NewPricingHandler(deps.QuoteUC)
	protected.Post("/pricing/quote", pricingHandler.Quote)
	protected.Post("/pricing/recalculate", pricingHandler.Recalculate)

	// Catálogo de materiales (solo admin)
	materials := protected.Group("/materials", RequireRole(entity.RoleAdmin))
	materialHandler := NewMaterialHandler(deps.MaterialUC)
	materials.Post("/", materialHandler.Create)
	materials.Get("/", materialHandler.List)
	materials.Put("/:id/rate", materialHandler.UpdateRate)

	// Items
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
	items.Get("/:id/breakdown", itemHandler.Breakdown)
	items.Get("/:id/breakdown.pdf", itemHandler.BreakdownPDF)
	items.Get("/:id/variants/prices", itemHandler.VariantPrices)
	items.Get("/:id/movements", inventoryHandler.ListMovements)

	// Inventory movements (admin y bodeguero)
	invGroup := protected.Group("/inventory", RequireRole(entity.RoleAdmin, entity.RoleBodeguero))
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
}
