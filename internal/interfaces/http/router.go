package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ecommercebot-api/internal/application/auth"
	"github.com/tu-usuario/ecommercebot-api/internal/application/usecase"
	"github.com/tu-usuario/ecommercebot-api/internal/domain/entity"
	"github.com/tu-usuario/ecommercebot-api/internal/infrastructure/storage"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CompanyUC   *usecase.CompanyUseCase
	CatalogUC   *usecase.CatalogUseCase
	OrderUC     *usecase.OrderUseCase
	BotConfigUC *usecase.BotConfigUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
	Images      *storage.ImageService
	JWTSecret   string
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
	protected.Get("/auth/me", authHandler.Me)

	// Companies (solo admin)
	companies := protected.Group("/companies", RequireRole(entity.RoleAdmin))
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	// Catálogo de productos (protegido, alcance por rol)
	catalogGroup := protected.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.Images)
	catalogGroup.Get("/products", catalogHandler.List)
	catalogGroup.Post("/products", catalogHandler.Create)
	catalogGroup.Get("/summary", catalogHandler.Summary)
	catalogGroup.Patch("/products/:companyID/:id", catalogHandler.Update)
	catalogGroup.Post("/products/:companyID/:id/toggle", catalogHandler.ToggleStatus)
	catalogGroup.Delete("/products/:companyID/:id", catalogHandler.Delete)
	catalogGroup.Post("/images/upload-url", catalogHandler.PresignImageUpload)
	catalogGroup.Get("/images/download-url", catalogHandler.PresignImageDownload)

	// Pedidos (protegido, alcance por rol)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/summary", orderHandler.Summary)
	orders.Put("/:id/status", orderHandler.UpdateStatus)

	// Configuración del bot (protegido)
	bot := protected.Group("/bot")
	botHandler := NewBotConfigHandler(deps.BotConfigUC)
	bot.Get("/config", botHandler.Get)
	bot.Put("/config", botHandler.Update)

	// Analítica (protegido, alcance por rol)
	analytics := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	analytics.Get("/sales", analyticsHandler.Sales)
	analytics.Get("/top-products", analyticsHandler.TopProducts)
	analytics.Get("/channels", analyticsHandler.Channels)

	// Panel admin (solo admin)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	admin.Get("/overview", analyticsHandler.Overview)
}
