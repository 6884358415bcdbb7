// Package app wires repositories, services and handlers into the Fiber
// application. main and the handler tests build the exact same app.
package app

import (
	"chemiflex-backend/internal/config"
	"chemiflex-backend/internal/handler"
	"chemiflex-backend/internal/middleware"
	"chemiflex-backend/internal/model"
	"chemiflex-backend/internal/repository"
	"chemiflex-backend/internal/service"
	"chemiflex-backend/pkg/apperr"
	"chemiflex-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

func New(db *gorm.DB, cfg config.Config) *fiber.App {
	signer := jwt.NewSigner(cfg.JWTSecret)

	// Dependency Injection (Wiring Layers)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)

	saleService := service.NewSaleService(saleRepo, db, service.ItemRules{})
	authService := service.NewAuthService(userRepo, roleRepo, signer)

	categoryHandler := handler.NewCategoryHandler(categoryRepo)
	productHandler := handler.NewProductHandler(productRepo)
	customerHandler := handler.NewCustomerHandler(customerRepo)
	supplierHandler := handler.NewSupplierHandler(supplierRepo)
	saleHandler := handler.NewSaleHandler(saleService)
	authHandler := handler.NewAuthHandler(authService)

	app := fiber.New(fiber.Config{
		AppName:      "Chemiflex Backend v1.0",
		ErrorHandler: apperr.ErrorHandler,
	})

	// Middleware
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigin}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true, "service": "chemiflex-backend", "env": cfg.Env})
	})

	api := app.Group("/api")
	requireAuth := middleware.RequireAuth(authService)

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", requireAuth, authHandler.Me)

	// The marketing site reads the catalog without a token
	api.Get("/categories", categoryHandler.List)
	api.Get("/products", productHandler.List)

	// ============ PROTECTED ROUTES ============
	api.Post("/categories", requireAuth, categoryHandler.Create)

	api.Post("/products", requireAuth, productHandler.Create)
	api.Put("/products/:id", requireAuth, productHandler.Update)
	api.Delete("/products/:id", requireAuth, middleware.RequireRole(model.RoleAdmin), productHandler.Delete)

	api.Get("/customers", requireAuth, customerHandler.List)
	api.Post("/customers", requireAuth, customerHandler.Create)

	api.Get("/suppliers", requireAuth, supplierHandler.List)
	api.Post("/suppliers", requireAuth, supplierHandler.Create)

	api.Get("/sales", requireAuth, saleHandler.List)
	api.Get("/sales/:id", requireAuth, saleHandler.Get)
	api.Post("/sales", requireAuth, saleHandler.Create)
	api.Put("/sales/:id", requireAuth, saleHandler.Update)
	api.Delete("/sales/:id", requireAuth, saleHandler.Delete)

	return app
}
