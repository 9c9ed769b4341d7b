package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"

	"github.com/cvaldebenito/serviapp-backend/internal/cache"
	"github.com/cvaldebenito/serviapp-backend/internal/config"
	"github.com/cvaldebenito/serviapp-backend/internal/handlers"
	"github.com/cvaldebenito/serviapp-backend/internal/middleware"
)

// New wires the full route table. main and the tests share it.
func New(gdb *gorm.DB, rc *cache.Cache, cfg config.Config) *fiber.App {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Content-Length",
		AllowCredentials: true,
	}))

	authH := &handlers.AuthHandler{
		DB:        gdb,
		JWTSecret: cfg.JWTSecret,
		Expires:   cfg.JWTExpiresMin,
	}
	siteH := handlers.NewSiteHandler(gdb, rc)
	userH := handlers.NewUserHandler(gdb)
	providerH := handlers.NewProviderHandler(gdb)
	requestH := handlers.NewRequestHandler(gdb)
	offerH := handlers.NewOfferHandler(gdb)
	contractH := handlers.NewContractHandler(gdb)
	reviewH := handlers.NewReviewHandler(gdb)
	adminH := handlers.NewAdminHandler(gdb)

	// public
	app.Get("/", siteH.GetSiteConfig)
	app.Post("/registro", authH.Register)
	app.Post("/login", authH.Login)

	// protected (JWT)
	protected := app.Group("/",
		middleware.JWTFromHeader(cfg.JWTSecret),
		middleware.AttachJWTLocals(),
	)

	protected.Put("/user/profile", userH.UpdateProfile)
	protected.Get("/my-provider-info", userH.MyProviderInfo)
	protected.Get("/my-employer-info", userH.MyEmployerInfo)
	protected.Get("/user/:id/reviews", reviewH.ListForUser)

	protected.Put("/provider/categories", providerH.SetCategories)

	protected.Get("/find/service-request", requestH.Find)
	protected.Post("/service-request/create", requestH.Create)
	protected.Post("/service-request/:id/offer", offerH.Create)
	protected.Get("/service-request/:id/offer", offerH.ListForRequest)

	protected.Post("/contract/create", contractH.Create)
	protected.Post("/contract/:id/review", reviewH.Create)

	// admin only
	admin := protected.Group("/admin", middleware.RequireRoles("admin"))
	admin.Post("/region/create", adminH.CreateRegion)
	admin.Put("/region/:id", adminH.UpdateRegion)
	admin.Delete("/region/:id", adminH.DeleteRegion)
	admin.Post("/comuna/create", adminH.CreateComuna)
	admin.Put("/comuna/:id", adminH.UpdateComuna)
	admin.Delete("/comuna/:id", adminH.DeleteComuna)
	admin.Post("/category/create", adminH.CreateCategory)
	admin.Put("/category/:id", adminH.UpdateCategory)
	admin.Delete("/category/:id", adminH.DeleteCategory)

	return app
}
