package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quicktaste/ordering-api/internal/api/handler"
	"github.com/quicktaste/ordering-api/internal/api/middleware"
	"github.com/quicktaste/ordering-api/internal/core/service"
	mongorepo "github.com/quicktaste/ordering-api/internal/infrastructure/db/mongo"
	redisrepo "github.com/quicktaste/ordering-api/internal/infrastructure/db/redis"
	"github.com/quicktaste/ordering-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens *token.Service, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ordering"))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	categoryRepo := mongorepo.NewCategoryRepository(db)
	productRepo := mongorepo.NewProductRepository(db)
	orderRepo := mongorepo.NewOrderRepository(db)
	catalogCache := redisrepo.NewCache(rdb)

	authService := service.NewAuthService(userRepo, tokens, log)
	userService := service.NewUserService(userRepo, log)
	categoryService := service.NewCategoryService(categoryRepo, log)
	productService := service.NewProductService(productRepo, catalogCache, log)
	orderService := service.NewOrderService(orderRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)

	authRequired := middleware.Auth(tokens)

	// --- Public routes ---
	e.POST("/users/register", authHandler.Register)
	e.POST("/users/login", authHandler.Login)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Account routes ---
	users := e.Group("/users", authRequired)
	users.GET("", userHandler.List)
	users.GET("/me", userHandler.Me)
	users.GET("/me/wallet", userHandler.MyWallet)
	users.PUT("/me/wallet", userHandler.UpdateMyWallet)
	users.GET("/:username", userHandler.Get)
	users.PUT("/:username", userHandler.Update)
	users.DELETE("/:username", userHandler.Delete)
	users.PUT("/:username/wallet", userHandler.UpdateWallet)

	// --- Catalog routes ---
	categories := e.Group("/categories", authRequired)
	categories.GET("", categoryHandler.List)
	categories.GET("/:name", categoryHandler.Get)
	categories.POST("", categoryHandler.Create)
	categories.PUT("/:name", categoryHandler.Update)
	categories.DELETE("/:name", categoryHandler.Delete)

	products := e.Group("/products", authRequired)
	products.GET("", productHandler.List)
	products.GET("/category/:category", productHandler.ListByCategory)
	products.GET("/:name", productHandler.Get)
	products.POST("", productHandler.Create)
	products.PUT("/:name", productHandler.Update)
	products.DELETE("/:name", productHandler.Delete)
	products.PUT("/:name/stock", productHandler.UpdateStock)
	products.PUT("/:name/price", productHandler.UpdatePrice)
	products.PUT("/:name/image", productHandler.UpdateImage)

	// --- Order routes ---
	orders := e.Group("/orders", authRequired)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.POST("", orderHandler.Create)
	orders.PUT("/:id", orderHandler.Update)
	orders.DELETE("/:id", orderHandler.Delete)

	return e
}
