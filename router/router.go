package router

import (
	"net/http"

	"biblioteca-backend/config"
	"biblioteca-backend/handlers"
	"biblioteca-backend/middleware"
	"biblioteca-backend/models"
	"biblioteca-backend/repositories"
	"biblioteca-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// New wires repositories, services and handlers and returns the Gin
// engine with every route registered. Registration and login are the
// only routes outside the auth gate (besides health and metrics).
func New(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	bookRepo := repositories.NewBookRepository(db)
	loanRepo := repositories.NewLoanRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	catalogService := services.NewCatalogService(categoryRepo, bookRepo)
	loanService := services.NewLoanService(loanRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	categoryHandler := handlers.NewCategoryHandler(catalogService)
	bookHandler := handlers.NewBookHandler(catalogService)
	loanHandler := handlers.NewLoanHandler(loanService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	r.POST("/usuarios", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// Protected routes
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware([]byte(cfg.JWTSecret)))

	admin := middleware.RequireRole(models.RoleAdministrator)

	libros := protected.Group("/libros")
	{
		libros.GET("", bookHandler.List)
		libros.GET("/:id", bookHandler.Get)
		libros.POST("", admin, bookHandler.Create)
		libros.PUT("/:id", admin, bookHandler.Update)
		libros.DELETE("/:id", admin, bookHandler.Delete)
	}

	categorias := protected.Group("/categorias")
	{
		categorias.GET("", categoryHandler.List)
		categorias.GET("/:id", categoryHandler.Get)
		categorias.POST("", admin, categoryHandler.Create)
		categorias.PUT("/:id", admin, categoryHandler.Update)
		categorias.DELETE("/:id", admin, categoryHandler.Delete)
	}

	prestamos := protected.Group("/prestamos")
	{
		prestamos.POST("", loanHandler.Create)
		prestamos.GET("", admin, loanHandler.ListAll)
		prestamos.GET("/usuario/:usuario_id", loanHandler.ListByUser)
		prestamos.PUT("/:id/devolver", loanHandler.Return)
		prestamos.DELETE("/:id", admin, loanHandler.Delete)
	}

	return r
}
