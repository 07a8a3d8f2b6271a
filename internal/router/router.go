// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bicyclezen/bicyclezen-backend/internal/config"
	"github.com/bicyclezen/bicyclezen-backend/internal/handlers"
	"github.com/bicyclezen/bicyclezen-backend/internal/middleware"
	"github.com/bicyclezen/bicyclezen-backend/internal/services"
	"github.com/bicyclezen/bicyclezen-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	productService := services.NewProductService(db)
	orderService := services.NewOrderService(db)
	userService := services.NewUserService(db)
	reviewService := services.NewReviewService(db)
	profileService := services.NewProfileService(db)
	paymentService := services.NewPaymentService(db, cfg)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService, paymentService)
	userHandler := handlers.NewUserHandler(userService, cfg.JWT)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	profileHandler := handlers.NewProfileHandler(profileService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Reject request bodies carrying keys no handler knows about
	gin.EnableJsonDecoderDisallowUnknownFields()

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))

	authed := middleware.AuthRequired()
	adminOnly := middleware.AdminRequired(db)

	// Liveness banner
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Bicyclezen is Running On Server...")
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Products: reads are open, writes are admin-gated
	r.GET("/product", productHandler.GetProducts)
	r.GET("/product/:id", productHandler.GetProduct)
	r.POST("/product", authed, adminOnly, productHandler.CreateProduct)
	r.DELETE("/product/:id", authed, adminOnly, productHandler.DeleteProduct)

	// Orders: checkout is anonymous, everything after needs a token
	r.POST("/order", orderHandler.CreateOrder)
	r.GET("/order", authed, orderHandler.GetOrders)
	r.GET("/order/:id", authed, orderHandler.GetOrder)
	r.PATCH("/order/:id", authed, orderHandler.ConfirmPayment)
	r.PUT("/order/:id", authed, orderHandler.UpdateShipping)
	r.DELETE("/order/:id", authed, orderHandler.DeleteOrder)

	// Users
	r.GET("/user", authed, userHandler.GetUsers)
	r.GET("/admin/:email", userHandler.GetAdminStatus)
	r.PUT("/user/admin/:email", authed, adminOnly, userHandler.PromoteToAdmin)
	r.PUT("/user/:email", userHandler.UpsertUser) // open: this is where tokens are minted

	// Reviews
	r.GET("/review", reviewHandler.GetReviews)
	r.POST("/review", reviewHandler.CreateReview)

	// Profiles
	r.PUT("/profile/:email", profileHandler.UpsertProfile)

	// Payments
	r.POST("/create-payment-intent", authed, paymentHandler.CreatePaymentIntent)

	return r
}
