package api

import (
	"fina/internal/config"     // Application configuration
	"fina/internal/middleware" // Custom middleware

	"github.com/gin-gonic/gin" // Gin web framework
)

// NewRouter wires middleware and every API route
func NewRouter(cfg *config.Config, categories CategoryHandler, transactions TransactionHandler) *gin.Engine {
	r := gin.New() // Gin router instance without default middleware

	// Request id, access log, panic recovery, CORS, then caller identity
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(cfg.FrontendURL, cfg.BackendURL),
		middleware.Identity(cfg.JWTSecret, cfg.DefaultUserID),
	)

	r.GET("/", Health) // Health check

	v1 := r.Group("/v1")

	// Category routes
	categoryGroup := v1.Group("/categories")
	categoryGroup.POST("", CreateCategoryEndpoint(categories))       // Create category
	categoryGroup.PUT("/:id", UpdateCategoryEndpoint(categories))    // Update category
	categoryGroup.DELETE("/:id", DeleteCategoryEndpoint(categories)) // Delete category
	categoryGroup.GET("/:id", GetCategoryByIDEndpoint(categories))   // Get category
	categoryGroup.GET("", GetAllCategoriesEndpoint(categories))      // List categories

	// Transaction routes
	transactionGroup := v1.Group("/transactions")
	transactionGroup.POST("", CreateTransactionEndpoint(transactions))       // Create transaction
	transactionGroup.PUT("/:id", UpdateTransactionEndpoint(transactions))    // Update transaction
	transactionGroup.DELETE("/:id", DeleteTransactionEndpoint(transactions)) // Delete transaction
	transactionGroup.GET("/:id", GetTransactionByIDEndpoint(transactions))   // Get transaction
	transactionGroup.GET("", GetTransactionsByPeriodEndpoint(transactions))  // List transactions by period

	return r
}
