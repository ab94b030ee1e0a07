package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ivolkov/salesoffice/internal/database"
	"github.com/ivolkov/salesoffice/internal/datagen"
	"github.com/ivolkov/salesoffice/internal/repository"
	"go.uber.org/zap"
)

type Server struct {
	router    *gin.Engine
	db        *database.DB
	products  *repository.ProductRepository
	customers *repository.CustomerRepository
	purchases *repository.PurchaseRepository
	gen       *datagen.Generator
	logger    *zap.Logger
}

// NewServer creates a new server instance
func NewServer(db *database.DB, logger *zap.Logger) *Server {
	router := gin.Default()

	server := &Server{
		router:    router,
		db:        db,
		products:  repository.NewProductRepository(db),
		customers: repository.NewCustomerRepository(db),
		purchases: repository.NewPurchaseRepository(db),
		gen:       datagen.NewRandom(),
		logger:    logger,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
	}

	products := s.router.Group("/products")
	{
		products.POST("/", s.createProduct)
		products.GET("/", s.listProducts)
		products.DELETE("/", s.deleteAllProducts)
		products.GET("/filter/", s.filterProducts)
		products.POST("/generate/", s.generateProducts)
		products.GET("/:id", s.getProduct)
		products.PUT("/:id", s.updateProduct)
		products.DELETE("/:id", s.deleteProduct)
	}

	customers := s.router.Group("/customers")
	{
		customers.POST("/", s.createCustomer)
		customers.GET("/", s.listCustomers)
		customers.DELETE("/", s.deleteAllCustomers)
		customers.GET("/sorted/", s.sortedCustomers)
		customers.POST("/generate/", s.generateCustomers)
		customers.GET("/:id", s.getCustomer)
		customers.PUT("/:id", s.updateCustomer)
		customers.DELETE("/:id", s.deleteCustomer)
	}

	purchases := s.router.Group("/purchases")
	{
		purchases.POST("/", s.createPurchase)
		purchases.GET("/", s.listPurchases)
		purchases.DELETE("/", s.deleteAllPurchases)
		purchases.GET("/details/", s.purchaseDetails)
		purchases.GET("/group-by-product/", s.groupByProduct)
		purchases.PUT("/update-price/:id", s.updatePurchasePrice)
		purchases.POST("/generate/", s.generatePurchases)
		purchases.GET("/:id", s.getPurchase)
		purchases.PUT("/:id", s.updatePurchase)
		purchases.DELETE("/:id", s.deletePurchase)
	}

	analytics := s.router.Group("/analytics")
	{
		analytics.GET("/customer-purchases/:id", s.customerPurchases)
		analytics.GET("/product-sales/:id", s.productSales)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	// Check database health
	if err := s.db.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "salesoffice",
		"version": "0.1.0",
	})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
