package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/masindes/Rent-Management-app/internal/config"
	"github.com/masindes/Rent-Management-app/internal/middleware"
)

type Server struct {
	router          *gin.Engine
	config          *config.Config
	propertyHandler *PropertyHandler
	tenantHandler   *TenantHandler
	paymentHandler  *PaymentHandler
	logger          *zap.Logger
}

func NewServer(
	cfg *config.Config,
	propertyStore PropertyStore,
	tenantStore TenantStore,
	paymentStore PaymentStore,
	logger *zap.Logger,
) *Server {
	router := gin.New()

	// Middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	// Add Prometheus metrics middleware if enabled
	if cfg.Metrics.Enabled {
		router.Use(middleware.PrometheusMiddleware())
	}

	return &Server{
		router:          router,
		config:          cfg,
		propertyHandler: NewPropertyHandler(propertyStore, logger),
		tenantHandler:   NewTenantHandler(tenantStore, logger),
		paymentHandler:  NewPaymentHandler(paymentStore, logger),
		logger:          logger,
	}
}

func (s *Server) SetupRoutes() {
	// Health check
	s.router.GET("/health", s.healthCheck)

	// Prometheus metrics endpoint (if enabled)
	if s.config.Metrics.Enabled {
		s.router.GET(s.config.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	properties := s.router.Group("/properties")
	{
		properties.GET("", s.propertyHandler.ListProperties)
		properties.POST("", s.propertyHandler.CreateProperty)
		properties.GET("/:id", s.propertyHandler.GetProperty)
		properties.PUT("/:id", s.propertyHandler.UpdateProperty)
		properties.PATCH("/:id", s.propertyHandler.UpdateProperty)
		properties.DELETE("/:id", s.propertyHandler.DeleteProperty)
	}

	tenants := s.router.Group("/tenants")
	{
		tenants.GET("", s.tenantHandler.ListTenants)
		tenants.POST("", s.tenantHandler.CreateTenant)
		tenants.GET("/:id", s.tenantHandler.GetTenant)
		tenants.PUT("/:id", s.tenantHandler.UpdateTenant)
		tenants.PATCH("/:id", s.tenantHandler.UpdateTenant)
		tenants.DELETE("/:id", s.tenantHandler.DeleteTenant)
	}

	payments := s.router.Group("/payments")
	{
		payments.GET("", s.paymentHandler.ListPayments)
		payments.POST("", s.paymentHandler.CreatePayment)
		payments.GET("/:id", s.paymentHandler.GetPayment)
		payments.PUT("/:id", s.paymentHandler.UpdatePayment)
		payments.PATCH("/:id", s.paymentHandler.UpdatePayment)
		payments.DELETE("/:id", s.paymentHandler.DeletePayment)
	}
}

func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"success": true,
		"data": gin.H{
			"status":  "healthy",
			"service": "rent-management-app",
		},
	})
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
