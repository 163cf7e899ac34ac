package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/Saby007/go-microservices-demo/internal/server/http/handlers"
	"github.com/Saby007/go-microservices-demo/internal/server/http/middleware"
)

func newEngine(logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	return engine
}

// SetupOrders configures the order service router.
func SetupOrders(facade handlers.OrderFacade, logger *slog.Logger) *gin.Engine {
	engine := newEngine(logger)
	handler := handlers.NewOrderHandler(facade)

	orders := engine.Group("/api/orders")
	orders.GET("", handler.List)
	orders.GET("/health", handler.Health)
	orders.GET("/recent", handler.Recent)
	orders.GET("/summary", handler.Summary)
	orders.GET("/user/:userId", handler.ListByUser)
	orders.GET("/status/:status", handler.ListByStatus)
	orders.GET("/:id", handler.Get)
	orders.POST("", handler.Create)
	orders.PUT("/:id", handler.Update)
	orders.DELETE("/:id", handler.Delete)

	return engine
}

// SetupUsers configures the user service router.
func SetupUsers(facade handlers.UserFacade, logger *slog.Logger) *gin.Engine {
	engine := newEngine(logger)
	handler := handlers.NewUserHandler(facade)

	users := engine.Group("/api/users")
	users.GET("", handler.List)
	users.GET("/health", handler.Health)
	users.GET("/search", handler.Search)
	users.GET("/email/:email", handler.GetByEmail)
	users.GET("/department/:department", handler.ListByDepartment)
	users.GET("/:id", handler.Get)
	users.POST("", handler.Create)
	users.PUT("/:id", handler.Update)
	users.DELETE("/:id", handler.Delete)

	return engine
}
