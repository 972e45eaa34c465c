package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/fyf-cart/internal/cart"
	"go.uber.org/zap"
)

// NewRouter wires the cart API on a fresh gin engine.
func NewRouter(engine *cart.Engine, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	h := NewCartHandler(engine)

	api := r.Group("/api/cart", session())
	api.GET("", h.GetCart)
	api.DELETE("", h.Clear)
	api.POST("/items", h.AddItem)
	api.PATCH("/items/:id", h.UpdateQuantity)
	api.DELETE("/items/:id", h.RemoveItem)
	api.POST("/checkout", h.Checkout)

	return r
}
