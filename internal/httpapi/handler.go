package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/fyf-cart/internal/cart"
	"github.com/nikolayk812/fyf-cart/internal/domain"
)

const checkoutMessage = "Proceeding to checkout!"

type addItemRequest struct {
	ID    string          `json:"id" binding:"required"`
	Name  string          `json:"name" binding:"required"`
	Price json.RawMessage `json:"price" binding:"required"`
}

type updateQuantityRequest struct {
	Quantity json.RawMessage `json:"quantity" binding:"required"`
}

type CartHandler struct {
	engine *cart.Engine
}

func NewCartHandler(engine *cart.Engine) *CartHandler {
	return &CartHandler{engine: engine}
}

func (h *CartHandler) GetCart(c *gin.Context) {
	current, err := h.engine.Load(c.Request.Context(), ownerID(c))
	if err != nil {
		h.internalError(c, err)
		return
	}

	h.respond(c, http.StatusOK, current, "")
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	updated, err := h.engine.AddItem(c.Request.Context(), ownerID(c), req.ID, req.Name, domain.PriceFromJSON(req.Price))
	if err != nil {
		h.internalError(c, err)
		return
	}

	event := domain.Event{Kind: domain.EventItemAdded, ItemID: req.ID, Name: req.Name}
	h.respond(c, http.StatusCreated, updated, event.Message())
}

// UpdateQuantity coerces the quantity like the storefront's number input:
// non-numeric or below-one values leave the cart untouched.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	quantity := int(domain.QuantityFromJSON(req.Quantity))

	updated, err := h.engine.UpdateQuantity(c.Request.Context(), ownerID(c), c.Param("id"), quantity)
	if err != nil {
		h.internalError(c, err)
		return
	}

	h.respond(c, http.StatusOK, updated, "")
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	updated, err := h.engine.RemoveItem(c.Request.Context(), ownerID(c), c.Param("id"))
	if err != nil {
		h.internalError(c, err)
		return
	}

	h.respond(c, http.StatusOK, updated, "")
}

func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.engine.Clear(c.Request.Context(), ownerID(c)); err != nil {
		h.internalError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Checkout is a stub: order processing is not implemented, the current cart
// is echoed back with a notification.
func (h *CartHandler) Checkout(c *gin.Context) {
	current, err := h.engine.Load(c.Request.Context(), ownerID(c))
	if err != nil {
		h.internalError(c, err)
		return
	}

	h.respond(c, http.StatusAccepted, current, checkoutMessage)
}

func (h *CartHandler) respond(c *gin.Context, status int, current domain.Cart, message string) {
	view := newCartView(current, h.engine.Money(current.GrandTotal()))
	c.JSON(status, Response{
		Success: true,
		Data:    view,
		Message: message,
	})
}

func (h *CartHandler) badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, Response{
		Error: &ErrorInfo{Code: ErrCodeBadRequest, Message: err.Error()},
	})
}

func (h *CartHandler) internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, Response{
		Error: &ErrorInfo{Code: ErrCodeInternal, Message: "cart storage is unavailable"},
	})
}
