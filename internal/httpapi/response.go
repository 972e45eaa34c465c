package httpapi

import (
	"github.com/nikolayk812/fyf-cart/internal/domain"
)

// Error codes
const (
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeInternal   = "INTERNAL"
)

// Response is the envelope of every API response
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Message string     `json:"message,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CartView struct {
	Items      []ItemView `json:"items"`
	ItemCount  int        `json:"item_count"`
	GrandTotal string     `json:"grand_total"`
	Currency   string     `json:"currency"`
}

type ItemView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
	Subtotal string `json:"subtotal"`
}

func newCartView(cart domain.Cart, total domain.Money) CartView {
	items := make([]ItemView, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, ItemView{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price.StringFixed(2),
			Quantity: item.Quantity,
			Subtotal: domain.GrandTotal([]domain.CartItem{item}).StringFixed(2),
		})
	}

	return CartView{
		Items:      items,
		ItemCount:  cart.ItemCount(),
		GrandTotal: total.Amount.StringFixed(2),
		Currency:   total.Currency.String(),
	}
}
