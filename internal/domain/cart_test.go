package domain_test

import (
	"testing"

	"github.com/nikolayk812/fyf-cart/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/currency"
)

func TestCart_IndexOf(t *testing.T) {
	cart := domain.Cart{Items: []domain.CartItem{item("p1", "1", 1), item("p2", "2", 1)}}

	assert.Equal(t, 0, cart.IndexOf("p1"))
	assert.Equal(t, 1, cart.IndexOf("p2"))
	assert.Equal(t, -1, cart.IndexOf("p3"))
	assert.Equal(t, -1, domain.Cart{}.IndexOf("p1"))
}

func TestCart_ItemCount(t *testing.T) {
	cart := domain.Cart{Items: []domain.CartItem{item("p1", "1", 3), item("p2", "2", 2)}}

	assert.Equal(t, 5, cart.ItemCount())
	assert.Equal(t, 0, domain.Cart{}.ItemCount())
	assert.True(t, domain.Cart{}.IsEmpty())
}

func TestCart_Clone(t *testing.T) {
	cart := domain.Cart{OwnerID: "o1", Items: []domain.CartItem{item("p1", "1", 1)}}

	clone := cart.Clone()
	clone.Items[0].Quantity = 10

	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, "o1", clone.OwnerID)
	assert.Nil(t, domain.Cart{}.Clone().Items)
}

func TestEvent_Message(t *testing.T) {
	tests := []struct {
		name  string
		event domain.Event
		want  string
	}{
		{
			name:  "added",
			event: domain.Event{Kind: domain.EventItemAdded, ItemID: "p1", Name: "Widget"},
			want:  "Widget added to cart!",
		},
		{
			name:  "updated falls back to id",
			event: domain.Event{Kind: domain.EventQuantityUpdated, ItemID: "p1", Quantity: 4},
			want:  "p1 quantity set to 4",
		},
		{
			name:  "removed",
			event: domain.Event{Kind: domain.EventItemRemoved, ItemID: "p1", Name: "Widget"},
			want:  "Widget removed from cart",
		},
		{
			name:  "cleared",
			event: domain.Event{Kind: domain.EventCartCleared},
			want:  "Cart cleared",
		},
		{
			name:  "unknown",
			event: domain.Event{Kind: "other"},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.Message())
		})
	}
}

func TestMoney_String(t *testing.T) {
	m := domain.NewMoney(decimal.RequireFromString("19.9"), currency.USD)

	assert.Equal(t, "USD 19.90", m.String())
}
