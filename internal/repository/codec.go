package repository

import (
	"encoding/json"
	"fmt"

	"github.com/nikolayk812/fyf-cart/internal/domain"
	"github.com/shopspring/decimal"
)

// storedItem is the persisted shape of a cart item: a flat record with a
// numeric price, the same layout the storefront keeps in browser storage.
type storedItem struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Price    json.Number `json:"price"`
	Quantity int         `json:"quantity"`
}

func encodeItems(items []domain.CartItem) ([]byte, error) {
	stored := make([]storedItem, 0, len(items))
	for _, item := range items {
		stored = append(stored, storedItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    json.Number(item.Price.String()),
			Quantity: item.Quantity,
		})
	}

	return json.Marshal(stored)
}

func decodeItems(raw []byte) ([]domain.CartItem, error) {
	var stored []storedItem
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	var items []domain.CartItem
	for i, s := range stored {
		price := decimal.Zero
		if s.Price != "" {
			var err error
			price, err = decimal.NewFromString(s.Price.String())
			if err != nil {
				return nil, fmt.Errorf("item[%d] price[%s] is not valid: %w", i, s.Price, err)
			}
		}

		items = append(items, domain.CartItem{
			ID:       s.ID,
			Name:     s.Name,
			Price:    price,
			Quantity: s.Quantity,
		})
	}

	return items, nil
}
