package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/fyf-cart/internal/domain"
	"github.com/nikolayk812/fyf-cart/internal/port"
)

// keyValueCartRepository keeps each cart as one JSON array under StoreKey(ownerID).
type keyValueCartRepository struct {
	store port.KeyValueStore
}

func NewKeyValueCart(store port.KeyValueStore) port.CartRepository {
	return &keyValueCartRepository{store: store}
}

// StoreKey scopes the fixed cart key to one owner.
func StoreKey(ownerID string) string {
	return domain.StoreKey + ":" + ownerID
}

func (r *keyValueCartRepository) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	empty := domain.Cart{OwnerID: ownerID}

	raw, err := r.store.Get(ctx, StoreKey(ownerID))
	if errors.Is(err, port.ErrKeyNotFound) {
		return empty, nil
	}
	if err != nil {
		return empty, fmt.Errorf("store.Get: %w", err)
	}

	items, err := decodeItems(raw)
	if err != nil {
		return empty, fmt.Errorf("%w: %w", port.ErrCorruptCart, err)
	}

	return domain.Cart{
		OwnerID: ownerID,
		Items:   items,
	}, nil
}

func (r *keyValueCartRepository) SaveCart(ctx context.Context, cart domain.Cart) error {
	if cart.OwnerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	raw, err := encodeItems(cart.Items)
	if err != nil {
		return fmt.Errorf("encodeItems: %w", err)
	}

	if err := r.store.Set(ctx, StoreKey(cart.OwnerID), raw); err != nil {
		return fmt.Errorf("store.Set: %w", err)
	}

	return nil
}

func (r *keyValueCartRepository) DeleteCart(ctx context.Context, ownerID string) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	deleted, err := r.store.Delete(ctx, StoreKey(ownerID))
	if err != nil {
		return false, fmt.Errorf("store.Delete: %w", err)
	}

	return deleted, nil
}
