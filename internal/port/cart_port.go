package port

import (
	"context"
	"errors"

	"github.com/nikolayk812/fyf-cart/internal/domain"
)

var (
	// ErrKeyNotFound is returned by a KeyValueStore when nothing is stored under a key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrCorruptCart is returned when a persisted cart cannot be decoded.
	ErrCorruptCart = errors.New("persisted cart is corrupt")
)

// CartRepository persists one cart per owner. GetCart returns an empty cart
// when nothing is stored for the owner. SaveCart replaces the whole cart.
type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	SaveCart(ctx context.Context, cart domain.Cart) error
	DeleteCart(ctx context.Context, ownerID string) (bool, error)
}

// KeyValueStore is the raw byte store behind key-value cart repositories.
// Delete of a missing key is not an error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) (bool, error)
}
