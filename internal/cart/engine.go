// Package cart implements the cart engine: every operation loads the
// persisted cart, transforms it and saves it back. The engine keeps no state
// between calls, so concurrent writers to the same owner follow
// last-write-wins.
package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/fyf-cart/internal/domain"
	"github.com/nikolayk812/fyf-cart/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

type Engine struct {
	repo      port.CartRepository
	observers []Observer
	logger    *zap.Logger
	currency  currency.Unit
}

type Option func(*Engine)

func WithObserver(o Observer) Option {
	return func(e *Engine) {
		e.observers = append(e.observers, o)
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithCurrency sets the currency totals are reported in. Defaults to USD.
func WithCurrency(unit currency.Unit) Option {
	return func(e *Engine) {
		e.currency = unit
	}
}

func New(repo port.CartRepository, opts ...Option) *Engine {
	e := &Engine{
		repo:     repo,
		logger:   zap.NewNop(),
		currency: currency.USD,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Engine) Currency() currency.Unit {
	return e.currency
}

// Load returns the persisted cart of the owner. A missing cart is empty, and
// so is one whose stored value cannot be decoded.
func (e *Engine) Load(ctx context.Context, ownerID string) (domain.Cart, error) {
	cart, err := e.repo.GetCart(ctx, ownerID)
	if errors.Is(err, port.ErrCorruptCart) {
		e.logger.Warn("discarding corrupt cart",
			zap.String("owner_id", ownerID),
			zap.Error(err),
		)
		return domain.Cart{OwnerID: ownerID}, nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("repo.GetCart: %w", err)
	}

	return cart, nil
}

// Save overwrites the persisted cart of cart.OwnerID.
func (e *Engine) Save(ctx context.Context, cart domain.Cart) error {
	if err := e.repo.SaveCart(ctx, cart); err != nil {
		return fmt.Errorf("repo.SaveCart: %w", err)
	}

	return nil
}

// AddItem increments the quantity of an existing item, keeping its stored
// name and price, or appends a new item with quantity 1.
func (e *Engine) AddItem(ctx context.Context, ownerID, id, name string, price decimal.Decimal) (domain.Cart, error) {
	cart, err := e.Load(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, err
	}

	quantity := 1
	if i := cart.IndexOf(id); i >= 0 {
		cart.Items[i].Quantity++
		quantity = cart.Items[i].Quantity
	} else {
		cart.Items = append(cart.Items, domain.CartItem{
			ID:       id,
			Name:     name,
			Price:    price,
			Quantity: 1,
		})
	}

	if err := e.Save(ctx, cart); err != nil {
		return domain.Cart{}, err
	}

	e.logger.Debug("item added",
		zap.String("owner_id", ownerID),
		zap.String("item_id", id),
		zap.Int("quantity", quantity),
	)

	e.emit(ctx, domain.Event{
		Kind:     domain.EventItemAdded,
		OwnerID:  ownerID,
		ItemID:   id,
		Name:     name,
		Quantity: quantity,
		Cart:     cart,
	})

	return cart, nil
}

// UpdateQuantity sets the quantity of an item. Quantities below 1 and unknown
// ids are ignored and leave the stored cart untouched.
func (e *Engine) UpdateQuantity(ctx context.Context, ownerID, id string, quantity int) (domain.Cart, error) {
	cart, err := e.Load(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, err
	}

	if quantity < 1 {
		return cart, nil
	}

	i := cart.IndexOf(id)
	if i < 0 {
		return cart, nil
	}

	cart.Items[i].Quantity = quantity

	if err := e.Save(ctx, cart); err != nil {
		return domain.Cart{}, err
	}

	e.logger.Debug("quantity updated",
		zap.String("owner_id", ownerID),
		zap.String("item_id", id),
		zap.Int("quantity", quantity),
	)

	e.emit(ctx, domain.Event{
		Kind:     domain.EventQuantityUpdated,
		OwnerID:  ownerID,
		ItemID:   id,
		Name:     cart.Items[i].Name,
		Quantity: quantity,
		Cart:     cart,
	})

	return cart, nil
}

// RemoveItem drops the item with the given id. The cart is saved even when
// nothing matched; observers only hear about actual removals.
func (e *Engine) RemoveItem(ctx context.Context, ownerID, id string) (domain.Cart, error) {
	cart, err := e.Load(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, err
	}

	var removed *domain.CartItem
	kept := cart.Items[:0:0]
	for _, item := range cart.Items {
		if item.ID == id {
			removed = &item
			continue
		}
		kept = append(kept, item)
	}
	cart.Items = kept

	if err := e.Save(ctx, cart); err != nil {
		return domain.Cart{}, err
	}

	if removed != nil {
		e.logger.Debug("item removed",
			zap.String("owner_id", ownerID),
			zap.String("item_id", id),
		)

		e.emit(ctx, domain.Event{
			Kind:    domain.EventItemRemoved,
			OwnerID: ownerID,
			ItemID:  id,
			Name:    removed.Name,
			Cart:    cart,
		})
	}

	return cart, nil
}

// Clear erases the persisted cart. Clearing an already empty cart is fine.
func (e *Engine) Clear(ctx context.Context, ownerID string) error {
	deleted, err := e.repo.DeleteCart(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("repo.DeleteCart: %w", err)
	}

	e.logger.Debug("cart cleared",
		zap.String("owner_id", ownerID),
		zap.Bool("deleted", deleted),
	)

	e.emit(ctx, domain.Event{
		Kind:    domain.EventCartCleared,
		OwnerID: ownerID,
		Cart:    domain.Cart{OwnerID: ownerID},
	})

	return nil
}

// Total loads the cart and returns its grand total in the engine currency.
func (e *Engine) Total(ctx context.Context, ownerID string) (domain.Money, error) {
	cart, err := e.Load(ctx, ownerID)
	if err != nil {
		return domain.Money{}, err
	}

	return e.Money(cart.GrandTotal()), nil
}

// Money attaches the engine currency to an amount.
func (e *Engine) Money(amount decimal.Decimal) domain.Money {
	return domain.NewMoney(amount, e.currency)
}

// emit hands every observer its own copy of the cart.
func (e *Engine) emit(ctx context.Context, event domain.Event) {
	for _, o := range e.observers {
		ev := event
		ev.Cart = event.Cart.Clone()
		o.Notify(ctx, ev)
	}
}
