package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/fyf-cart/internal/db"
	"github.com/nikolayk812/fyf-cart/internal/domain"
	"github.com/nikolayk812/fyf-cart/internal/port"
)

// cartRepository stores one row per cart item in PostgreSQL.
type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.q.GetCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("q.GetCart: %w", err)
	}

	return domain.Cart{
		OwnerID: ownerID,
		Items:   mapGetCartRowsToDomain(rows),
	}, nil
}

// SaveCart replaces all rows of the owner in a single transaction, so readers
// never observe a half-written cart.
func (r *cartRepository) SaveCart(ctx context.Context, cart domain.Cart) error {
	if cart.OwnerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	return r.inTx(ctx, func(q *db.Queries) error {
		if _, err := q.DeleteCart(ctx, cart.OwnerID); err != nil {
			return fmt.Errorf("q.DeleteCart: %w", err)
		}

		for i, item := range cart.Items {
			err := q.InsertItem(ctx, db.InsertItemParams{
				OwnerID:     cart.OwnerID,
				ProductID:   item.ID,
				Name:        item.Name,
				PriceAmount: item.Price,
				Quantity:    int64(item.Quantity),
				Position:    int32(i),
			})
			if err != nil {
				return fmt.Errorf("q.InsertItem[%s]: %w", item.ID, err)
			}
		}

		return nil
	})
}

func (r *cartRepository) DeleteCart(ctx context.Context, ownerID string) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	rowsAffected, err := r.q.DeleteCart(ctx, ownerID)
	if err != nil {
		return false, fmt.Errorf("q.DeleteCart: %w", err)
	}

	return rowsAffected > 0, nil
}

func mapGetCartRowToDomain(row db.GetCartRow) domain.CartItem {
	return domain.CartItem{
		ID:       row.ProductID,
		Name:     row.Name,
		Price:    row.PriceAmount,
		Quantity: int(row.Quantity),
	}
}

func mapGetCartRowsToDomain(rows []db.GetCartRow) []domain.CartItem {
	var items []domain.CartItem

	for _, row := range rows {
		items = append(items, mapGetCartRowToDomain(row))
	}

	return items
}
