package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/fyf-cart/internal/domain"
	"github.com/nikolayk812/fyf-cart/internal/port"
	"github.com/nikolayk812/fyf-cart/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

type cartRepositorySuite struct {
	suite.Suite

	container *postgres.PostgresContainer
	repo      port.CartRepository
	pool      *pgxpool.Pool
}

// entry point to run the tests in the suite
func TestCartRepositorySuite(t *testing.T) {
	suite.Run(t, new(cartRepositorySuite))
}

// before all tests in the suite
func (suite *cartRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	var (
		connStr string
		err     error
	)

	suite.container, connStr, err = startPostgres(ctx)
	suite.Require().NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.Require().NoError(err)

	suite.repo = repository.NewCart(suite.pool)
}

// after all tests in the suite
func (suite *cartRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
	if suite.container != nil {
		suite.NoError(testcontainers.TerminateContainer(suite.container))
	}
}

func (suite *cartRepositorySuite) TestSaveCart() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		cart      domain.Cart
		wantError string
	}{
		{
			name: "save cart with one item: ok",
			cart: randomCart(1),
		},
		{
			name: "save cart with many items keeps order: ok",
			cart: randomCart(5),
		},
		{
			name: "save empty cart: ok",
			cart: randomCart(0),
		},
		{
			name: "save item with zero price: ok",
			cart: domain.Cart{
				OwnerID: gofakeit.UUID(),
				Items: []domain.CartItem{{
					ID:       gofakeit.UUID(),
					Name:     gofakeit.ProductName(),
					Price:    decimal.Zero,
					Quantity: 1,
				}},
			},
		},
		{
			name: "save item with quantity beyond int32: ok",
			cart: domain.Cart{
				OwnerID: gofakeit.UUID(),
				Items: []domain.CartItem{{
					ID:       gofakeit.UUID(),
					Name:     gofakeit.ProductName(),
					Price:    decimal.RequireFromString("0.01"),
					Quantity: 3_000_000_000,
				}},
			},
		},
		{
			name:      "save cart with empty owner ID: error",
			cart:      domain.Cart{Items: []domain.CartItem{randomCartItem()}},
			wantError: "ownerID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			err := suite.repo.SaveCart(ctx, tt.cart)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			cart, err := suite.repo.GetCart(ctx, tt.cart.OwnerID)
			require.NoError(t, err)

			assertCart(t, tt.cart, cart)
		})
	}
}

func (suite *cartRepositorySuite) TestSaveCart_Replaces() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	first := randomCart(3)
	require.NoError(t, suite.repo.SaveCart(ctx, first))

	second := domain.Cart{
		OwnerID: first.OwnerID,
		Items:   []domain.CartItem{first.Items[2], randomCartItem()},
	}
	second.Items[0].Quantity = 7
	require.NoError(t, suite.repo.SaveCart(ctx, second))

	cart, err := suite.repo.GetCart(ctx, first.OwnerID)
	require.NoError(t, err)
	assertCart(t, second, cart)
}

func (suite *cartRepositorySuite) TestSaveCart_DuplicateItemRollsBack() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	original := randomCart(2)
	require.NoError(t, suite.repo.SaveCart(ctx, original))

	item := randomCartItem()
	broken := domain.Cart{
		OwnerID: original.OwnerID,
		Items:   []domain.CartItem{item, item},
	}
	require.Error(t, suite.repo.SaveCart(ctx, broken))

	cart, err := suite.repo.GetCart(ctx, original.OwnerID)
	require.NoError(t, err)
	assertCart(t, original, cart)
}

func (suite *cartRepositorySuite) TestDeleteCart() {
	defer suite.deleteAll()

	tests := []struct {
		name        string
		ownerID     string
		setup       domain.Cart
		wantDeleted bool
		wantError   string
	}{
		{
			name:        "delete existing cart: ok",
			ownerID:     "owner-1",
			setup:       domain.Cart{OwnerID: "owner-1", Items: []domain.CartItem{randomCartItem()}},
			wantDeleted: true,
		},
		{
			name:        "delete missing cart: not found",
			ownerID:     gofakeit.UUID(),
			wantDeleted: false,
		},
		{
			name:      "delete with empty owner ID: error",
			ownerID:   "",
			wantError: "ownerID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			if tt.setup.OwnerID != "" {
				require.NoError(t, suite.repo.SaveCart(ctx, tt.setup))
			}

			deleted, err := suite.repo.DeleteCart(ctx, tt.ownerID)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDeleted, deleted)

			cart, err := suite.repo.GetCart(ctx, tt.ownerID)
			require.NoError(t, err)
			assert.Empty(t, cart.Items)
		})
	}
}

func (suite *cartRepositorySuite) TestGetCart() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		ownerID   string
		wantError string
	}{
		{
			name:    "get missing cart: empty",
			ownerID: gofakeit.UUID(),
		},
		{
			name:      "get cart with empty owner ID: error",
			ownerID:   "",
			wantError: "ownerID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			cart, err := suite.repo.GetCart(ctx, tt.ownerID)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.ownerID, cart.OwnerID)
			assert.Empty(t, cart.Items)
		})
	}
}

func (suite *cartRepositorySuite) TestNewCartWithTx() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	cart := randomCart(2)

	tx, err := suite.pool.Begin(ctx)
	require.NoError(t, err)

	txRepo := repository.NewCartWithTx(tx)
	require.NoError(t, txRepo.SaveCart(ctx, cart))

	inTx, err := txRepo.GetCart(ctx, cart.OwnerID)
	require.NoError(t, err)
	assertCart(t, cart, inTx)

	require.NoError(t, tx.Rollback(ctx))

	outside, err := suite.repo.GetCart(ctx, cart.OwnerID)
	require.NoError(t, err)
	assert.Empty(t, outside.Items)
}

func (suite *cartRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE cart_items CASCADE")
	suite.NoError(err)
}
