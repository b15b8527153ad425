package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetOrCreateCart(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO carts").
			WithArgs(uint(1)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		rows := sqlmock.NewRows([]string{"id", "user_id", "created_at"}).
			AddRow(7, 1, time.Now())
		mock.ExpectQuery("SELECT id, user_id, created_at").
			WithArgs(uint(1)).
			WillReturnRows(rows)

		c, err := repo.GetOrCreateCart(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, uint(7), c.ID)
		assert.Equal(t, uint(1), c.UserID)
	})

	t.Run("InsertError", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO carts").
			WillReturnError(errors.New("db error"))

		_, err := repo.GetOrCreateCart(context.Background(), 1)
		assert.ErrorIs(t, err, ErrFailedGetCart)
	})
}

func TestRepository_UpsertItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("MergedQuantity", func(t *testing.T) {
		// a second add of the same product returns the summed line
		rows := sqlmock.NewRows([]string{"id", "cart_id", "product_id", "quantity"}).
			AddRow(3, 7, 11, 2)

		mock.ExpectQuery("INSERT INTO cart_items").
			WithArgs(uint(7), uint(11), 1).
			WillReturnRows(rows)

		item, err := repo.UpsertItem(context.Background(), 7, 11, 1)
		assert.NoError(t, err)
		assert.Equal(t, 2, item.Quantity)
		assert.Equal(t, uint(3), item.ID)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO cart_items").
			WillReturnError(errors.New("db error"))

		_, err := repo.UpsertItem(context.Background(), 7, 11, 1)
		assert.ErrorIs(t, err, ErrFailedUpsertItem)
	})
}

func TestRepository_UpdateItemQuantity(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE cart_items").
			WithArgs(5, uint(3), uint(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateItemQuantity(context.Background(), 7, 3, 5)
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE cart_items").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateItemQuantity(context.Background(), 7, 99, 5)
		assert.ErrorIs(t, err, ErrCartItemNotFound)
	})
}

func TestRepository_RemoveItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM cart_items").
			WithArgs(uint(3), uint(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.RemoveItem(context.Background(), 7, 3)
		assert.NoError(t, err)
	})

	t.Run("ForeignCartItem", func(t *testing.T) {
		// item exists but belongs to another cart: zero rows touched
		mock.ExpectExec("DELETE FROM cart_items").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.RemoveItem(context.Background(), 7, 3)
		assert.ErrorIs(t, err, ErrCartItemNotFound)
	})
}

func TestRepository_GetItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "product_id", "name", "price", "quantity"}).
		AddRow(1, 11, "Keyboard", "19.99", 3).
		AddRow(2, 12, "Mouse", "5.50", 1)

	mock.ExpectQuery("SELECT ci.id, ci.product_id").
		WithArgs(uint(7)).
		WillReturnRows(rows)

	items, err := repo.GetItems(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "59.97", items[0].Subtotal.String())
	assert.Equal(t, "5.5", items[1].Subtotal.String())
}
