package export

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func TestRepository_Products(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	columns := []string{"id", "name", "category", "supplier", "warehouse", "price", "quantity"}

	t.Run("Unfiltered", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow(1, "Keyboard", "Peripherals", "ACME", "Main", "19.99", 10)
		mock.ExpectQuery("SELECT (.+) FROM products p").
			WillReturnRows(rows)

		result, err := repo.Products(context.Background(), Filter{})
		assert.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Keyboard", result[0].Name)
		assert.Equal(t, "19.99", result[0].Price.String())
	})

	t.Run("CategoryFilter", func(t *testing.T) {
		rows := sqlmock.NewRows(columns).
			AddRow(2, "Mouse", "Peripherals", "ACME", "Main", "5.50", 3)
		mock.ExpectQuery("WHERE p.category_id").
			WithArgs(uint(4)).
			WillReturnRows(rows)

		result, err := repo.Products(context.Background(), Filter{CategoryID: uintPtr(4)})
		assert.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, uint(2), result[0].ID)
	})
}

func TestRepository_Orders_UserScoped(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "email", "status", "total_price", "created_at"}).
		AddRow(42, "buyer@example.com", "paid", "59.97", time.Now())
	mock.ExpectQuery("WHERE o.user_id").
		WithArgs(uint(1)).
		WillReturnRows(rows)

	result, err := repo.Orders(context.Background(), Filter{UserID: uintPtr(1)})
	assert.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "buyer@example.com", result[0].UserEmail)
}

func TestRepository_Suppliers(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	rows := sqlmock.NewRows([]string{"id", "company_name", "inn", "phone", "email", "address"}).
		AddRow(1, "ACME", "7701234567", "+70000000002", "sales@acme.example", "Industrial 5")
	mock.ExpectQuery("FROM suppliers").
		WillReturnRows(rows)

	result, err := repo.Suppliers(context.Background())
	assert.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "ACME", result[0].CompanyName)
}
