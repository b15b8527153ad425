package product

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productColumns() []string {
	return []string{
		"id", "name", "description", "category_id", "supplier_id",
		"warehouse_id", "price", "quantity", "user_id",
		"category_name", "supplier_name", "warehouse_name",
	}
}

func uintPtr(v uint) *uint { return &v }

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows(productColumns()).
			AddRow(11, "Keyboard", "mechanical", 4, 2, 1, "19.99", 10, 3, "Peripherals", "ACME", "Main")
		mock.ExpectQuery("SELECT (.+) FROM products p").
			WithArgs(uint(11)).
			WillReturnRows(rows)

		p, err := repo.GetByID(context.Background(), 11)
		assert.NoError(t, err)
		assert.Equal(t, "Keyboard", p.Name)
		assert.Equal(t, "19.99", p.Price.String())
		assert.Equal(t, "Peripherals", p.CategoryName)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM products p").
			WithArgs(uint(99)).
			WillReturnRows(sqlmock.NewRows(productColumns()))

		_, err := repo.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	t.Run("Unfiltered", func(t *testing.T) {
		rows := sqlmock.NewRows(productColumns()).
			AddRow(11, "Keyboard", "", nil, nil, nil, "19.99", 10, nil, "", "", "").
			AddRow(12, "Mouse", "", nil, nil, nil, "5.50", 3, nil, "", "", "")
		mock.ExpectQuery("SELECT (.+) FROM products p").
			WillReturnRows(rows)

		products, err := repo.List(context.Background(), ListFilter{})
		assert.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("FilteredByCategoryAndSupplier", func(t *testing.T) {
		rows := sqlmock.NewRows(productColumns()).
			AddRow(11, "Keyboard", "", 4, 2, nil, "19.99", 10, nil, "Peripherals", "ACME", "")
		mock.ExpectQuery(`WHERE p.category_id = \$1 AND p.supplier_id = \$2`).
			WithArgs(uint(4), uint(2)).
			WillReturnRows(rows)

		products, err := repo.List(context.Background(), ListFilter{
			CategoryID: uintPtr(4),
			SupplierID: uintPtr(2),
		})
		assert.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, uint(11), products[0].ID)
	})
}
