package export

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fixed column sets of the exportable datasets. JSON field order follows the
// CSV header order.

type ProductRow struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Supplier  string          `json:"supplier"`
	Warehouse string          `json:"warehouse"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

type OrderRow struct {
	ID         uint            `json:"id"`
	UserEmail  string          `json:"user_email"`
	Status     string          `json:"status"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

type SupplierRow struct {
	ID          uint   `json:"id"`
	CompanyName string `json:"company_name"`
	INN         string `json:"inn"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

// Filter narrows an export. Nil fields leave the dataset unfiltered; an
// unparseable query value is treated as absent.
type Filter struct {
	CategoryID *uint
	SupplierID *uint
	UserID     *uint
}
