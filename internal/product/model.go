package product

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CategoryID  *uint           `json:"category_id"`
	SupplierID  *uint           `json:"supplier_id"`
	WarehouseID *uint           `json:"warehouse_id"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	UserID      *uint           `json:"user_id"`

	// joined display names, filled on reads
	CategoryName  string `json:"category_name,omitempty"`
	SupplierName  string `json:"supplier_name,omitempty"`
	WarehouseName string `json:"warehouse_name,omitempty"`
}

type CreateProductParams struct {
	Name        string
	Description string
	CategoryID  *uint
	SupplierID  *uint
	WarehouseID *uint
	Price       decimal.Decimal
	Quantity    int
	UserID      uint
}

// ListFilter narrows the product listing. Nil fields are ignored.
type ListFilter struct {
	CategoryID *uint
	SupplierID *uint
}
