package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type CartItem struct {
	ID        uint `json:"id"`
	CartID    uint `json:"cart_id"`
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// Item is a cart line joined with its product, as shown on the cart page.
type Item struct {
	ID          uint            `json:"id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// View is the cart page payload: lines plus the exact decimal total.
type View struct {
	Cart  Cart            `json:"cart"`
	Items []Item          `json:"items"`
	Total decimal.Decimal `json:"total"`
}
