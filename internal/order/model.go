package order

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusCreated OrderStatus = "created"
	StatusPaid    OrderStatus = "paid"
)

const (
	PaymentStatusSuccess = "success"
	PaymentMethodDemo    = "simulated"

	DeliveryStatusProcessing = "processing"

	// UnspecifiedAddress is stored when the buyer's profile has no address.
	UnspecifiedAddress = "unspecified"
)

type Order struct {
	ID         uint            `json:"id"`
	UserID     uint            `json:"user_id"`
	CartID     *uint           `json:"cart_id"`
	Status     OrderStatus     `json:"status"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

type Payment struct {
	ID              uint            `json:"id"`
	OrderID         uint            `json:"order_id"`
	Method          string          `json:"method"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	TransactionDate time.Time       `json:"transaction_date"`
}

type Delivery struct {
	ID              uint       `json:"id"`
	OrderID         uint       `json:"order_id"`
	TrackingNumber  string     `json:"tracking_number"`
	DeliveryAddress string     `json:"delivery_address"`
	Status          string     `json:"status"`
	ShippedDate     *time.Time `json:"shipped_date"`
	DeliveryDate    *time.Time `json:"delivery_date"`
}

// Detail is an order with its payment and delivery loaded as one unit.
type Detail struct {
	Order    Order    `json:"order"`
	Payment  Payment  `json:"payment"`
	Delivery Delivery `json:"delivery"`
}

// TrackingNumber derives the shipment tracking id from the order id. The
// same order always yields the same tracking number.
func TrackingNumber(orderID uint) string {
	return fmt.Sprintf("TRK-%010d", orderID)
}
