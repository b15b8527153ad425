package order

import (
	"context"
	"database/sql"
	"errors"

	"marketstore-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	CreateOrderTx(ctx context.Context, params CheckoutWrite) (*Detail, error)
	ListByUser(ctx context.Context, userID uint) ([]*Order, error)
	GetDetail(ctx context.Context, userID, orderID uint) (*Detail, error)
}

// CheckoutWrite is everything persisted by one checkout: the order row and
// the fields of its payment and delivery companions.
type CheckoutWrite struct {
	UserID          uint
	CartID          uint
	TotalPrice      decimal.Decimal
	DeliveryAddress string
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// CreateOrderTx writes the order, payment and delivery rows in a single
// transaction. If any insert fails nothing is persisted.
func (r *repository) CreateOrderTx(ctx context.Context, params CheckoutWrite) (*Detail, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrderTx"),
		zap.Uint("user_id", params.UserID),
		zap.Uint("cart_id", params.CartID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var d Detail

	// 1. Order snapshot, already paid: payment settles synchronously here.
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, cart_id, status, total_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, cart_id, status, total_price, created_at
	`, params.UserID, params.CartID, StatusPaid, params.TotalPrice).Scan(
		&d.Order.ID, &d.Order.UserID, &d.Order.CartID,
		&d.Order.Status, &d.Order.TotalPrice, &d.Order.CreatedAt,
	)
	if err != nil {
		log.Error("order insert failed", zap.Error(err))
		return nil, err
	}

	// 2. Payment, one per order, amount equal to the order total.
	err = tx.QueryRowContext(ctx, `
		INSERT INTO payments (order_id, method, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, order_id, method, amount, status, transaction_date
	`, d.Order.ID, PaymentMethodDemo, params.TotalPrice, PaymentStatusSuccess).Scan(
		&d.Payment.ID, &d.Payment.OrderID, &d.Payment.Method,
		&d.Payment.Amount, &d.Payment.Status, &d.Payment.TransactionDate,
	)
	if err != nil {
		log.Error("payment insert failed", zap.Error(err))
		return nil, err
	}

	// 3. Delivery with the tracking number derived from the order id.
	err = tx.QueryRowContext(ctx, `
		INSERT INTO deliveries (order_id, tracking_number, delivery_address, delivery_status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, order_id, tracking_number, delivery_address, delivery_status
	`, d.Order.ID, TrackingNumber(d.Order.ID), params.DeliveryAddress, DeliveryStatusProcessing).Scan(
		&d.Delivery.ID, &d.Delivery.OrderID, &d.Delivery.TrackingNumber,
		&d.Delivery.DeliveryAddress, &d.Delivery.Status,
	)
	if err != nil {
		log.Error("delivery insert failed", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("checkout commit failed", zap.Error(err))
		return nil, err
	}

	log.Info("checkout committed",
		zap.Uint("order_id", d.Order.ID),
		zap.String("tracking_number", d.Delivery.TrackingNumber),
	)
	return &d, nil
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListByUser"),
		zap.Uint("user_id", userID),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, cart_id, status, total_price, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	orders := make([]*Order, 0)
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.CartID, &o.Status, &o.TotalPrice, &o.CreatedAt); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}

// GetDetail loads an order with its payment and delivery. The user id is
// part of the lookup key: a foreign order is reported as not found, never as
// forbidden.
func (r *repository) GetDetail(ctx context.Context, userID, orderID uint) (*Detail, error) {
	var d Detail
	err := r.db.QueryRowContext(ctx, `
		SELECT
			o.id, o.user_id, o.cart_id, o.status, o.total_price, o.created_at,
			p.id, p.order_id, p.method, p.amount, p.status, p.transaction_date,
			dl.id, dl.order_id, dl.tracking_number, dl.delivery_address,
			dl.delivery_status, dl.shipped_date, dl.delivery_date
		FROM orders o
		JOIN payments p ON p.order_id = o.id
		JOIN deliveries dl ON dl.order_id = o.id
		WHERE o.id = $1 AND o.user_id = $2
	`, orderID, userID).Scan(
		&d.Order.ID, &d.Order.UserID, &d.Order.CartID,
		&d.Order.Status, &d.Order.TotalPrice, &d.Order.CreatedAt,
		&d.Payment.ID, &d.Payment.OrderID, &d.Payment.Method,
		&d.Payment.Amount, &d.Payment.Status, &d.Payment.TransactionDate,
		&d.Delivery.ID, &d.Delivery.OrderID, &d.Delivery.TrackingNumber,
		&d.Delivery.DeliveryAddress, &d.Delivery.Status,
		&d.Delivery.ShippedDate, &d.Delivery.DeliveryDate,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}
