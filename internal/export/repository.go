package export

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"marketstore-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Products(ctx context.Context, filter Filter) ([]ProductRow, error)
	Orders(ctx context.Context, filter Filter) ([]OrderRow, error)
	Suppliers(ctx context.Context) ([]SupplierRow, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Products(ctx context.Context, filter Filter) ([]ProductRow, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Products"),
	)
	start := time.Now()

	query := `
	SELECT
		p.id,
		p.name,
		COALESCE(c.name, ''),
		COALESCE(s.company_name, ''),
		COALESCE(w.name, ''),
		p.price,
		p.quantity
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.id
	LEFT JOIN suppliers s ON p.supplier_id = s.id
	LEFT JOIN warehouses w ON p.warehouse_id = w.id
	`

	where := []string{}
	args := []any{}

	if filter.CategoryID != nil {
		where = append(where, fmt.Sprintf("p.category_id = $%d", len(args)+1))
		args = append(args, *filter.CategoryID)
	}
	if filter.SupplierID != nil {
		where = append(where, fmt.Sprintf("p.supplier_id = $%d", len(args)+1))
		args = append(args, *filter.SupplierID)
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY p.id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, err
	}
	defer rows.Close()

	result := make([]ProductRow, 0)
	for rows.Next() {
		var row ProductRow
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Category, &row.Supplier,
			&row.Warehouse, &row.Price, &row.Quantity,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Info("export query success", zap.Int("rows", len(result)), zap.Duration("duration", time.Since(start)))
	return result, nil
}

func (r *repository) Orders(ctx context.Context, filter Filter) ([]OrderRow, error) {
	query := `
	SELECT o.id, COALESCE(u.email, ''), o.status, o.total_price, o.created_at
	FROM orders o
	LEFT JOIN users u ON o.user_id = u.id
	`

	args := []any{}
	if filter.UserID != nil {
		query += " WHERE o.user_id = $1"
		args = append(args, *filter.UserID)
	}
	query += " ORDER BY o.id ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]OrderRow, 0)
	for rows.Next() {
		var row OrderRow
		if err := rows.Scan(&row.ID, &row.UserEmail, &row.Status, &row.TotalPrice, &row.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *repository) Suppliers(ctx context.Context) ([]SupplierRow, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, company_name, inn, phone, email, address
		FROM suppliers
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]SupplierRow, 0)
	for rows.Next() {
		var row SupplierRow
		if err := rows.Scan(&row.ID, &row.CompanyName, &row.INN, &row.Phone, &row.Email, &row.Address); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
