package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"marketstore-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, params CreateProductParams) (*Product, error)
	GetByID(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context, filter ListFilter) ([]*Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, params CreateProductParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("product_name", params.Name),
		zap.Uint("user_id", params.UserID),
	)

	query := `
	INSERT INTO products (
		name, description, category_id, supplier_id,
		warehouse_id, price, quantity, user_id
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id, name, description, category_id, supplier_id,
		warehouse_id, price, quantity, user_id
	`

	var p Product
	err := r.db.QueryRowContext(ctx, query,
		params.Name, params.Description, params.CategoryID, params.SupplierID,
		params.WarehouseID, params.Price, params.Quantity, params.UserID,
	).Scan(
		&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.SupplierID,
		&p.WarehouseID, &p.Price, &p.Quantity, &p.UserID,
	)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	log.Info("product created", zap.Uint("product_id", p.ID))
	return &p, nil
}

const productSelect = `
	SELECT
		p.id,
		p.name,
		p.description,
		p.category_id,
		p.supplier_id,
		p.warehouse_id,
		p.price,
		p.quantity,
		p.user_id,
		COALESCE(c.name, ''),
		COALESCE(s.company_name, ''),
		COALESCE(w.name, '')
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.id
	LEFT JOIN suppliers s ON p.supplier_id = s.id
	LEFT JOIN warehouses w ON p.warehouse_id = w.id
`

func scanProduct(row interface{ Scan(...any) error }) (*Product, error) {
	var p Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.SupplierID,
		&p.WarehouseID, &p.Price, &p.Quantity, &p.UserID,
		&p.CategoryName, &p.SupplierName, &p.WarehouseName,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, productSelect+` WHERE p.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
	)

	start := time.Now()

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

	query := productSelect
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY p.name ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, err
	}
	defer rows.Close()

	products := make([]*Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Info("query success", zap.Int("rows", len(products)), zap.Duration("duration", time.Since(start)))
	return products, nil
}
