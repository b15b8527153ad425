package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"marketstore-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	ListCategories(ctx context.Context) ([]*Category, error)
	AddCategory(ctx context.Context, name, description string) (*Category, error)
	ListWarehouses(ctx context.Context) ([]*Warehouse, error)
	AddWarehouse(ctx context.Context, name, address string) (*Warehouse, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListCategories(ctx context.Context) ([]*Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description
		FROM categories
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (r *repository) AddCategory(ctx context.Context, name, description string) (*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "AddCategory"),
		zap.String("category_name", name),
	)

	if name == "" {
		return nil, errors.New("category name cannot be empty")
	}

	var c Category
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO categories (name, description)
		VALUES ($1, $2)
		RETURNING id, name, description
	`, name, description).Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		log.Error("add category failed", zap.Error(err))
		return nil, fmt.Errorf("add category failed: %w", err)
	}

	log.Info("category created", zap.Uint("category_id", c.ID))
	return &c, nil
}

func (r *repository) ListWarehouses(ctx context.Context) ([]*Warehouse, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, address
		FROM warehouses
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var warehouses []*Warehouse
	for rows.Next() {
		var w Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Address); err != nil {
			return nil, err
		}
		warehouses = append(warehouses, &w)
	}
	return warehouses, rows.Err()
}

func (r *repository) AddWarehouse(ctx context.Context, name, address string) (*Warehouse, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "AddWarehouse"),
		zap.String("warehouse_name", name),
	)

	if name == "" {
		return nil, errors.New("warehouse name cannot be empty")
	}

	var w Warehouse
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO warehouses (name, address)
		VALUES ($1, $2)
		RETURNING id, name, address
	`, name, address).Scan(&w.ID, &w.Name, &w.Address)
	if err != nil {
		log.Error("add warehouse failed", zap.Error(err))
		return nil, fmt.Errorf("add warehouse failed: %w", err)
	}

	log.Info("warehouse created", zap.Uint("warehouse_id", w.ID))
	return &w, nil
}
