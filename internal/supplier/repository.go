package supplier

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"marketstore-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, s Supplier) (*Supplier, error)
	GetByID(ctx context.Context, id uint) (*Supplier, error)
	List(ctx context.Context) ([]*Supplier, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s Supplier) (*Supplier, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("company_name", s.CompanyName),
	)

	query := `
		INSERT INTO suppliers (company_name, inn, phone, email, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, company_name, inn, phone, email, address
	`

	var out Supplier
	err := r.db.QueryRowContext(ctx, query,
		s.CompanyName, s.INN, s.Phone, s.Email, s.Address,
	).Scan(&out.ID, &out.CompanyName, &out.INN, &out.Phone, &out.Email, &out.Address)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == "23505" {
			return nil, ErrCompanyExists
		}
		log.Error("create supplier failed", zap.Error(err))
		return nil, fmt.Errorf("create supplier failed: %w", err)
	}

	log.Info("supplier created", zap.Uint("supplier_id", out.ID))
	return &out, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Supplier, error) {
	var s Supplier
	err := r.db.QueryRowContext(ctx, `
		SELECT id, company_name, inn, phone, email, address
		FROM suppliers WHERE id = $1
	`, id).Scan(&s.ID, &s.CompanyName, &s.INN, &s.Phone, &s.Email, &s.Address)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSupplierNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) List(ctx context.Context) ([]*Supplier, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, company_name, inn, phone, email, address
		FROM suppliers
		ORDER BY company_name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []*Supplier
	for rows.Next() {
		var s Supplier
		if err := rows.Scan(&s.ID, &s.CompanyName, &s.INN, &s.Phone, &s.Email, &s.Address); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, &s)
	}
	return suppliers, rows.Err()
}
