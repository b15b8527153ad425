package export

import (
	"context"

	"marketstore-be/internal/logger"

	"go.uber.org/zap"
)

// Service produces read-only projections of catalog, order and supplier
// data. Nothing here mutates state.
type Service interface {
	Products(ctx context.Context, filter Filter) ([]ProductRow, error)
	Orders(ctx context.Context, filter Filter) ([]OrderRow, error)
	Suppliers(ctx context.Context) ([]SupplierRow, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Products(ctx context.Context, filter Filter) ([]ProductRow, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Products"),
	)

	rows, err := s.repo.Products(ctx, filter)
	if err != nil {
		log.Error("product export failed", zap.Error(err))
		return nil, err
	}
	return rows, nil
}

func (s *service) Orders(ctx context.Context, filter Filter) ([]OrderRow, error) {
	return s.repo.Orders(ctx, filter)
}

func (s *service) Suppliers(ctx context.Context) ([]SupplierRow, error) {
	return s.repo.Suppliers(ctx)
}
