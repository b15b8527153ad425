package supplier

import (
	"context"
	"errors"

	"marketstore-be/internal/logger"

	"go.uber.org/zap"
)

// Service defines the business logic for supplier records.
type Service interface {
	Create(ctx context.Context, s Supplier) (*Supplier, error)
	GetByID(ctx context.Context, id uint) (*Supplier, error)
	List(ctx context.Context) ([]*Supplier, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, in Supplier) (*Supplier, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
		zap.String("company_name", in.CompanyName),
	)

	if in.CompanyName == "" {
		return nil, errors.New("company name cannot be empty")
	}

	created, err := s.repo.Create(ctx, in)
	if err != nil {
		log.Error("failed to create supplier", zap.Error(err))
		return nil, err
	}

	log.Info("supplier created", zap.Uint("supplier_id", created.ID))
	return created, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*Supplier, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Supplier, error) {
	return s.repo.List(ctx)
}
