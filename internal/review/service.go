package review

import (
	"context"

	"marketstore-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service defines the business logic for product reviews.
type Service interface {
	Submit(ctx context.Context, params SubmitParams) (*Review, error)
	ListByProduct(ctx context.Context, productID uint) ([]*Review, error)
	AverageRating(ctx context.Context, productID uint) (decimal.Decimal, bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Submit(ctx context.Context, params SubmitParams) (*Review, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Submit"),
		zap.Uint("product_id", params.ProductID),
		zap.Uint("user_id", params.UserID),
		zap.Int("rating", params.Rating),
	)

	if params.ProductID == 0 {
		return nil, ErrProductRequired
	}
	if params.Rating < 1 || params.Rating > 5 {
		log.Warn("rating out of range")
		return nil, ErrRatingOutOfRange
	}

	rev, err := s.repo.Create(ctx, params)
	if err != nil {
		log.Error("failed to submit review", zap.Error(err))
		return nil, err
	}

	log.Info("review submitted", zap.Uint("review_id", rev.ID))
	return rev, nil
}

func (s *service) ListByProduct(ctx context.Context, productID uint) ([]*Review, error) {
	return s.repo.ListByProduct(ctx, productID)
}

func (s *service) AverageRating(ctx context.Context, productID uint) (decimal.Decimal, bool, error) {
	return s.repo.AverageRating(ctx, productID)
}
