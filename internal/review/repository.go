package review

import (
	"context"
	"database/sql"

	"marketstore-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, params SubmitParams) (*Review, error)
	ListByProduct(ctx context.Context, productID uint) ([]*Review, error)
	AverageRating(ctx context.Context, productID uint) (decimal.Decimal, bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, params SubmitParams) (*Review, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.Uint("product_id", params.ProductID),
		zap.Uint("user_id", params.UserID),
	)

	query := `
	INSERT INTO reviews (product_id, user_id, rating, text)
	VALUES ($1, $2, $3, $4)
	RETURNING id, product_id, user_id, rating, text, created_at
	`

	var rev Review
	err := r.db.QueryRowContext(ctx, query,
		params.ProductID, params.UserID, params.Rating, params.Text,
	).Scan(&rev.ID, &rev.ProductID, &rev.UserID, &rev.Rating, &rev.Text, &rev.CreatedAt)
	if err != nil {
		log.Error("failed to create review", zap.Error(err))
		return nil, err
	}

	log.Info("review created", zap.Uint("review_id", rev.ID))
	return &rev, nil
}

func (r *repository) ListByProduct(ctx context.Context, productID uint) ([]*Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.id, r.product_id, r.user_id, COALESCE(u.username, ''), r.rating, r.text, r.created_at
		FROM reviews r
		LEFT JOIN users u ON r.user_id = u.id
		WHERE r.product_id = $1
		ORDER BY r.created_at DESC
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]*Review, 0)
	for rows.Next() {
		var rev Review
		if err := rows.Scan(
			&rev.ID, &rev.ProductID, &rev.UserID, &rev.Username,
			&rev.Rating, &rev.Text, &rev.CreatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, &rev)
	}
	return reviews, rows.Err()
}

// AverageRating returns the mean rating for a product. The second return is
// false when the product has no reviews, so callers never divide by zero.
func (r *repository) AverageRating(ctx context.Context, productID uint) (decimal.Decimal, bool, error) {
	var avg sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT AVG(rating)::text FROM reviews WHERE product_id = $1
	`, productID).Scan(&avg)
	if err != nil {
		return decimal.Zero, false, err
	}
	if !avg.Valid {
		return decimal.Zero, false, nil
	}

	d, err := decimal.NewFromString(avg.String)
	if err != nil {
		return decimal.Zero, false, err
	}
	return d, true, nil
}
