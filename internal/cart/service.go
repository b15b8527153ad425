package cart

import (
	"context"
	"errors"

	"marketstore-be/internal/logger"
	"marketstore-be/internal/product"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service defines the business logic for carts.
type Service interface {
	AddItem(ctx context.Context, userID, productID uint, quantity int) (*CartItem, error)
	ViewCart(ctx context.Context, userID uint) (*View, error)
	UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) error
	RemoveItem(ctx context.Context, userID, itemID uint) error
	GetOrCreateCart(ctx context.Context, userID uint) (*Cart, error)
	GetItems(ctx context.Context, cartID uint) ([]Item, error)
}

type service struct {
	repo        Repository
	productRepo product.Repository
}

// NewService creates a new cart service.
func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

// AddItem puts a product into the user's cart. An existing line for the same
// product is merged by summing quantities.
func (s *service) AddItem(ctx context.Context, userID, productID uint, quantity int) (*CartItem, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddItem"),
		zap.Uint("user_id", userID),
		zap.Uint("product_id", productID),
		zap.Int("quantity", quantity),
	)

	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	c, err := s.repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	item, err := s.repo.UpsertItem(ctx, c.ID, productID, quantity)
	if err != nil {
		log.Error("failed to add cart item", zap.Error(err))
		return nil, err
	}

	log.Info("item added to cart", zap.Uint("cart_item_id", item.ID))
	return item, nil
}

func (s *service) ViewCart(ctx context.Context, userID uint) (*View, error) {
	c, err := s.repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.GetItems(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	return &View{
		Cart:  *c,
		Items: items,
		Total: TotalPrice(items),
	}, nil
}

// UpdateQuantity sets the line quantity. A quantity of zero or below deletes
// the line; that is the documented policy, not an error.
func (s *service) UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) error {
	c, err := s.repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return err
	}

	if quantity <= 0 {
		return s.repo.RemoveItem(ctx, c.ID, itemID)
	}

	return s.repo.UpdateItemQuantity(ctx, c.ID, itemID, quantity)
}

func (s *service) RemoveItem(ctx context.Context, userID, itemID uint) error {
	c, err := s.repo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.RemoveItem(ctx, c.ID, itemID)
}

func (s *service) GetOrCreateCart(ctx context.Context, userID uint) (*Cart, error) {
	return s.repo.GetOrCreateCart(ctx, userID)
}

func (s *service) GetItems(ctx context.Context, cartID uint) ([]Item, error) {
	return s.repo.GetItems(ctx, cartID)
}

// TotalPrice sums price × quantity over the lines in exact decimal
// arithmetic.
func TotalPrice(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimalFromInt(it.Quantity)))
	}
	return total
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
