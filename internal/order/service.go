package order

import (
	"context"

	"marketstore-be/internal/cart"
	"marketstore-be/internal/logger"
	"marketstore-be/internal/user"

	"go.uber.org/zap"
)

type Service interface {
	Checkout(ctx context.Context, userID uint) (*Detail, error)
	ListOrders(ctx context.Context, userID uint) ([]*Order, error)
	GetOrderDetail(ctx context.Context, userID, orderID uint) (*Detail, error)
}

type service struct {
	repo     Repository
	cartSvc  cart.Service
	userRepo user.Repository
}

func NewService(repo Repository, cartSvc cart.Service, userRepo user.Repository) Service {
	return &service{
		repo:     repo,
		cartSvc:  cartSvc,
		userRepo: userRepo,
	}
}

// Checkout turns the user's cart into a paid order with its payment and
// delivery records, all in one transaction. The cart itself stays intact;
// checking out again produces another order from the same lines.
func (s *service) Checkout(ctx context.Context, userID uint) (*Detail, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.Uint("user_id", userID),
	)

	log.Info("checkout started")

	c, err := s.cartSvc.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.cartSvc.GetItems(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		log.Warn("checkout on empty cart")
		return nil, ErrEmptyCart
	}

	total := cart.TotalPrice(items)

	u, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Error("failed to load buyer profile", zap.Error(err))
		return nil, err
	}

	address := u.Address
	if address == "" {
		address = UnspecifiedAddress
	}

	detail, err := s.repo.CreateOrderTx(ctx, CheckoutWrite{
		UserID:          userID,
		CartID:          c.ID,
		TotalPrice:      total,
		DeliveryAddress: address,
	})
	if err != nil {
		log.Error("checkout failed", zap.Error(err))
		return nil, err
	}

	log.Info("checkout completed",
		zap.Uint("order_id", detail.Order.ID),
		zap.String("total_price", total.String()),
	)
	return detail, nil
}

func (s *service) ListOrders(ctx context.Context, userID uint) ([]*Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) GetOrderDetail(ctx context.Context, userID, orderID uint) (*Detail, error) {
	return s.repo.GetDetail(ctx, userID, orderID)
}
