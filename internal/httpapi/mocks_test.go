package httpapi

import (
	"context"

	"marketstore-be/internal/cart"
	"marketstore-be/internal/catalog"
	"marketstore-be/internal/export"
	"marketstore-be/internal/order"
	"marketstore-be/internal/product"
	"marketstore-be/internal/review"
	"marketstore-be/internal/supplier"
	"marketstore-be/internal/user"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type mockUserService struct{ mock.Mock }

func (m *mockUserService) Register(ctx context.Context, params user.RegisterParams) (string, user.User, error) {
	args := m.Called(ctx, params)
	return args.String(0), args.Get(1).(user.User), args.Error(2)
}

func (m *mockUserService) Login(ctx context.Context, email, password string) (string, user.User, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(user.User), args.Error(2)
}

func (m *mockUserService) GetByID(ctx context.Context, id uint) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

type mockProductService struct{ mock.Mock }

func (m *mockProductService) Create(ctx context.Context, params product.CreateProductParams) (*product.Product, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *mockProductService) GetByID(ctx context.Context, id uint) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *mockProductService) List(ctx context.Context, filter product.ListFilter) ([]*product.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

type mockReviewService struct{ mock.Mock }

func (m *mockReviewService) Submit(ctx context.Context, params review.SubmitParams) (*review.Review, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Review), args.Error(1)
}

func (m *mockReviewService) ListByProduct(ctx context.Context, productID uint) ([]*review.Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*review.Review), args.Error(1)
}

func (m *mockReviewService) AverageRating(ctx context.Context, productID uint) (decimal.Decimal, bool, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(decimal.Decimal), args.Bool(1), args.Error(2)
}

type mockCartService struct{ mock.Mock }

func (m *mockCartService) AddItem(ctx context.Context, userID, productID uint, quantity int) (*cart.CartItem, error) {
	args := m.Called(ctx, userID, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.CartItem), args.Error(1)
}

func (m *mockCartService) ViewCart(ctx context.Context, userID uint) (*cart.View, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.View), args.Error(1)
}

func (m *mockCartService) UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) error {
	return m.Called(ctx, userID, itemID, quantity).Error(0)
}

func (m *mockCartService) RemoveItem(ctx context.Context, userID, itemID uint) error {
	return m.Called(ctx, userID, itemID).Error(0)
}

func (m *mockCartService) GetOrCreateCart(ctx context.Context, userID uint) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *mockCartService) GetItems(ctx context.Context, cartID uint) ([]cart.Item, error) {
	args := m.Called(ctx, cartID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cart.Item), args.Error(1)
}

type mockOrderService struct{ mock.Mock }

func (m *mockOrderService) Checkout(ctx context.Context, userID uint) (*order.Detail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Detail), args.Error(1)
}

func (m *mockOrderService) ListOrders(ctx context.Context, userID uint) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *mockOrderService) GetOrderDetail(ctx context.Context, userID, orderID uint) (*order.Detail, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Detail), args.Error(1)
}

type mockSupplierService struct{ mock.Mock }

func (m *mockSupplierService) Create(ctx context.Context, s supplier.Supplier) (*supplier.Supplier, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supplier.Supplier), args.Error(1)
}

func (m *mockSupplierService) GetByID(ctx context.Context, id uint) (*supplier.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supplier.Supplier), args.Error(1)
}

func (m *mockSupplierService) List(ctx context.Context) ([]*supplier.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*supplier.Supplier), args.Error(1)
}

type mockCatalogService struct{ mock.Mock }

func (m *mockCatalogService) Categories(ctx context.Context) ([]*catalog.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Category), args.Error(1)
}

func (m *mockCatalogService) AddCategory(ctx context.Context, name, description string) (*catalog.Category, error) {
	args := m.Called(ctx, name, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *mockCatalogService) Warehouses(ctx context.Context) ([]*catalog.Warehouse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Warehouse), args.Error(1)
}

func (m *mockCatalogService) AddWarehouse(ctx context.Context, name, address string) (*catalog.Warehouse, error) {
	args := m.Called(ctx, name, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Warehouse), args.Error(1)
}

type mockExportService struct{ mock.Mock }

func (m *mockExportService) Products(ctx context.Context, filter export.Filter) ([]export.ProductRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]export.ProductRow), args.Error(1)
}

func (m *mockExportService) Orders(ctx context.Context, filter export.Filter) ([]export.OrderRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]export.OrderRow), args.Error(1)
}

func (m *mockExportService) Suppliers(ctx context.Context) ([]export.SupplierRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]export.SupplierRow), args.Error(1)
}
