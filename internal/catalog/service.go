package catalog

import "context"

// Service exposes the category/warehouse reference data.
type Service interface {
	Categories(ctx context.Context) ([]*Category, error)
	AddCategory(ctx context.Context, name, description string) (*Category, error)
	Warehouses(ctx context.Context) ([]*Warehouse, error)
	AddWarehouse(ctx context.Context, name, address string) (*Warehouse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Categories(ctx context.Context) ([]*Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *service) AddCategory(ctx context.Context, name, description string) (*Category, error) {
	return s.repo.AddCategory(ctx, name, description)
}

func (s *service) Warehouses(ctx context.Context) ([]*Warehouse, error) {
	return s.repo.ListWarehouses(ctx)
}

func (s *service) AddWarehouse(ctx context.Context, name, address string) (*Warehouse, error) {
	return s.repo.AddWarehouse(ctx, name, address)
}
