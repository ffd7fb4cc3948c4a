package domain

import "context"

// CategoryRepository results always carry ProductCount.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, name string) (*Category, error)
	GetCategoryByID(ctx context.Context, id string) (*Category, error)
	UpdateCategory(ctx context.Context, category *Category) (*Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]Category, error)
}
