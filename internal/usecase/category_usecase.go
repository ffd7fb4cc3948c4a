package usecase

import (
	"context"
	"strings"

	"github.com/sams408/safeon-id-vault/internal/domain"

	"github.com/sirupsen/logrus"
)

type CategoryUseCase interface {
	CreateCategory(ctx context.Context, name string) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id, name string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	notifier
	log *logrus.Logger
}

func NewCategoryUseCase(repo domain.CategoryRepository, publisher domain.EventPublisher, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: repo,
		notifier:     notifier{publisher: publisher, log: logger},
		log:          logger,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		uc.log.Warn("Use Case: Attempted to create category with empty name")
		return nil, invalid("category name cannot be empty")
	}

	uc.log.Infof("Use Case: Attempting to create category '%s'", name)
	created, err := uc.categoryRepo.CreateCategory(ctx, name)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create category '%s': %v", name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category '%s' created successfully with ID %s", created.Name, created.ID)
	uc.notify(ctx, "category", domain.ActionCreated, created.ID)
	return created, nil
}

func (uc *categoryUseCase) GetCategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		uc.log.Warn("Use Case: Attempted to get category with empty ID")
		return nil, invalid("invalid category ID")
	}

	category, err := uc.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get category ID %s: %v", id, err)
		return nil, err
	}
	return category, nil
}

// UpdateCategory renames a category; products carrying it pick up the new name.
func (uc *categoryUseCase) UpdateCategory(ctx context.Context, id, name string) (*domain.Category, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" {
		uc.log.Warn("Use Case: Attempted update with empty category ID")
		return nil, invalid("invalid category ID for update")
	}
	if name == "" {
		uc.log.Warnf("Use Case: Attempted to update category ID %s with empty name", id)
		return nil, invalid("category name cannot be empty")
	}

	updated, err := uc.categoryRepo.UpdateCategory(ctx, &domain.Category{ID: id, Name: name})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update category ID %s: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category ID %s updated successfully", id)
	uc.notify(ctx, "category", domain.ActionUpdated, id)
	return updated, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return invalid("invalid category ID for delete")
	}

	if err := uc.categoryRepo.DeleteCategory(ctx, id); err != nil {
		uc.log.Errorf("Use Case: Repository failed to delete category ID %s: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Category ID %s deleted successfully", id)
	uc.notify(ctx, "category", domain.ActionDeleted, id)
	return nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := uc.categoryRepo.ListCategories(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return nil, err
	}
	uc.log.Infof("Use Case: Retrieved %d categories", len(categories))
	return categories, nil
}
