package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sams408/safeon-id-vault/internal/domain"

	"github.com/sirupsen/logrus"
)

// postgresCategoryRepository goes exclusively through the category SQL
// functions created by the migrations.
type postgresCategoryRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresCategoryRepository(db *sql.DB, logger *logrus.Logger) domain.CategoryRepository {
	return &postgresCategoryRepository{
		db:  db,
		log: logger,
	}
}

func scanCategory(row rowScanner) (*domain.Category, error) {
	category := &domain.Category{}
	if err := row.Scan(&category.ID, &category.Name, &category.CreatedAt, &category.ProductCount); err != nil {
		return nil, err
	}
	return category, nil
}

func (r *postgresCategoryRepository) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	query := `SELECT id, name, created_at, product_count FROM create_category($1)`
	category, err := scanCategory(r.db.QueryRowContext(ctx, query, name))
	if err != nil {
		if code, _ := pqCode(err); code == pqUniqueViolation {
			r.log.Warnf("Repository: Attempted to create category with duplicate name: %s", name)
			return nil, fmt.Errorf("category with name '%s' %w", name, domain.ErrAlreadyExists)
		}
		r.log.Errorf("Repository: Failed to create category '%s': %v", name, err)
		return nil, fmt.Errorf("could not create category: %w", err)
	}
	r.log.Infof("Repository: Category created successfully with ID: %s, Name: %s", category.ID, category.Name)
	return category, nil
}

func (r *postgresCategoryRepository) GetCategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	query := `SELECT id, name, created_at, product_count FROM get_category_by_id($1)`
	category, err := scanCategory(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			r.log.Warnf("Repository: Category with ID %s not found", id)
			return nil, fmt.Errorf("category with id %s %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to get category by ID %s: %v", id, err)
		return nil, fmt.Errorf("could not get category by id: %w", err)
	}
	return category, nil
}

func (r *postgresCategoryRepository) UpdateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `SELECT id, name, created_at, product_count FROM update_category($1, $2)`
	updated, err := scanCategory(r.db.QueryRowContext(ctx, query, category.ID, category.Name))
	if err != nil {
		if code, _ := pqCode(err); code == pqUniqueViolation {
			r.log.Warnf("Repository: Attempted to update category ID %s with duplicate name: %s", category.ID, category.Name)
			return nil, fmt.Errorf("category with name '%s' %w", category.Name, domain.ErrAlreadyExists)
		}
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			r.log.Warnf("Repository: Category with ID %s not found for update", category.ID)
			return nil, fmt.Errorf("category with id %s %w", category.ID, domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to update category ID %s: %v", category.ID, err)
		return nil, fmt.Errorf("could not update category: %w", err)
	}
	r.log.Infof("Repository: Category updated successfully with ID: %s", updated.ID)
	return updated, nil
}

func (r *postgresCategoryRepository) DeleteCategory(ctx context.Context, id string) error {
	var removed int
	err := r.db.QueryRowContext(ctx, `SELECT delete_category($1)`, id).Scan(&removed)
	if err != nil {
		if isInvalidID(err) {
			return fmt.Errorf("category with id %s %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to delete category ID %s: %v", id, err)
		return fmt.Errorf("could not delete category: %w", err)
	}
	if removed == 0 {
		r.log.Warnf("Repository: Attempted to delete non-existent category ID %s", id)
		return fmt.Errorf("category with id %s %w", id, domain.ErrNotFound)
	}
	r.log.Infof("Repository: Category deleted successfully with ID: %s", id)
	return nil
}

func (r *postgresCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, created_at, product_count FROM get_categories()`)
	if err != nil {
		r.log.Errorf("Repository: Failed to list categories: %v", err)
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			r.log.Errorf("Repository: Failed to scan category row: %v", err)
			return nil, fmt.Errorf("error scanning category data: %w", err)
		}
		categories = append(categories, *category)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Repository: Error during categories list iteration: %v", err)
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	r.log.Infof("Repository: Retrieved %d categories", len(categories))
	return categories, nil
}
