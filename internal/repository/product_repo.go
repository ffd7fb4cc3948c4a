package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sams408/safeon-id-vault/internal/domain"

	"github.com/sirupsen/logrus"
)

var productColumns = map[string]bool{
	"name":        true,
	"description": true,
	"client_id":   true,
	"category_id": true,
	"category":    true,
	"created_by":  true,
}

const productSelect = `
        SELECT p.id, p.name, COALESCE(p.description, ''), p.client_id, COALESCE(c.name, ''),
               p.category_id, COALESCE(p.category, ''), p.created_by, p.created_at
        FROM products p
        LEFT JOIN clients c ON c.id = p.client_id`

type postgresProductRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresProductRepository(db *sql.DB, logger *logrus.Logger) domain.ProductRepository {
	return &postgresProductRepository{
		db:  db,
		log: logger,
	}
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	product := &domain.Product{}
	var categoryID sql.NullString
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.ClientID,
		&product.ClientName,
		&categoryID,
		&product.Category,
		&product.CreatedBy,
		&product.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if categoryID.Valid {
		product.CategoryID = categoryID.String
	}
	return product, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r *postgresProductRepository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
        INSERT INTO products (name, description, client_id, category_id, category, created_by)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id`

	var id string
	err := r.db.QueryRowContext(ctx, query,
		product.Name,
		nullable(product.Description),
		product.ClientID,
		nullable(product.CategoryID),
		nullable(product.Category),
		product.CreatedBy,
	).Scan(&id)
	if err != nil {
		code, msg := pqCode(err)
		if code == pqForeignKeyViolation || code == pqInvalidTextRep {
			r.log.Warnf("Repository: Attempted to create product '%s' with non-existent client %s or category %s", product.Name, product.ClientID, product.CategoryID)
			return nil, fmt.Errorf("client or category for product '%s' %w", product.Name, domain.ErrMissingReference)
		}
		if code == pqCheckViolation {
			r.log.Warnf("Repository: Check constraint violation for product '%s': %s", product.Name, msg)
			return nil, fmt.Errorf("%w: product data constraint violation: %s", domain.ErrInvalidInput, msg)
		}
		r.log.Errorf("Repository: Failed to create product '%s': %v", product.Name, err)
		return nil, fmt.Errorf("could not create product: %w", err)
	}
	r.log.Infof("Repository: Product created successfully with ID: %s, Name: %s", id, product.Name)
	return r.GetProductByID(ctx, id)
}

func (r *postgresProductRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	product, err := scanProduct(r.db.QueryRowContext(ctx, productSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidID(err) {
			r.log.Warnf("Repository: Product with ID %s not found", id)
			return nil, fmt.Errorf("product with id %s %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to get product by ID %s: %v", id, err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}
	return product, nil
}

func (r *postgresProductRepository) UpdateProduct(ctx context.Context, id string, updates map[string]interface{}) (*domain.Product, error) {
	converted := make(map[string]interface{}, len(updates))
	for key, value := range updates {
		// empty strings on nullable columns are stored as NULL
		if s, ok := value.(string); ok && (key == "category_id" || key == "category" || key == "description") {
			converted[key] = nullable(s)
			continue
		}
		converted[key] = value
	}

	setClauses, args := buildSetClauses(converted, productColumns, r.log, "product", id)
	if len(setClauses) == 0 {
		r.log.Infof("Repository: No fields provided for product update ID %s. Returning current product.", id)
		return r.GetProductByID(ctx, id)
	}

	query := "UPDATE products SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", len(args)+1)
	args = append(args, id)

	r.log.Debugf("Repository: Executing partial update query for product ID %s: %s", id, query)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		code, msg := pqCode(err)
		if code == pqForeignKeyViolation {
			r.log.Warnf("Repository: Attempted to update product ID %s with non-existent client or category", id)
			return nil, fmt.Errorf("client or category for product %s %w", id, domain.ErrMissingReference)
		}
		if code == pqCheckViolation {
			r.log.Warnf("Repository: Check constraint violation for product update ID %s: %s", id, msg)
			return nil, fmt.Errorf("%w: product data constraint violation: %s", domain.ErrInvalidInput, msg)
		}
		if code == pqInvalidTextRep {
			return nil, fmt.Errorf("product with id %s %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to execute partial update for product ID %s: %v", id, err)
		return nil, fmt.Errorf("could not partially update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Repository: Failed to get rows affected after partial update for product ID %s: %v", id, err)
		return nil, fmt.Errorf("could not confirm product update: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Repository: Product with ID %s not found for update (0 rows affected)", id)
		return nil, fmt.Errorf("product with id %s %w", id, domain.ErrNotFound)
	}

	r.log.Infof("Repository: Partial update successful for product ID %s. Fetching updated product.", id)
	return r.GetProductByID(ctx, id)
}

func (r *postgresProductRepository) DeleteProduct(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		if isInvalidID(err) {
			return fmt.Errorf("product with id %s %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to delete product ID %s: %v", id, err)
		return fmt.Errorf("could not delete product: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Repository: Failed to get rows affected after deleting product ID %s: %v", id, err)
		return fmt.Errorf("could not confirm product deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Repository: Attempted to delete non-existent product ID %s", id)
		return fmt.Errorf("product with id %s %w", id, domain.ErrNotFound)
	}
	r.log.Infof("Repository: Product deleted successfully with ID: %s", id)
	return nil
}

func (r *postgresProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, productSelect+` ORDER BY p.created_at DESC`)
	if err != nil {
		r.log.Errorf("Repository: Failed to list products: %v", err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			r.log.Errorf("Repository: Failed to scan product row: %v", err)
			return nil, fmt.Errorf("error scanning product data: %w", err)
		}
		products = append(products, *product)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Repository: Error during products list iteration: %v", err)
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	r.log.Infof("Repository: Retrieved %d products", len(products))
	return products, nil
}
