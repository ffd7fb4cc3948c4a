package usecase

import (
	"context"
	"strings"

	"github.com/sams408/safeon-id-vault/internal/domain"

	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, updates map[string]interface{}) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ListProducts(ctx context.Context) ([]domain.Product, error)
}

type productUseCase struct {
	productRepo  domain.ProductRepository
	clientRepo   domain.ClientRepository
	categoryRepo domain.CategoryRepository
	notifier
	log *logrus.Logger
}

func NewProductUseCase(pRepo domain.ProductRepository, clRepo domain.ClientRepository, cRepo domain.CategoryRepository, publisher domain.EventPublisher, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo:  pRepo,
		clientRepo:   clRepo,
		categoryRepo: cRepo,
		notifier:     notifier{publisher: publisher, log: logger},
		log:          logger,
	}
}

func (uc *productUseCase) checkClient(ctx context.Context, clientID string) error {
	if clientID == "" {
		return invalid("client_id is required")
	}
	if _, err := uc.clientRepo.GetClientByID(ctx, clientID); err != nil {
		uc.log.Warnf("Use Case: Client ID %s not found for product: %v", clientID, err)
		return requireReference(err, "client", clientID)
	}
	return nil
}

// categoryName resolves the denormalised name stored next to category_id.
func (uc *productUseCase) categoryName(ctx context.Context, categoryID string) (string, error) {
	category, err := uc.categoryRepo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		uc.log.Warnf("Use Case: Category ID %s not found for product: %v", categoryID, err)
		return "", requireReference(err, "category", categoryID)
	}
	return category.Name, nil
}

func (uc *productUseCase) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	product.Description = strings.TrimSpace(product.Description)
	product.ClientID = strings.TrimSpace(product.ClientID)
	product.CategoryID = strings.TrimSpace(product.CategoryID)
	product.CreatedBy = strings.TrimSpace(product.CreatedBy)

	if product.Name == "" {
		uc.log.Warn("Use Case: Attempted to create product with empty name")
		return nil, invalid("product name cannot be empty")
	}
	if err := uc.checkClient(ctx, product.ClientID); err != nil {
		return nil, err
	}
	product.Category = ""
	if product.CategoryID != "" {
		name, err := uc.categoryName(ctx, product.CategoryID)
		if err != nil {
			return nil, err
		}
		product.Category = name
	}
	if product.CreatedBy == "" {
		product.CreatedBy = domain.ActorFrom(ctx)
	}

	uc.log.Infof("Use Case: Attempting to create product '%s'", product.Name)
	created, err := uc.productRepo.CreateProduct(ctx, product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", product.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product '%s' created successfully with ID %s", created.Name, created.ID)
	uc.notify(ctx, "product", domain.ActionCreated, created.ID)
	return created, nil
}

func (uc *productUseCase) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		uc.log.Warn("Use Case: Attempted to get product with empty ID")
		return nil, invalid("invalid product ID")
	}

	product, err := uc.productRepo.GetProductByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get product ID %s: %v", id, err)
		return nil, err
	}
	return product, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id string, updates map[string]interface{}) (*domain.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		uc.log.Warn("Use Case: Attempted update with empty product ID")
		return nil, invalid("invalid product ID for update")
	}

	current, err := uc.productRepo.GetProductByID(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Product ID %s not found for update: %v", id, err)
		return nil, err
	}

	validUpdates := make(map[string]interface{})
	for key, value := range updates {
		switch key {
		case "name":
			name, err := stringUpdate(key, value, false)
			if err != nil {
				return nil, err
			}
			if name == "" {
				uc.log.Warnf("Use Case: Empty 'name' provided for update ID %s", id)
				return nil, invalid("product name cannot be empty if provided for update")
			}
			validUpdates[key] = name
		case "description":
			description, err := stringUpdate(key, value, true)
			if err != nil {
				return nil, err
			}
			validUpdates[key] = description
		case "client_id":
			clientID, err := stringUpdate(key, value, false)
			if err != nil {
				return nil, err
			}
			if err := uc.checkClient(ctx, clientID); err != nil {
				return nil, err
			}
			validUpdates[key] = clientID
		case "category_id":
			categoryID, err := stringUpdate(key, value, true)
			if err != nil {
				return nil, err
			}
			name := ""
			if categoryID != "" {
				if name, err = uc.categoryName(ctx, categoryID); err != nil {
					return nil, err
				}
			}
			validUpdates["category_id"] = categoryID
			validUpdates["category"] = name
		default:
			uc.log.Warnf("Use Case: Ignoring unknown or immutable field '%s' during update for product ID %s", key, id)
		}
	}

	if len(validUpdates) == 0 {
		uc.log.Infof("Use Case: No valid fields to update for product ID %s", id)
		return current, nil
	}

	updated, err := uc.productRepo.UpdateProduct(ctx, id, validUpdates)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update product ID %s: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product ID %s updated successfully", id)
	uc.notify(ctx, "product", domain.ActionUpdated, id)
	return updated, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return invalid("invalid product ID for delete")
	}

	if err := uc.productRepo.DeleteProduct(ctx, id); err != nil {
		uc.log.Errorf("Use Case: Repository failed to delete product ID %s: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Product ID %s deleted successfully", id)
	uc.notify(ctx, "product", domain.ActionDeleted, id)
	return nil
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := uc.productRepo.ListProducts(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, err
	}
	uc.log.Infof("Use Case: Retrieved %d products", len(products))
	return products, nil
}
