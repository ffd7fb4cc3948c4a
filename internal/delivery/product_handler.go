package delivery

import (
	"net/http"

	"github.com/sams408/safeon-id-vault/internal/datatable"
	"github.com/sams408/safeon-id-vault/internal/domain"
	"github.com/sams408/safeon-id-vault/internal/i18n"
	"github.com/sams408/safeon-id-vault/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ProductHandler serves products under /items, the name the dashboard uses.
type ProductHandler struct {
	useCase usecase.ProductUseCase
	base
}

func NewProductHandler(uc usecase.ProductUseCase, tr *i18n.Translator, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		base:    base{tr: tr, log: logger},
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	for _, path := range []string{"/products", "/items"} {
		products := router.Group(path)
		{
			products.POST("", h.CreateProduct)
			products.GET("", h.ListProducts)
			products.GET("/:id", h.GetProductByID)
			products.PATCH("/:id", h.UpdateProduct)
			products.DELETE("/:id", h.DeleteProduct)
		}
	}
}

func (h *ProductHandler) columns(c *gin.Context) []datatable.Column[domain.Product] {
	return []datatable.Column[domain.Product]{
		{Key: "name", Header: h.t(c, "items.name", nil), Searchable: true, Value: func(v domain.Product) string { return v.Name }},
		{Key: "description", Header: h.t(c, "items.description", nil), Searchable: true, Value: func(v domain.Product) string { return v.Description }},
		{Key: "client", Header: h.t(c, "items.client", nil), Searchable: true, Value: func(v domain.Product) string { return v.ClientName }},
		{Key: "category", Header: h.t(c, "items.category", nil), Searchable: true, Value: func(v domain.Product) string { return v.Category }},
		{Key: "created_by", Header: h.t(c, "items.createdBy", nil), Value: func(v domain.Product) string { return v.CreatedBy }},
		{Key: "created_at", Header: h.t(c, "items.createdAt", nil), Value: func(v domain.Product) string { return formatTime(v.CreatedAt) }},
	}
}

var productFilterColumns = []datatable.Column[domain.Product]{
	{Key: "client_id", Value: func(v domain.Product) string { return v.ClientID }},
	{Key: "category_id", Value: func(v domain.Product) string { return v.CategoryID }},
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		h.badRequest(c, err)
		return
	}

	created, err := h.useCase.CreateProduct(c.Request.Context(), &product)
	if err != nil {
		h.log.Errorf("Failed to create product '%s': %v", product.Name, err)
		h.fail(c, err, "item")
		return
	}

	h.log.Infof("Product created successfully: ID %s, Name %s", created.ID, created.Name)
	SuccessResponse(c, http.StatusCreated, h.t(c, "messages.created", map[string]string{"entity": h.entity(c, "item")}), created)
}

func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, ok := h.idParam(c, "item")
	if !ok {
		return
	}

	product, err := h.useCase.GetProductByID(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to get product by ID %s: %v", id, err)
		h.fail(c, err, "item")
		return
	}

	SuccessResponse(c, http.StatusOK, h.t(c, "messages.retrieved", map[string]string{"entity": h.entity(c, "item")}), product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := h.idParam(c, "item")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		h.badRequest(c, err)
		return
	}

	updated, err := h.useCase.UpdateProduct(c.Request.Context(), id, updates)
	if err != nil {
		h.log.Errorf("Failed to update product ID %s: %v", id, err)
		h.fail(c, err, "item")
		return
	}

	h.log.Infof("Product updated successfully: ID %s", updated.ID)
	SuccessResponse(c, http.StatusOK, h.t(c, "messages.updated", map[string]string{"entity": h.entity(c, "item")}), updated)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := h.idParam(c, "item")
	if !ok {
		return
	}

	if err := h.useCase.DeleteProduct(c.Request.Context(), id); err != nil {
		h.log.Errorf("Failed to delete product ID %s: %v", id, err)
		h.fail(c, err, "item")
		return
	}

	h.log.Infof("Product deleted successfully: ID %s", id)
	SuccessResponse(c, http.StatusOK, h.t(c, "messages.deleted", map[string]string{"entity": h.entity(c, "item")}), nil)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.useCase.ListProducts(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to list products: %v", err)
		h.fail(c, err, "item")
		return
	}
	renderList(h.base, c, "items", products, h.columns(c), productFilterColumns, "client_id", "category_id")
}
