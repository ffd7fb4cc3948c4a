package delivery

import (
	"net/http"
	"strconv"

	"github.com/sams408/safeon-id-vault/internal/datatable"
	"github.com/sams408/safeon-id-vault/internal/domain"
	"github.com/sams408/safeon-id-vault/internal/i18n"
	"github.com/sams408/safeon-id-vault/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	useCase usecase.CategoryUseCase
	base
}

func NewCategoryHandler(uc usecase.CategoryUseCase, tr *i18n.Translator, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase: uc,
		base:    base{tr: tr, log: logger},
	}
}

func (h *CategoryHandler) RegisterRoutes(router gin.IRouter) {
	categories := router.Group("/categories")
	{
		categories.POST("", h.CreateCategory)
		categories.GET("", h.ListCategories)
		categories.GET("/:id", h.GetCategoryByID)
		categories.PATCH("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}
}

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *CategoryHandler) columns(c *gin.Context) []datatable.Column[domain.Category] {
	return []datatable.Column[domain.Category]{
		{Key: "name", Header: h.t(c, "categories.name", nil), Searchable: true, Value: func(v domain.Category) string { return v.Name }},
		{Key: "product_count", Header: h.t(c, "categories.productCount", nil), Value: func(v domain.Category) string { return strconv.Itoa(v.ProductCount) }},
		{Key: "created_at", Header: h.t(c, "categories.createdAt", nil), Value: func(v domain.Category) string { return formatTime(v.CreatedAt) }},
	}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	created, err := h.useCase.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		h.log.Errorf("Failed to create category '%s': %v", req.Name, err)
		h.fail(c, err, "category")
		return
	}

	h.log.Infof("Category created successfully: ID %s, Name %s", created.ID, created.Name)
	SuccessResponse(c, http.StatusCreated, h.t(c, "messages.created", map[string]string{"entity": h.entity(c, "category")}), created)
}

func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, ok := h.idParam(c, "category")
	if !ok {
		return
	}

	category, err := h.useCase.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to get category by ID %s: %v", id, err)
		h.fail(c, err, "category")
		return
	}

	SuccessResponse(c, http.StatusOK, h.t(c, "messages.retrieved", map[string]string{"entity": h.entity(c, "category")}), category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := h.idParam(c, "category")
	if !ok {
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	updated, err := h.useCase.UpdateCategory(c.Request.Context(), id, req.Name)
	if err != nil {
		h.log.Errorf("Failed to update category ID %s: %v", id, err)
		h.fail(c, err, "category")
		return
	}

	h.log.Infof("Category updated successfully: ID %s", updated.ID)
	SuccessResponse(c, http.StatusOK, h.t(c, "messages.updated", map[string]string{"entity": h.entity(c, "category")}), updated)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := h.idParam(c, "category")
	if !ok {
		return
	}

	if err := h.useCase.DeleteCategory(c.Request.Context(), id); err != nil {
		h.log.Errorf("Failed to delete category ID %s: %v", id, err)
		h.fail(c, err, "category")
		return
	}

	h.log.Infof("Category deleted successfully: ID %s", id)
	SuccessResponse(c, http.StatusOK, h.t(c, "messages.deleted", map[string]string{"entity": h.entity(c, "category")}), nil)
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.useCase.ListCategories(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to list categories: %v", err)
		h.fail(c, err, "category")
		return
	}
	renderList(h.base, c, "categories", categories, h.columns(c), nil)
}
