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

type UserHandler struct {
	useCase usecase.UserUseCase
	base
}

func NewUserHandler(uc usecase.UserUseCase, tr *i18n.Translator, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		useCase: uc,
		base:    base{tr: tr, log: logger},
	}
}

func (h *UserHandler) RegisterRoutes(router gin.IRouter) {
	users := router.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUserByID)
		users.PATCH("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}

func (h *UserHandler) columns(c *gin.Context) []datatable.Column[domain.User] {
	return []datatable.Column[domain.User]{
		{Key: "name", Header: h.t(c, "users.name", nil), Searchable: true, Value: func(v domain.User) string { return v.Name }},
		{Key: "email", Header: h.t(c, "users.email", nil), Searchable: true, Value: func(v domain.User) string { return v.Email }},
		{Key: "client", Header: h.t(c, "users.client", nil), Searchable: true, Value: func(v domain.User) string { return v.ClientName }},
		{Key: "status", Header: h.t(c, "users.status", nil), Value: func(v domain.User) string { return string(v.Status) }},
		{Key: "created_by", Header: h.t(c, "users.createdBy", nil), Value: func(v domain.User) string { return v.CreatedBy }},
		{Key: "created_at", Header: h.t(c, "users.createdAt", nil), Value: func(v domain.User) string { return formatTime(v.CreatedAt) }},
	}
}

var userFilterColumns = []datatable.Column[domain.User]{
	{Key: "client_id", Value: func(v domain.User) string { return v.ClientID }},
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var user domain.User
	if err := c.ShouldBindJSON(&user); err != nil {
		h.badRequest(c, err)
		return
	}

	created, err := h.useCase.CreateUser(c.Request.Context(), &user)
	if err != nil {
		h.log.Errorf("Failed to create user '%s': %v", user.Name, err)
		h.fail(c, err, "user")
		return
	}

	h.log.Infof("User created successfully: ID %s, Name %s", created.ID, created.Name)
	SuccessResponse(c, http.StatusCreated, h.t(c, "messages.created", map[string]string{"entity": h.entity(c, "user")}), created)
}

func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := h.idParam(c, "user")
	if !ok {
		return
	}

	user, err := h.useCase.GetUserByID(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to get user by ID %s: %v", id, err)
		h.fail(c, err, "user")
		return
	}

	SuccessResponse(c, http.StatusOK, h.t(c, "messages.retrieved", map[string]string{"entity": h.entity(c, "user")}), user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.idParam(c, "user")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		h.badRequest(c, err)
		return
	}

	updated, err := h.useCase.UpdateUser(c.Request.Context(), id, updates)
	if err != nil {
		h.log.Errorf("Failed to update user ID %s: %v", id, err)
		h.fail(c, err, "user")
		return
	}

	h.log.Infof("User updated successfully: ID %s", updated.ID)
	SuccessResponse(c, http.StatusOK, h.t(c, "messages.updated", map[string]string{"entity": h.entity(c, "user")}), updated)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := h.idParam(c, "user")
	if !ok {
		return
	}

	if err := h.useCase.DeleteUser(c.Request.Context(), id); err != nil {
		h.log.Errorf("Failed to delete user ID %s: %v", id, err)
		h.fail(c, err, "user")
		return
	}

	h.log.Infof("User deleted successfully: ID %s", id)
	SuccessResponse(c, http.StatusOK, h.t(c, "messages.deleted", map[string]string{"entity": h.entity(c, "user")}), nil)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.useCase.ListUsers(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to list users: %v", err)
		h.fail(c, err, "user")
		return
	}
	renderList(h.base, c, "users", users, h.columns(c), userFilterColumns, "status", "client_id")
}
