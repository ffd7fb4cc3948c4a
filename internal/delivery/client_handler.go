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

type ClientHandler struct {
	useCase usecase.ClientUseCase
	base
}

func NewClientHandler(uc usecase.ClientUseCase, tr *i18n.Translator, logger *logrus.Logger) *ClientHandler {
	return &ClientHandler{
		useCase: uc,
		base:    base{tr: tr, log: logger},
	}
}

func (h *ClientHandler) RegisterRoutes(router gin.IRouter) {
	clients := router.Group("/clients")
	{
		clients.POST("", h.CreateClient)
		clients.GET("", h.ListClients)
		clients.GET("/:id", h.GetClientByID)
		clients.PATCH("/:id", h.UpdateClient)
		clients.DELETE("/:id", h.DeleteClient)
	}
}

func (h *ClientHandler) columns(c *gin.Context) []datatable.Column[domain.Client] {
	return []datatable.Column[domain.Client]{
		{Key: "name", Header: h.t(c, "clients.name", nil), Searchable: true, Value: func(v domain.Client) string { return v.Name }},
		{Key: "email", Header: h.t(c, "clients.email", nil), Searchable: true, Value: func(v domain.Client) string { return v.Email }},
		{Key: "phone", Header: h.t(c, "clients.phone", nil), Searchable: true, Value: func(v domain.Client) string { return v.Phone }},
		{Key: "status", Header: h.t(c, "clients.status", nil), Value: func(v domain.Client) string { return string(v.Status) }},
		{Key: "created_at", Header: h.t(c, "clients.createdAt", nil), Value: func(v domain.Client) string { return formatTime(v.CreatedAt) }},
	}
}

func (h *ClientHandler) CreateClient(c *gin.Context) {
	var client domain.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		h.badRequest(c, err)
		return
	}

	created, err := h.useCase.CreateClient(c.Request.Context(), &client)
	if err != nil {
		h.log.Errorf("Failed to create client '%s': %v", client.Name, err)
		h.fail(c, err, "client")
		return
	}

	h.log.Infof("Client created successfully: ID %s, Name %s", created.ID, created.Name)
	SuccessResponse(c, http.StatusCreated, h.t(c, "messages.created", map[string]string{"entity": h.entity(c, "client")}), created)
}

func (h *ClientHandler) GetClientByID(c *gin.Context) {
	id, ok := h.idParam(c, "client")
	if !ok {
		return
	}

	client, err := h.useCase.GetClientByID(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to get client by ID %s: %v", id, err)
		h.fail(c, err, "client")
		return
	}

	SuccessResponse(c, http.StatusOK, h.t(c, "messages.retrieved", map[string]string{"entity": h.entity(c, "client")}), client)
}

func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := h.idParam(c, "client")
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		h.badRequest(c, err)
		return
	}

	updated, err := h.useCase.UpdateClient(c.Request.Context(), id, updates)
	if err != nil {
		h.log.Errorf("Failed to update client ID %s: %v", id, err)
		h.fail(c, err, "client")
		return
	}

	h.log.Infof("Client updated successfully: ID %s", updated.ID)
	SuccessResponse(c, http.StatusOK, h.t(c, "messages.updated", map[string]string{"entity": h.entity(c, "client")}), updated)
}

func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, ok := h.idParam(c, "client")
	if !ok {
		return
	}

	if err := h.useCase.DeleteClient(c.Request.Context(), id); err != nil {
		h.log.Errorf("Failed to delete client ID %s: %v", id, err)
		h.fail(c, err, "client")
		return
	}

	h.log.Infof("Client deleted successfully: ID %s", id)
	SuccessResponse(c, http.StatusOK, h.t(c, "messages.deleted", map[string]string{"entity": h.entity(c, "client")}), nil)
}

func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.useCase.ListClients(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to list clients: %v", err)
		h.fail(c, err, "client")
		return
	}
	renderList(h.base, c, "clients", clients, h.columns(c), nil, "status")
}
