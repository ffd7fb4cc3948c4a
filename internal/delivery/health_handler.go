package delivery

import (
	"context"
	"net/http"

	"github.com/sams408/safeon-id-vault/internal/i18n"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	backend string
	base
}

func NewHealthHandler(db Pinger, backend string, tr *i18n.Translator, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{db: db, backend: backend, base: base{tr: tr, log: logger}}
}

func (h *HealthHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/health", h.Health)
}

func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.log.Errorf("Health check failed: %v", err)
		ErrorResponse(c, http.StatusServiceUnavailable, h.t(c, "errors.connection", nil))
		return
	}
	SuccessResponse(c, http.StatusOK, h.t(c, "messages.healthy", nil), gin.H{"backend": h.backend, "database": "up"})
}
