package delivery

import (
	"net/http"
	"strconv"

	"github.com/sams408/safeon-id-vault/internal/i18n"
	"github.com/sams408/safeon-id-vault/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type DashboardHandler struct {
	useCase usecase.DashboardUseCase
	base
}

func NewDashboardHandler(uc usecase.DashboardUseCase, tr *i18n.Translator, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{
		useCase: uc,
		base:    base{tr: tr, log: logger},
	}
}

func (h *DashboardHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/dashboard", h.Dashboard)
	router.GET("/navigation", h.Navigation)
}

type metricCard struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Value  int    `json:"value"`
	Detail string `json:"detail,omitempty"`
}

type dashboardView struct {
	Title string       `json:"title"`
	Cards []metricCard `json:"cards"`
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	stats, err := h.useCase.Stats(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to load dashboard stats: %v", err)
		h.fail(c, err, "")
		return
	}

	view := dashboardView{
		Title: h.t(c, "dashboard.title", nil),
		Cards: []metricCard{
			{Key: "clients", Label: h.t(c, "dashboard.clients", nil), Value: stats.Clients},
			{Key: "active_clients", Label: h.t(c, "dashboard.activeClients", nil), Value: stats.ActiveClients},
			{Key: "users", Label: h.t(c, "dashboard.users", nil), Value: stats.Users},
			{Key: "active_users", Label: h.t(c, "dashboard.activeUsers", nil), Value: stats.ActiveUsers},
			{Key: "items", Label: h.t(c, "dashboard.items", nil), Value: stats.Products},
			{Key: "categories", Label: h.t(c, "dashboard.categories", nil), Value: stats.Categories},
		},
	}
	SuccessResponse(c, http.StatusOK, h.t(c, "messages.retrieved", map[string]string{"entity": h.t(c, "dashboard.title", nil)}), view)
}

type navEntry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

var navigation = []struct{ key, path string }{
	{"dashboard", "/dashboard"},
	{"clients", "/clients"},
	{"users", "/users"},
	{"items", "/items"},
	{"categories", "/categories"},
}

func (h *DashboardHandler) Navigation(c *gin.Context) {
	entries := make([]navEntry, 0, len(navigation))
	for _, n := range navigation {
		entries = append(entries, navEntry{Key: n.key, Label: h.t(c, "sidebar."+n.key, nil), Path: n.path})
	}
	SuccessResponse(c, http.StatusOK, h.t(c, "messages.listed", map[string]string{"count": strconv.Itoa(len(entries))}), gin.H{
		"title":   h.t(c, "sidebar.system", nil),
		"entries": entries,
		"logout":  h.t(c, "sidebar.logout", nil),
	})
}
