package delivery

import (
	"github.com/sams408/safeon-id-vault/internal/domain"
	"github.com/sams408/safeon-id-vault/internal/i18n"
	"github.com/sams408/safeon-id-vault/internal/middleware"
	"github.com/sams408/safeon-id-vault/internal/repository"
	"github.com/sams408/safeon-id-vault/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

type RouterConfig struct {
	Store        *repository.Store
	Publisher    domain.EventPublisher
	Translator   *i18n.Translator
	Auth         usecase.AuthUseCase
	CORSOrigins  []string
	SecureCookie bool
	Registry     *prometheus.Registry
	Logger       *logrus.Logger
}

// NewRouter wires use cases and handlers over the store and returns the
// engine serving the whole HTTP API.
func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Logger
	tr := cfg.Translator
	store := cfg.Store

	clientUseCase := usecase.NewClientUseCase(store.Clients, cfg.Publisher, log)
	userUseCase := usecase.NewUserUseCase(store.Users, store.Clients, cfg.Publisher, log)
	productUseCase := usecase.NewProductUseCase(store.Products, store.Clients, store.Categories, cfg.Publisher, log)
	categoryUseCase := usecase.NewCategoryUseCase(store.Categories, cfg.Publisher, log)
	dashboardUseCase := usecase.NewDashboardUseCase(store.Stats, log)
	log.Info("Use cases initialized.")

	authHandler := NewAuthHandler(cfg.Auth, cfg.SecureCookie, tr, log)
	handlers := []interface{ RegisterRoutes(gin.IRouter) }{
		NewClientHandler(clientUseCase, tr, log),
		NewUserHandler(userUseCase, tr, log),
		NewProductHandler(productUseCase, tr, log),
		NewCategoryHandler(categoryUseCase, tr, log),
		NewDashboardHandler(dashboardUseCase, tr, log),
	}
	log.Info("Handlers initialized.")

	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	metrics := middleware.NewMetrics(registry)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(metrics.Middleware())
	router.Use(middleware.CORS(cfg.CORSOrigins))
	router.Use(middleware.Language(tr))

	router.GET("/metrics", metrics.Handler())
	NewHealthHandler(store, store.Backend, tr, log).RegisterRoutes(router)
	NewI18nHandler(tr, log).RegisterRoutes(router)
	authHandler.RegisterRoutes(router)

	requireAuth := middleware.AuthMiddleware(cfg.Auth, tr, log)
	session := router.Group("/auth", requireAuth)
	{
		session.GET("/session", authHandler.Session)
		session.PATCH("/session", authHandler.UpdateProfile)
		session.POST("/password", authHandler.ChangePassword)
	}

	api := router.Group("/api", requireAuth)
	for _, h := range handlers {
		h.RegisterRoutes(api)
	}
	log.Info("API Routes registered.")

	return router
}
