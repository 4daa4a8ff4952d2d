package api

import (
	"errors"
	"fmt"

	"citizen_registry/internal/config"
	"citizen_registry/internal/metrics"
	"citizen_registry/internal/middleware"
	"citizen_registry/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Dependencies are the collaborators the HTTP layer routes to
type Dependencies struct {
	Config      *config.Config
	Auth        *service.AuthService
	Registry    *service.RegistryService
	Statistics  *service.StatisticsService
	Metrics     *metrics.Metrics
	RateLimiter *middleware.RateLimiter
	Logger      logrus.FieldLogger
}

// NewRouter builds the gin engine with every route and cross-cutting middleware
func NewRouter(deps Dependencies) (*gin.Engine, error) {
	if deps.Config == nil || deps.Auth == nil || deps.Registry == nil || deps.Statistics == nil {
		return nil, errors.New("router: config and services are required")
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}

	r := gin.New()
	// Only the local reverse proxy may set X-Forwarded-For
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}

	r.Use(
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		gin.Recovery(),
		middleware.SecureHeaders(deps.Config.IsProd),
		middleware.CORS([]string{deps.Config.FrontendURL}),
		deps.Metrics.Middleware(),
	)

	r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	api := r.Group("/api")
	if deps.RateLimiter != nil {
		api.Use(deps.RateLimiter.Middleware())
	}
	api.GET("/health", HealthHandler(deps.Config))
	api.POST("/auth/login", LoginHandler(deps.Auth, deps.Metrics))

	protected := api.Group("")
	protected.Use(middleware.JWTAuthMiddleware(deps.Auth))
	{
		protected.GET("/citizens", ListCitizensHandler(deps.Registry))
		protected.POST("/citizens", RegisterCitizenHandler(deps.Registry, deps.Metrics))
		protected.GET("/citizens/:nin", GetCitizenHandler(deps.Registry))
		protected.GET("/statistics", StatisticsHandler(deps.Statistics))
	}

	return r, nil
}
