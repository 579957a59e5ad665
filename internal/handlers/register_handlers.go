package handlers

import (
	"net/http"

	"github.com/SscSPs/smart_converter/cmd/docs"
	portssvc "github.com/SscSPs/smart_converter/internal/core/ports/services"
	"github.com/SscSPs/smart_converter/internal/middleware"
	"github.com/SscSPs/smart_converter/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SessionConfigFromConfig derives the session cookie settings from cfg.
func SessionConfigFromConfig(cfg *config.Config) middleware.SessionConfig {
	return middleware.SessionConfig{
		CookieName: cfg.SessionCookieName,
		Secret:     []byte(cfg.SessionSecret),
		MaxAge:     cfg.SessionIdleTimeout,
		Secure:     cfg.IsProduction,
	}
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerValidators()
	r.SetHTMLTemplate(loadTemplates())

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Server-rendered converter pages
	registerPageRoutes(r, services, cfg.RatesBaseCurrency)

	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerCatalogRoutes(v1, service.Unit, service.Currency)
	registerUnitRoutes(v1, service.Unit, service.History)
	registerCurrencyRoutes(v1, service.Currency, service.History, cfg.RatesBaseCurrency)
	registerZakatRoutes(v1, service.Zakat)
	registerHistoryRoutes(v1, service.History, SessionConfigFromConfig(cfg))
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
