package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/event_split_app/cmd/docs"
	"github.com/SscSPs/event_split_app/internal/core/domain"
	portssvc "github.com/SscSPs/event_split_app/internal/core/ports/services"
	"github.com/SscSPs/event_split_app/internal/middleware"
	"github.com/SscSPs/event_split_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	registerValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	registerAuthRoutes(r, services.Token)

	if err := setupPublicRoutes(r, cfg, services); err != nil {
		return err
	}

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupPublicRoutes exposes the guest-facing endpoints under /api/v1/public.
func setupPublicRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) error {
	joinLimiter, err := middleware.NewRateLimiter(cfg.JoinRateLimit)
	if err != nil {
		return err
	}

	public := r.Group("/api/v1/public")
	registerPublicEventRoutes(public, services.Event)
	registerPublicJoinRequestRoutes(public, services.JoinRequest, middleware.RateLimit(joinLimiter))
	return nil
}

// setupAPIV1Routes configures the organizer-only /api/v1 group.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerEventRoutes(v1, service.Event)
	registerParticipantRoutes(v1, service.Event, service.Participant)
	registerTransactionRoutes(v1, service.Event, service.Ledger)
	registerBalanceRoutes(v1, service.Balance)
	registerJoinRequestRoutes(v1, service.Event, service.JoinRequest)
	registerAdminRoutes(v1, service.State)
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

// registerValidators adds the custom binding rules used by the DTOs.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		slog.Warn("Gin validator engine is not validator/v10; custom rules not registered")
		return
	}
	if err := v.RegisterValidation("eventcode", func(fl validator.FieldLevel) bool {
		return domain.IsValidEventCode(domain.NormalizeEventCode(fl.Field().String()))
	}); err != nil {
		slog.Error("Failed to register eventcode validator", slog.String("error", err.Error()))
	}
}
