package handlers

import (
	"fmt"

	"github.com/SscSPs/household_ledger/cmd/docs"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/SscSPs/household_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
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
		c.String(200, "OK")
	})

	if err := registerAuthRoutes(r, cfg, services); err != nil {
		return err
	}

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates to the entity registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

	registerUserRoutes(v1, service.User)
	registerCurrencyRoutes(v1, service.Currency)
	registerHouseholdRoutes(v1, service)
}

// registerHouseholdRoutes mounts the household resources and everything scoped to one household.
func registerHouseholdRoutes(v1 *gin.RouterGroup, service *portssvc.ServiceContainer) {
	hh := newHouseholdHandler(service.Household)
	households := v1.Group("/households")
	{
		households.POST("", hh.createHousehold)
		households.GET("", hh.listHouseholds)
	}

	household := households.Group("/:household_id")
	{
		household.GET("/members", hh.listMembers)
		household.POST("/members", hh.inviteMember)
		household.DELETE("/members/me", hh.leaveHousehold)
	}

	registerHouseholdCurrencyRoutes(household, service.Currency)
	registerExchangeRateRoutes(household, service.ExchangeRate)
	registerTransactionRoutes(household, service.Transaction)
	registerBalanceRoutes(household, service.Balance)
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

func newLoginLimiter(cfg *config.Config) (gin.HandlerFunc, error) {
	l, err := middleware.NewMemoryRateLimiter(cfg.LoginRateLimit)
	if err != nil {
		return nil, fmt.Errorf("invalid login rate limit %q: %w", cfg.LoginRateLimit, err)
	}
	return middleware.RateLimit(l), nil
}
