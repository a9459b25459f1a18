package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"agriinsight/internal/config"
	"agriinsight/internal/handlers"
	"agriinsight/internal/middleware"
	"agriinsight/internal/monitoring"
)

// Deps carries everything the HTTP surface needs, constructed in cmd/api.
type Deps struct {
	Auth      *handlers.AuthHandler
	Dashboard *handlers.DashboardHandler
	Status    *handlers.StatusHandler
	Verifier  middleware.TokenVerifier
	Counters  *monitoring.RequestCounters
}

// Setup assembles the gin engine: CORS for the credentialed frontend,
// logging/recovery, request IDs and counters, then the route table.
func Setup(cfg *config.Config, deps Deps) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(deps.Counters.Middleware())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{cfg.CORS.FrontendOrigin}
	corsCfg.AllowCredentials = true
	r.Use(cors.New(corsCfg))

	r.GET("/health", handlers.HealthCheck)
	r.GET("/api/status", deps.Status.Status)

	r.POST("/auth/register", deps.Auth.Register)
	r.POST("/auth/login", deps.Auth.Login)
	r.POST("/auth/logout", deps.Auth.Logout)

	protected := r.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Verifier))

	protected.GET("/weather", deps.Dashboard.Weather)
	protected.GET("/yield", deps.Dashboard.Yield)
	protected.GET("/soil", deps.Dashboard.Soil)
	protected.GET("/market-prices", deps.Dashboard.MarketPrices)

	return r
}
