package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JRossell27/Job-tracker/config"
	"github.com/JRossell27/Job-tracker/internal/delivery/http/middleware"
	"github.com/JRossell27/Job-tracker/internal/delivery/http/response"
	"github.com/JRossell27/Job-tracker/internal/domain"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	ApplicationUC domain.ApplicationUsecase
	StatsUC       domain.StatsUsecase
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public routes
	NewAuthHandler(v1, deps.AuthUC)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config))
	{
		NewApplicationHandler(protected, deps.ApplicationUC)
		NewStatsHandler(protected, deps.StatsUC)
	}

	return r
}
