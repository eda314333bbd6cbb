package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"jobboard-admin/config"
	"jobboard-admin/internal/delivery/http/middleware"
	"jobboard-admin/internal/delivery/http/response"
	"jobboard-admin/internal/domain"
	"jobboard-admin/internal/usecase"
	"jobboard-admin/pkg/auth"
	"jobboard-admin/pkg/validation"
)

type RouterDeps struct {
	SessionUC domain.SessionUsecase
	JobUC     domain.JobUsecase
	HealthUC  usecase.HealthUsecase
	Verifier  *auth.Verifier
	Config    *config.Config
	Location  *time.Location
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	r := gin.New()

	loc := deps.Location
	if loc == nil {
		loc = time.Local
	}

	// Global Middlewares. CORS must run before anything that can abort.
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, deps.Config.RateLimitWindowSeconds)))

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Login gets its own, stricter limit on top of the global one.
	loginLimited := v1.Group("")
	loginLimited.Use(middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, deps.Config.RateLimitWindowSeconds)))

	protected := v1.Group("")
	protected.Use(middleware.SessionGuard(deps.Verifier, deps.Config, deps.SessionUC))
	{
		NewAuthHandler(loginLimited, protected, deps.SessionUC, deps.Config)
		NewJobHandler(protected, deps.JobUC, deps.Config, loc)
	}

	return r
}
