package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hodamousavipour/banking-dashboard-front/cmd/docs"
	portssvc "github.com/hodamousavipour/banking-dashboard-front/internal/core/ports/services"
	"github.com/hodamousavipour/banking-dashboard-front/internal/middleware"
	"github.com/hodamousavipour/banking-dashboard-front/internal/platform/config"
	"github.com/hodamousavipour/banking-dashboard-front/internal/utils/datevalid"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	RegisterCustomValidations()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Setup API v1 routes behind the session stub (assume-logged-in)
	setupAPIV1Routes(r, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.SessionMiddleware())

	registerHomeRoutes(v1)
	RegisterTransactionRoutes(v1, services.Transaction)
}

// RegisterCustomValidations wires the txdate rule into gin's binding
// validator so dto date fields share the calendar-date check. Registering
// the same rule twice is harmless.
func RegisterCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("txdate", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if len(value) > 10 {
			value = value[:10]
		}
		return datevalid.IsValidCalendarDate(value)
	})
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
