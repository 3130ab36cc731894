// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"railbook/internal/korail"
	"railbook/internal/notifications"
	"railbook/internal/reservation"
	"railbook/internal/shared/config"
	"railbook/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config *config.Config
	logger *logger.Logger
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, l *logger.Logger) *Router {
	return &Router{
		config: cfg,
		logger: l,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Greeting and health endpoints
	r.setupInfoRoutes(engine)

	// Reservation endpoint
	r.setupReservationRoutes(engine)

	// Swagger UI over the committed docs
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// setupInfoRoutes sets up the greeting and health check routes
func (r *Router) setupInfoRoutes(engine *gin.Engine) {
	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "KTX 예매 봇이 실행 중입니다.")
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "railbook",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
}

// setupReservationRoutes configures the reservation endpoint and its collaborators
func (r *Router) setupReservationRoutes(engine *gin.Engine) {
	bookingClient := korail.NewClient(r.config.Korail.Username, r.config.Korail.Password)

	var sender notifications.Sender
	if r.config.SMS.APIKey != "" && r.config.SMS.APISecret != "" {
		sender = notifications.NewSolapiService(r.config.SMS, r.logger)
	} else {
		sender = notifications.NewNoopSender(r.logger)
	}

	reservationService := reservation.NewService(r.config, bookingClient, sender, r.logger)
	reservationController := reservation.NewController(reservationService)

	reservation.SetupReservationRoutes(engine, reservationController)
}
