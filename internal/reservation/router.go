package reservation

import "github.com/gin-gonic/gin"

// SetupReservationRoutes configures the reservation endpoint
func SetupReservationRoutes(engine *gin.Engine, controller *Controller) {
	engine.POST("/reserve", controller.ReserveTicket) // POST /reserve
}
