package reservation

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const noTrainsMessage = "예약 가능한 열차가 없습니다."

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// ReserveTicket handles POST /reserve
//
//	@Summary		Reserve a KTX ticket
//	@Description	Searches bookable KTX trains for the requested route, reserves a general seat on the first candidate and sends a confirmation SMS. Requests are not deduplicated: sending the same request twice produces two reservations.
//	@Tags			reservation
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ReserveRequest	true	"Reservation request"
//	@Success		200		{object}	ReserveResponse
//	@Failure		400		{object}	ReserveResponse
//	@Failure		404		{object}	ReserveResponse
//	@Failure		500		{object}	ReserveResponse
//	@Router			/reserve [post]
func (c *Controller) ReserveTicket(ctx *gin.Context) {
	var req ReserveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, failResponse(validationMessage(err)))
		return
	}

	seat, err := c.service.Reserve(ctx.Request.Context(), req)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, successResponse(seat))
}

// respondError maps the service's error taxonomy onto status codes:
// validation 400, no trains 404, missing configuration 500, any other
// provider failure a 200 with a fail status
func (c *Controller) respondError(ctx *gin.Context, err error) {
	var cfgErr *ConfigError

	switch {
	case errors.Is(err, ErrInvalidPassengerCount):
		ctx.JSON(http.StatusBadRequest, failResponse(err.Error()))
	case errors.Is(err, ErrNoTrains):
		ctx.JSON(http.StatusNotFound, failResponse(noTrainsMessage))
	case errors.As(err, &cfgErr):
		ctx.JSON(http.StatusInternalServerError, failResponse(cfgErr.Error()))
	default:
		ctx.JSON(http.StatusOK, failResponse(err.Error()))
	}
}

// validationMessage flattens binding failures into a single readable line
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body: " + err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return "invalid request: " + strings.Join(parts, ", ")
}
