package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/calorie-quest/backend/internal/logger"
	"github.com/pageza/calorie-quest/backend/internal/middleware"
	"github.com/pageza/calorie-quest/backend/internal/service"
)

var errInvalidID = errors.New("invalid id")

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrNoDays),
		errors.Is(err, service.ErrAuthDisabled),
		errors.Is(err, errInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrDayNotFound),
		errors.Is(err, service.ErrMealNotFound),
		errors.Is(err, service.ErrMeasurementNotFound),
		errors.Is(err, service.ErrSummaryNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrStorageDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {error} for err. Unexpected errors are logged and
// hidden behind a generic message.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Named("api").Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(status, middleware.ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(status, middleware.ErrorResponse{Error: err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: msg})
}
