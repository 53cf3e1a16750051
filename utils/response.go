package utils

import (
	"errors"
	"net/http"

	"github.com/Fayets/NutriFA/apperror"
	"github.com/Fayets/NutriFA/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIResponse is the envelope returned by every endpoint.
type APIResponse struct {
	Message string      `json:"message"`
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

func RespondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Message: message, Success: true, Data: data})
}

// RespondError maps a service error to its HTTP status and writes the
// failure envelope. Unrecognized errors become opaque 500s; the detail is
// logged, never exposed.
func RespondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
		switch {
		case errors.Is(err, apperror.ErrInvalidInput),
			errors.Is(err, apperror.ErrConflict),
			errors.Is(err, apperror.ErrInvalidUpstreamData):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrUnauthenticated):
			status = http.StatusUnauthorized
		case errors.Is(err, apperror.ErrForbidden):
			status = http.StatusForbidden
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, apperror.ErrUpstreamUnavailable):
			status = http.StatusBadGateway
		}
	} else {
		logger.Error("unhandled error", zap.Error(err))
	}

	c.JSON(status, APIResponse{Message: message, Success: false, Data: nil})
}

// AbortUnauthenticated writes a 401 envelope and stops the handler chain.
// Used by the auth middleware.
func AbortUnauthenticated(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, APIResponse{
		Message: message,
		Success: false,
		Data:    nil,
	})
}
