package controllers

import (
	"strconv"
	"time"

	"github.com/Fayets/NutriFA/apperror"
	"github.com/Fayets/NutriFA/utils"

	"github.com/gin-gonic/gin"
)

// RespondBindError wraps Gin binding failures in the standard envelope.
func RespondBindError(c *gin.Context, err error) {
	utils.RespondError(c, apperror.InvalidInput("invalid request body: "+err.Error()))
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, apperror.InvalidInput(name + " must be a positive integer")
	}
	return uint(id), nil
}

func parseDateQuery(c *gin.Context, name string) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, apperror.InvalidInput(name + " is required (YYYY-MM-DD)")
	}
	date, err := time.ParseInLocation(utils.DateLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, apperror.InvalidInput(name + " must be a valid date (YYYY-MM-DD)")
	}
	return date, nil
}
