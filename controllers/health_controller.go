package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// HEAD / answers with status only, no body.
func HealthCheckHead(c *gin.Context) {
	c.Status(http.StatusOK)
}
