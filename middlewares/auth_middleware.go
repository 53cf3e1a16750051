package middlewares

import (
	"strings"

	"github.com/Fayets/NutriFA/config"
	"github.com/Fayets/NutriFA/models"
	"github.com/Fayets/NutriFA/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the Bearer token and stores the authenticated
// user's id in the context under "userID".
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.AbortUnauthenticated(c, "authorization header required")
			return
		}

		userID, err := utils.ParseJWT(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			utils.AbortUnauthenticated(c, "invalid or expired token")
			return
		}

		// The subject must still exist; tokens outlive deleted accounts.
		var user models.User
		if err := config.DB.First(&user, userID).Error; err != nil {
			utils.AbortUnauthenticated(c, "invalid or expired token")
			return
		}

		c.Set("userID", user.ID)
		c.Next()
	}
}
