package middleware

import (
	"net/http"
	"strings"

	"barberbook/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthStaffMiddleware guards establishment management routes. On success
// the staff ID and establishment ID are stored in the context, and any :id
// route param naming an establishment must match the token's tenant.
func JWTAuthStaffMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		staffID, establishmentID, err := utils.ClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		if routeEst := c.Param("establishmentId"); routeEst != "" && routeEst != establishmentID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "token does not grant access to this establishment"})
			return
		}

		c.Set("staffID", staffID)
		c.Set("establishmentID", establishmentID)
		c.Next()
	}
}
