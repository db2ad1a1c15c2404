package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"tripplanner/pkg/utils"
)

type TokenValidator interface {
	ValidateToken(tokenString string) (*utils.Claims, error)
}

// JWTAuthMiddleware answers 401 when no bearer token is sent and 403 when the
// token does not verify.
func JWTAuthMiddleware(validator TokenValidator) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := ""
		if fields := strings.Fields(authHeader); len(fields) == 2 && strings.EqualFold(fields[0], "Bearer") {
			tokenString = fields[1]
		}
		if tokenString == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Access denied. No token provided.")
			c.Abort()
			return
		}

		claims, err := validator.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusForbidden, "Invalid token")
			c.Abort()
			return
		}

		// Pass user information to the next handler
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
