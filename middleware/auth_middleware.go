package middleware

import (
	"RealEstateAPI/services"
	"RealEstateAPI/utils"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and resolves it to a live
// user before any protected handler runs. The resolved user (without
// its credential hash) is stored on the context as "user", its id as
// "userId". Failures are recorded on the context and rendered by the
// global error handler.
func AuthMiddleware(users services.UserResolver, tokenService *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.Error(utils.NewCustomError(http.StatusUnauthorized, "Not authorized, no token"))
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := tokenService.Verify(tokenStr)
		if err != nil {
			c.Error(utils.NewCustomError(http.StatusUnauthorized, "Not authorized, token failed"))
			c.Abort()
			return
		}

		// The token may outlive the account; treat a missing user as
		// unauthenticated rather than a server error.
		user, err := users.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			if customErr, ok := err.(*utils.CustomError); ok && customErr.StatusCode == http.StatusNotFound {
				c.Error(utils.NewCustomError(http.StatusUnauthorized, "Not authorized, token failed"))
			} else {
				c.Error(err)
			}
			c.Abort()
			return
		}

		c.Set("userId", user.ID)
		c.Set("user", user)
		c.Next()
	}
}
