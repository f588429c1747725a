package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"fina/internal/dto"   // Response envelope
	"fina/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// UserIDKey is the gin context key holding the caller's user id
const UserIDKey = "userID"

// Identity resolves the caller's user id and stores it under UserIDKey.
// A valid bearer token names the user; without one the placeholder user is
// used. With an empty secret tokens are not checked at all.
func Identity(secret, fallbackUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// No token or tokens disabled: act as the placeholder user
		if secret == "" || authHeader == "" {
			c.Set(UserIDKey, fallbackUserID)
			c.Next()
			return
		}
		// Check the header is properly formatted
		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c, "Missing or invalid Authorization header")
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			logrus.WithField("error", err.Error()).Warn("Rejected token")
			unauthorized(c, "Invalid or expired token")
			return
		}
		c.Set(UserIDKey, claims.UserID) // Store userID in context
		c.Next()                        // Proceed to the next handler
	}
}

// unauthorized aborts with 401 in the standard envelope
func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewResponse[any](nil, http.StatusUnauthorized, message))
}
