package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pasoapp/paso/config/db"
	"github.com/pasoapp/paso/logger"
	"github.com/pasoapp/paso/models/owner_models"
	"github.com/pasoapp/paso/utils"
	"github.com/pasoapp/paso/utils/jwt_tokens"
)

// AuthMiddleware checks the authentication of the request using a JWT access
// token and validates the token version against the owner record, so logging
// out everywhere (bumping token_version) invalidates old tokens.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "NO_TOKEN", "error": "No authorization token provided."})
			return
		}

		if len(authHeader) <= 7 || !strings.EqualFold(authHeader[:7], "bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "INVALID_AUTH_FORMAT", "error": "Invalid authorization format."})
			return
		}
		rawToken := authHeader[7:]

		claims, err := jwt_tokens.ParseToken(rawToken, utils.GetJWTSecret())
		if err != nil {
			logger.ErrorLogger.Errorf("JWT validation failed: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "INVALID_TOKEN", "error": "Invalid or expired token."})
			return
		}

		sub, _ := claims["sub"].(string)
		ownerID, err := uuid.Parse(sub)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "error": "Unauthorized: Missing owner identification from token."})
			return
		}

		var tokenVersion int
		switch v := claims["token_version"].(type) {
		case float64:
			tokenVersion = int(v)
		case int:
			tokenVersion = v
		default:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "INVALID_TOKEN", "error": "Invalid token version format."})
			return
		}

		owner, err := owner_models.GetOwnerByID(c.Request.Context(), db.DB, ownerID)
		if err != nil {
			logger.ErrorLogger.Errorf("Owner %s from token not found: %v", ownerID, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "error": "Unauthorized."})
			return
		}

		if owner.TokenVersion != tokenVersion {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "TOKEN_REVOKED", "error": "Token has been revoked."})
			return
		}

		c.Set("sub", ownerID.String())
		c.Next()
	}
}
