package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/quiz-service/internal/auth"
	"github.com/SAP-F-2025/quiz-service/internal/utils"
	"github.com/gin-gonic/gin"
)

func setIdentity(c *gin.Context, identity *auth.Identity) {
	c.Set(ContextIdentityKey, identity)
	c.Set(ContextUserIDKey, identity.Subject)
}

// RequireAdmin rejects requests without a valid admin token
func RequireAdmin(authenticator auth.Authenticator, logger utils.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "Not authorized, no token"})
			return
		}

		identity, err := authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Warn("Rejected token", "path", c.Request.URL.Path, "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Message: "Not authorized, token failed"})
			return
		}

		if !identity.IsAdmin {
			logger.Warn("Non-admin attempted an admin operation", "user_id", identity.Subject, "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Message: "Admin access required"})
			return
		}

		setIdentity(c, identity)
		c.Next()
	}
}

// OptionalAuth attaches the caller when a valid token is presented and
// otherwise lets the request through anonymously
func OptionalAuth(authenticator auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := auth.BearerToken(c.GetHeader("Authorization")); err == nil {
			if identity, err := authenticator.Authenticate(c.Request.Context(), token); err == nil {
				setIdentity(c, identity)
			}
		}
		c.Next()
	}
}
