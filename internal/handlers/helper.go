package handlers

import (
	"net/http"
	"strings"

	"github.com/SAP-F-2025/quiz-service/internal/auth"
	"github.com/gin-gonic/gin"
)

const (
	ContextIdentityKey = "identity"
	ContextUserIDKey   = "user_id"
)

func ParseStringIDParam(c *gin.Context, param string) string {
	idStr := strings.TrimSpace(c.Param(param))
	if idStr == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + param,
			Details: "ID cannot be empty",
		})
		return ""
	}
	return idStr
}

// IdentityFromContext returns the caller set by the auth middleware, if any.
func IdentityFromContext(c *gin.Context) (*auth.Identity, bool) {
	value, exists := c.Get(ContextIdentityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*auth.Identity)
	return identity, ok && identity != nil
}

func isAdmin(c *gin.Context) bool {
	identity, ok := IdentityFromContext(c)
	return ok && identity.IsAdmin
}

func actor(c *gin.Context) string {
	if identity, ok := IdentityFromContext(c); ok {
		return identity.Subject
	}
	return ""
}
