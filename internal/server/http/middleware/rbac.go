package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nafru/exportdesk/internal/domain/model"
	"github.com/nafru/exportdesk/internal/pkg/authz"
)

// RequireAction rejects authenticated users whose role is not permitted to
// perform the action. It must run after AuthRequired.
func RequireAction(action authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(UserContextKey)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		payload, _ := val.(*model.UserPayload)
		if payload == nil || !authz.Allowed(payload.Role, action) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
