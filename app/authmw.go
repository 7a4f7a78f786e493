package app

import (
	"dressa_storefront/session"
	"net/http"

	"github.com/gin-gonic/gin"
)

const AdminSessionCookie = "admin_session"

// AdminRequired 只认进程内的管理会话
func AdminRequired(sessions *session.AdminSessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ck, err := c.Request.Cookie(AdminSessionCookie)
		if err != nil || !sessions.Valid(ck.Value) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}
		c.Set("adminSession", ck.Value)
		c.Next()
	}
}
