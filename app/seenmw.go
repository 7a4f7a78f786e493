// app/seenmw.go
package app

import (
	"dressa_storefront/activity"

	"github.com/gin-gonic/gin"
)

// TrackPageLoad 前台页面类 GET 记一条 page_load，只在成功响应后记录
func TrackPageLoad(logger *activity.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Request.Method != "GET" || c.Writer.Status() >= 400 {
			return
		}
		meta := map[string]any{"path": c.Request.URL.Path}
		if p := c.Query("page"); p != "" {
			meta["page"] = p
		}
		logger.Log(c.Request.Context(), activity.PageLoad, meta, c.Request.UserAgent())
	}
}
