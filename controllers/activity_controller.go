// controllers/activity_controller.go
package controllers

import (
	"net/http"

	"dressa_storefront/activity"
	"dressa_storefront/app"

	"github.com/gin-gonic/gin"
)

// 前端埋点：button_click / section_view / whatsapp_click 等
func (s *Srv) TrackActivity(c *gin.Context) {
	var in struct {
		Action   string         `json:"action" binding:"required"`
		Metadata map[string]any `json:"metadata"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if !activity.Known(in.Action) {
		c.JSON(http.StatusBadRequest, app.H{"error": "unknown action"})
		return
	}
	e := s.Shop.Activity.Log(c.Request.Context(), in.Action, in.Metadata, c.Request.UserAgent())
	c.JSON(http.StatusCreated, e)
}
