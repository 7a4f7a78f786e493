// controllers/dress_controller.go
package controllers

import (
	"net/http"

	"dressa_storefront/activity"
	"dressa_storefront/app"
	"dressa_storefront/catalog"

	"github.com/gin-gonic/gin"
)

type DressController struct{ *Srv }

func NewDressController(s *Srv) *DressController { return &DressController{Srv: s} }

// 前台目录固定为内置的六件，和后台目录互不影响
func (dc *DressController) List(c *gin.Context) {
	c.JSON(http.StatusOK, app.H{"items": catalog.Builtin()})
}

func (dc *DressController) Get(c *gin.Context) {
	id := c.Param("id")
	d, ok := catalog.ByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, app.H{"error": "dress not found"})
		return
	}
	dc.Shop.Activity.Log(c.Request.Context(), activity.DressView,
		map[string]any{"dressId": d.ID, "dressName": d.Name}, c.Request.UserAgent())
	c.JSON(http.StatusOK, d)
}

// Site 前端需要的站点信息
func (dc *DressController) Site(c *gin.Context) {
	c.JSON(http.StatusOK, app.H{
		"name":         "Dressa",
		"whatsappLink": dc.Cfg.WhatsAppLink(),
		"pages":        []string{"/", "/dresses", "/dress/:id", "/about", "/contact", "/dress-request", "/admin"},
	})
}
