// controllers/admin_controller.go
package controllers

import (
	"net/http"
	"time"

	"dressa_storefront/app"
	"dressa_storefront/forms"
	"dressa_storefront/models"

	"github.com/gin-gonic/gin"
)

type AdminController struct{ *Srv }

func NewAdminController(s *Srv) *AdminController { return &AdminController{Srv: s} }

// 管理员口令登录；会话只存在于进程内
func (ac *AdminController) Login(c *gin.Context) {
	var in struct {
		AccessCode string `json:"accessCode"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if !ac.Gate.Check(in.AccessCode) {
		c.JSON(http.StatusUnauthorized, app.H{"error": "Invalid access code"})
		return
	}
	sess := ac.Sessions.Create()
	ac.setAdminCookie(c.Writer, sess.ID, 24*time.Hour)
	c.JSON(http.StatusOK, app.H{"ok": true})
}

func (ac *AdminController) Logout(c *gin.Context) {
	if ck, err := c.Request.Cookie(app.AdminSessionCookie); err == nil && ck.Value != "" {
		ac.Sessions.Delete(ck.Value)
	}
	ac.setAdminCookie(c.Writer, "", -1)
	c.JSON(http.StatusOK, app.H{"ok": true})
}

func (ac *AdminController) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, ac.Shop.Statistics(c.Request.Context()))
}

// ---- 后台目录 ----

func (ac *AdminController) ListDresses(c *gin.Context) {
	c.JSON(http.StatusOK, app.H{"items": ac.Shop.Dresses(c.Request.Context())})
}

func (ac *AdminController) CreateDress(c *gin.Context) {
	var f forms.DressForm
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	d, errs := ac.Shop.AddDressFromForm(c.Request.Context(), f)
	if !errs.Valid() {
		c.JSON(http.StatusUnprocessableEntity, app.H{"errors": errs})
		return
	}
	c.JSON(http.StatusCreated, d)
}

// 找不到 id 时静默成功
func (ac *AdminController) UpdateDress(c *gin.Context) {
	var patch models.DressPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	d, ok := ac.Shop.UpdateDress(c.Request.Context(), c.Param("id"), patch)
	if !ok {
		c.JSON(http.StatusOK, app.H{"ok": true})
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true, "dress": d})
}

func (ac *AdminController) DeleteDress(c *gin.Context) {
	ac.Shop.DeleteDress(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// ---- 定制请求 / 留言 ----

func (ac *AdminController) ListDressRequests(c *gin.Context) {
	c.JSON(http.StatusOK, app.H{"items": ac.Shop.DressRequests.List(c.Request.Context())})
}

func (ac *AdminController) SetDressRequestStatus(c *gin.Context) {
	var in struct {
		Status models.DressRequestStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&in); err != nil || !in.Status.Valid() {
		c.JSON(http.StatusBadRequest, app.H{"error": "status must be pending, contacted or completed"})
		return
	}
	r, ok := ac.Shop.UpdateDressRequestStatus(c.Request.Context(), c.Param("id"), in.Status)
	if !ok {
		c.JSON(http.StatusOK, app.H{"ok": true})
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true, "request": r})
}

func (ac *AdminController) DeleteDressRequest(c *gin.Context) {
	ac.Shop.DeleteDressRequest(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, app.H{"ok": true})
}

func (ac *AdminController) ListMessages(c *gin.Context) {
	c.JSON(http.StatusOK, app.H{"items": ac.Shop.ContactSubmissions.List(c.Request.Context())})
}

func (ac *AdminController) DeleteMessage(c *gin.Context) {
	ac.Shop.DeleteContactSubmission(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// ---- 只读列表 ----

func (ac *AdminController) ListBuy(c *gin.Context) {
	c.JSON(http.StatusOK, app.H{"items": ac.Shop.BuyRequests.List(c.Request.Context())})
}

func (ac *AdminController) ListSell(c *gin.Context) {
	c.JSON(http.StatusOK, app.H{"items": ac.Shop.SellRequests.List(c.Request.Context())})
}

func (ac *AdminController) ListRent(c *gin.Context) {
	c.JSON(http.StatusOK, app.H{"items": ac.Shop.RentRequests.List(c.Request.Context())})
}

func (ac *AdminController) ListRentOut(c *gin.Context) {
	c.JSON(http.StatusOK, app.H{"items": ac.Shop.RentOutRequests.List(c.Request.Context())})
}

func (ac *AdminController) ListActivity(c *gin.Context) {
	c.JSON(http.StatusOK, app.H{"items": ac.Shop.Activity.List(c.Request.Context())})
}
