// controllers/request_controller.go
package controllers

import (
	"context"
	"net/http"

	"dressa_storefront/app"
	"dressa_storefront/forms"

	"github.com/gin-gonic/gin"
)

type RequestController struct{ *Srv }

func NewRequestController(s *Srv) *RequestController { return &RequestController{Srv: s} }

// submit 绑定表单 -> 校验并保存；校验失败返回 422 和逐字段错误
func submit[F forms.Form, R any](c *gin.Context, fn func(context.Context, F, string) (R, forms.Errors)) {
	var f F
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	rec, errs := fn(c.Request.Context(), f, c.Request.UserAgent())
	if !errs.Valid() {
		c.JSON(http.StatusUnprocessableEntity, app.H{"errors": errs})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (rc *RequestController) Buy(c *gin.Context)     { submit(c, rc.Shop.SubmitBuy) }
func (rc *RequestController) Sell(c *gin.Context)    { submit(c, rc.Shop.SubmitSell) }
func (rc *RequestController) Rent(c *gin.Context)    { submit(c, rc.Shop.SubmitRent) }
func (rc *RequestController) RentOut(c *gin.Context) { submit(c, rc.Shop.SubmitRentOut) }

func (rc *RequestController) DressRequest(c *gin.Context) { submit(c, rc.Shop.SubmitDressRequest) }

func (rc *RequestController) Contact(c *gin.Context) { submit(c, rc.Shop.SubmitContact) }
