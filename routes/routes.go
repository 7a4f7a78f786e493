package routes

import (
	"dressa_storefront/app"
	"dressa_storefront/controllers"
	"net/http"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	// 控制器与依赖
	s := controllers.GetSrv(a)
	dc := controllers.NewDressController(s)
	rc := controllers.NewRequestController(s)
	ac := controllers.NewAdminController(s)

	// 复用的中间件
	adminMW := app.AdminRequired(a.Sessions)
	pageMW := app.TrackPageLoad(a.Shop.Activity)

	r.GET("/healthz", func(c *app.Ctx) { c.JSON(http.StatusOK, app.H{"ok": true}) })

	// ------------------------------
	// 前台：浏览
	// ------------------------------
	pages := r.Group("/api", pageMW)
	{
		pages.GET("/site", dc.Site)
		pages.GET("/dresses", dc.List)
		pages.GET("/dresses/:id", dc.Get)
	}

	// ------------------------------
	// 前台：表单提交与埋点
	// ------------------------------
	api := r.Group("/api")
	{
		api.POST("/requests/buy", rc.Buy)
		api.POST("/requests/sell", rc.Sell)
		api.POST("/requests/rent", rc.Rent)
		api.POST("/requests/rent-out", rc.RentOut)
		api.POST("/dress-requests", rc.DressRequest)
		api.POST("/contact", rc.Contact)

		api.POST("/photos", s.UploadPhotos)
		api.POST("/activity", s.TrackActivity)
	}

	// ------------------------------
	// 管理后台
	// ------------------------------
	r.POST("/admin/login", ac.Login)
	r.POST("/admin/logout", ac.Logout)

	adm := r.Group("/admin", adminMW)
	{
		adm.GET("/stats", ac.Stats)

		adm.GET("/dresses", ac.ListDresses)
		adm.POST("/dresses", ac.CreateDress)
		adm.PATCH("/dresses/:id", ac.UpdateDress)
		adm.DELETE("/dresses/:id", ac.DeleteDress)

		adm.GET("/dress-requests", ac.ListDressRequests)
		adm.PATCH("/dress-requests/:id/status", ac.SetDressRequestStatus)
		adm.DELETE("/dress-requests/:id", ac.DeleteDressRequest)

		adm.GET("/messages", ac.ListMessages)
		adm.DELETE("/messages/:id", ac.DeleteMessage)

		adm.GET("/requests/buy", ac.ListBuy)
		adm.GET("/requests/sell", ac.ListSell)
		adm.GET("/requests/rent", ac.ListRent)
		adm.GET("/requests/rent-out", ac.ListRentOut)
		adm.GET("/activity", ac.ListActivity)
	}
}
