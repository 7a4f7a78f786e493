// controllers/photo_controller.go
package controllers

import (
	"net/http"

	"dressa_storefront/app"
	"dressa_storefront/photos"

	"github.com/gin-gonic/gin"
)

// 上传照片转 data URL；不合格或超出数量的文件直接跳过
func (s *Srv) UploadPhotos(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": "multipart form required"})
		return
	}
	files := form.File["photos"]
	urls := photos.ToDataURLs(c.Request.Context(), photos.FromHeaders(files))
	c.JSON(http.StatusOK, app.H{"photos": urls, "skipped": len(files) - len(urls)})
}
