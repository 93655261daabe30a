package web

import (
	"errors"
	"net/http"

	"gallery/models"
	"gallery/uploads"

	"github.com/gin-gonic/gin"
)

func UploadView(c *gin.Context, user *models.User) {
	c.HTML(http.StatusOK, "upload.tmpl", gin.H{"name": user.Name})
}

// UploadFile accepts the multipart form and runs the upload pipeline.
// Unlike the route it replaces, this one sits behind the auth guard.
func UploadFile(c *gin.Context, user *models.User) {
	file, err := c.FormFile("file")
	if err != nil {
		c.HTML(http.StatusBadRequest, "upload.tmpl", gin.H{
			"name":  user.Name,
			"error": "Please choose a file to upload.",
		})
		return
	}
	album, err := uploads.Process(user, file, c.PostForm("img_name"))
	if errors.Is(err, models.ErrDuplicateFilename) {
		c.HTML(http.StatusConflict, "upload.tmpl", gin.H{
			"name":  user.Name,
			"error": "A photo with that filename already exists.",
		})
		return
	}
	if err != nil {
		c.HTML(http.StatusInternalServerError, "upload.tmpl", gin.H{
			"name":  user.Name,
			"error": "Upload failed, please try again.",
		})
		return
	}
	c.HTML(http.StatusOK, "upload.tmpl", gin.H{
		"name":    user.Name,
		"success": "Image uploaded successfully!",
		"img":     album.Img,
	})
}
