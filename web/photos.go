package web

import (
	"errors"
	"net/http"
	"time"

	"gallery/models"
	"gallery/storage"
	"gallery/uploads"

	"github.com/gin-gonic/gin"
)

// PhotosView lists the current user's album in upload order.
// An empty album and a datastore failure are reported as different things.
func PhotosView(c *gin.Context, user *models.User) {
	albums, err := models.AlbumsForUser(user.ID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "photos.tmpl", gin.H{
			"error": "Sorry, the album is unavailable right now.",
		})
		return
	}
	photos := []PhotoInfo{}
	for _, a := range albums {
		photos = append(photos, PhotoInfo{
			Img:     a.Img,
			ImgName: a.ImgName,
			Time:    time.Unix(a.CreatedAt, 0).Format("2 Jan 2006 15:04"),
		})
	}
	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, photos)
		return
	}
	c.HTML(http.StatusOK, "photos.tmpl", gin.H{
		"photos": photos,
		"empty":  len(photos) == 0,
	})
}

// PhotoFetch serves a stored photo (or its thumbnail) to its owner only
func PhotoFetch(c *gin.Context, user *models.User) {
	name := c.Query("name")
	if name == "" {
		c.String(http.StatusBadRequest, "missing name")
		return
	}
	album, err := models.AlbumFindForUser(user.ID, name)
	if errors.Is(err, models.ErrNotFound) {
		c.String(http.StatusNotFound, "no such photo")
		return
	}
	if err != nil {
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}
	stor := storage.GetDefaultStorage()
	key := album.Img
	if c.Query("thumb") == "1" {
		if thumbKey := uploads.ThumbKey(key); stor.GetSize(thumbKey) > 0 {
			key = thumbKey
		}
	}
	c.Header("cache-control", "private, max-age=86400")
	stor.Serve(key, c.Request, c.Writer)
}
