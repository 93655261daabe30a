package main

import (
	"log"
	"strings"
	"time"

	"gallery/auth"
	"gallery/config"
	"gallery/db"
	"gallery/models"
	"gallery/storage"
	"gallery/utils"
	"gallery/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const sessionCookieName = "token"

func main() {
	db.Init()
	models.Init()
	storage.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	// HTML templates
	router.LoadHTMLGlob("templates/*.tmpl")

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: auth.RememberMaxAge})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/photo"})))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default, individual end-points can override that

	// Public pages
	router.GET("/", web.Home)
	router.GET("/login", web.LoginView)
	router.POST("/login", web.Login)
	router.GET("/logout", web.Logout)
	router.GET("/signup", web.SignupView)
	router.POST("/signup", web.Signup)
	router.GET("/search", web.Search)
	router.POST("/search", web.Search)
	router.GET("/features", web.Features)
	// Contact form
	router.GET("/contact", web.ContactView)
	router.POST("/do_contact", web.ContactSubmit)
	router.GET("/all_contacts", web.AllContacts)
	// Debug/test listing
	router.GET("/users", web.UserListView)
	// Misc
	router.GET("/robots.txt", web.DisallowRobots)

	// Pages requiring a logged-in user
	authRouter := &auth.Router{Base: router}
	authRouter.GET("/upload", web.UploadView)
	authRouter.POST("/uploader", web.UploadFile)
	authRouter.GET("/photos", web.PhotosView)
	authRouter.GET("/photo", web.PhotoFetch)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
