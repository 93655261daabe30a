package web

import (
	"net/http"

	"gallery/auth"

	"github.com/gin-gonic/gin"
)

// Home shows a Login or Logout action depending on the session state
func Home(c *gin.Context) {
	session := auth.LoadSession(c)
	user := session.User()
	action, value := "login", "Login"
	if user.ID != 0 {
		action, value = "logout", "Logout"
	}
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"action": action,
		"value":  value,
		"name":   user.Name,
	})
}

func Features(c *gin.Context) {
	c.HTML(http.StatusOK, "features.tmpl", nil)
}

// Search only echoes the query back into the results view
func Search(c *gin.Context) {
	c.HTML(http.StatusOK, "search.tmpl", gin.H{
		"query": c.Query("search_q"),
	})
}

func DisallowRobots(c *gin.Context) {
	c.String(http.StatusOK, "User-agent: *\nDisallow: /\n")
}
