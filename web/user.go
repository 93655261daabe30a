package web

import (
	"errors"
	"net/http"

	"gallery/auth"
	"gallery/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type LoginForm struct {
	Email    string `form:"email" binding:"required,max=50"`
	Password string `form:"password" binding:"required,min=5,max=100"`
	Remember bool   `form:"remember"`
}

type SignupForm struct {
	Username string `form:"username" binding:"required,min=5,max=50"`
	Email    string `form:"email" binding:"required,max=50"`
	Password string `form:"password" binding:"required,min=5,max=100"`
}

func LoginView(c *gin.Context) {
	session := auth.LoadSession(c)
	if session.User().ID != 0 {
		c.Redirect(http.StatusFound, "/upload")
		return
	}
	c.HTML(http.StatusOK, "login.tmpl", nil)
}

func Login(c *gin.Context) {
	session := auth.LoadSession(c)
	if session.User().ID != 0 {
		c.Redirect(http.StatusFound, "/upload")
		return
	}
	form := LoginForm{}
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		c.HTML(http.StatusBadRequest, "login.tmpl", gin.H{"error": err.Error()})
		return
	}
	user, err := models.UserLogin(form.Email, form.Password)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "login.tmpl", gin.H{"error": "Invalid Email or Password!"})
		return
	}
	session.LoginUser(&user, form.Remember)
	c.Redirect(http.StatusFound, "/upload")
}

func Logout(c *gin.Context) {
	auth.LoadSession(c).LogoutUser()
	c.Redirect(http.StatusFound, "/login")
}

func SignupView(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.tmpl", nil)
}

func Signup(c *gin.Context) {
	form := SignupForm{}
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		c.HTML(http.StatusBadRequest, "signup.tmpl", gin.H{"error": err.Error()})
		return
	}
	_, err := models.UserCreate(form.Username, form.Email, form.Password)
	if errors.Is(err, models.ErrDuplicateEmail) {
		c.HTML(http.StatusConflict, "signup.tmpl", gin.H{"error": "That email is already registered."})
		return
	}
	if err != nil {
		c.HTML(http.StatusInternalServerError, "signup.tmpl", gin.H{"error": "Could not create the account, please try again."})
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// UserListView is a debug/test listing only
func UserListView(c *gin.Context) {
	users, err := models.UserList()
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Error: "DB Error 1"})
		return
	}
	if c.Query("format") == "json" {
		result := []UserInfo{}
		for _, u := range users {
			result = append(result, UserInfo{ID: u.ID, Name: u.Name, Email: u.Email})
		}
		c.JSON(http.StatusOK, result)
		return
	}
	c.HTML(http.StatusOK, "users.tmpl", gin.H{"users": users})
}
