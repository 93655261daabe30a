package web

import (
	"net/http"

	"gallery/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type ContactForm struct {
	Name    string `form:"name" binding:"required,max=20"`
	Email   string `form:"email" binding:"required,max=40"`
	Message string `form:"message" binding:"required,max=500"`
}

func ContactView(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.tmpl", nil)
}

func ContactSubmit(c *gin.Context) {
	form := ContactForm{}
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		c.HTML(http.StatusBadRequest, "contact.tmpl", gin.H{"error": err.Error()})
		return
	}
	if _, err := models.ContactCreate(form.Name, form.Email, form.Message); err != nil {
		c.HTML(http.StatusInternalServerError, "contact.tmpl", gin.H{
			"error": "Could not save your message, please try again.",
		})
		return
	}
	c.Redirect(http.StatusFound, "/all_contacts")
}

// AllContacts is a review/test listing only
func AllContacts(c *gin.Context) {
	contacts, err := models.ContactList()
	if err != nil {
		c.JSON(http.StatusInternalServerError, Response{Error: "DB Error 1"})
		return
	}
	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, contacts)
		return
	}
	c.HTML(http.StatusOK, "all_contacts.tmpl", gin.H{"contacts": contacts})
}
