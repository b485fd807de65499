package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Zachkp/portfolio/internal/mail"
	"github.com/Zachkp/portfolio/internal/store"
	"github.com/gin-gonic/gin"
)

type contactForm struct {
	Name    string `form:"fullName" binding:"required,max=200"`
	Email   string `form:"email" binding:"required,email,max=320"`
	Message string `form:"message" binding:"required,max=5000"`
}

func (s *Server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", gin.H{
		"title": "Contact Me",
		"site":  s.content,
	})
}

// submitContact keeps the message and forwards it by mail. Either one
// succeeding counts as delivered.
func (s *Server) submitContact(c *gin.Context) {
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in your name, a valid email address and a message.",
		})
		return
	}
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)

	ctx := c.Request.Context()
	stored := false
	if s.store != nil {
		_, err := s.store.SaveMessage(ctx, store.Message{Name: form.Name, Email: form.Email, Body: form.Message})
		if err != nil {
			s.log.WithError(err).Error("save contact message")
		} else {
			stored = true
		}
	}

	sent := false
	if s.mailer != nil {
		err := s.mailer.Send(ctx, mail.Contact{Name: form.Name, Email: form.Email, Message: form.Message})
		switch {
		case err == nil:
			sent = true
		case errors.Is(err, mail.ErrNotConfigured):
			s.log.Debug("contact mail skipped: SMTP not configured")
		default:
			s.log.WithError(err).Error("send contact mail")
		}
	}

	if !stored && !sent {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
