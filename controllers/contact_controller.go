package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tannu371/getting-to-know-kanji/metrics"
	"github.com/tannu371/getting-to-know-kanji/sender"
)

type ContactController struct {
	Sender   sender.EmailSender
	Receiver string
	Logger   *zap.Logger
}

func NewContactController(emailSender sender.EmailSender, receiver string, logger *zap.Logger) *ContactController {
	return &ContactController{Sender: emailSender, Receiver: receiver, Logger: logger}
}

// SubmitContact validates a contact-form submission and relays it by email.
// All three fields are required; nothing is sent when any is missing.
func (cc *ContactController) SubmitContact(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	if cc.Sender == nil {
		cc.Logger.Error("Contact form submitted but no SMTP relay is configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	subject := "New contact from " + req.Name
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", req.Name, req.Email, req.Message)

	if _, err := cc.Sender.SendEmail(c.Request.Context(), cc.Receiver, subject, body); err != nil {
		metrics.ContactEmailsTotal.WithLabelValues("failed").Inc()
		cc.Logger.Error("Email error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	metrics.ContactEmailsTotal.WithLabelValues("sent").Inc()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
