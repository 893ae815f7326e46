package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"musicschool/models"
	"musicschool/utils"
)

// ContactHandler forwards a contact-form message through the mailer.
// Unlike the booking confirmation, a failure here is the whole point of the
// request, so it is surfaced to the caller.
func (h *MailHandler) ContactHandler(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	if err := msg.Validate(); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	if err := h.Mailer.SendContactMessage(c.Request.Context(), msg); err != nil {
		h.Logger.Error("failed to send contact message",
			zap.String("email", msg.Email),
			zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to send message", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
