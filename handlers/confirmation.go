package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"musicschool/models"
	"musicschool/services/mailer"
	"musicschool/utils"
)

// MailHandler serves the confirmation-email and contact-form endpoints.
type MailHandler struct {
	Mailer mailer.MailerService
	Logger *zap.Logger
}

func NewMailHandler(m mailer.MailerService, logger *zap.Logger) *MailHandler {
	return &MailHandler{Mailer: m, Logger: logger}
}

// SendConfirmationHandler sends the booking confirmation email. Its callers
// treat a failure here as non-fatal to the booking; this endpoint still
// reports it honestly.
func (h *MailHandler) SendConfirmationHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	if err := h.Mailer.SendBookingConfirmation(c.Request.Context(), req); err != nil {
		h.Logger.Error("failed to send confirmation email",
			zap.String("email", req.Student.Email),
			zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to send confirmation email", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
