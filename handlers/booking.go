package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"musicschool/models"
	"musicschool/services/booking"
	"musicschool/services/calendar"
	"musicschool/utils"
)

// BookingHandler serves the reservation endpoints.
type BookingHandler struct {
	Workflow booking.BookingWorkflow
	Calendar calendar.CalendarService
	Logger   *zap.Logger
}

func NewBookingHandler(workflow booking.BookingWorkflow, cal calendar.CalendarService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Workflow: workflow, Calendar: cal, Logger: logger}
}

// CreateCalendarEventHandler validates the booking payload, recomputes the
// event window server-side and inserts the event into the school calendar.
// Nothing client-supplied beyond the raw selection is trusted.
func (h *BookingHandler) CreateCalendarEventHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	event, err := h.Calendar.CreateEvent(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("failed to create calendar event",
			zap.String("instrument", req.Course.Instrument),
			zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create calendar event", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "event": event})
}

// BookCourseHandler runs the full two-step booking workflow so the widget
// can submit once. The response carries the terminal state, including
// whether the confirmation email went out.
func (h *BookingHandler) BookCourseHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	// Each request is its own widget session; the in-progress guard only
	// ever applies within one submission, never across users.
	result, err := h.Workflow.Submit(c.Request.Context(), booking.NewSession(), req)
	if err != nil {
		var wfErr *booking.WorkflowError
		status := http.StatusInternalServerError
		category := "booking failed"
		if errors.As(err, &wfErr) {
			switch wfErr.Code {
			case booking.CodeInvalidInput:
				status = http.StatusBadRequest
				category = "invalid request"
			case booking.CodeInProgress:
				status = http.StatusConflict
				category = "submission in progress"
			case booking.CodeCalendarFailure:
				category = "failed to create calendar event"
			}
		}
		utils.JSONError(c, status, category, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": result})
}
