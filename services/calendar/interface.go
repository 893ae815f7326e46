package calendar

import (
	"context"

	"musicschool/models"
)

// CalendarService creates lesson events against the school's single
// calendar identity.
type CalendarService interface {
	CreateEvent(ctx context.Context, req models.BookingRequest) (*models.CalendarEvent, error)
}
