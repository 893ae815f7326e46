package booking

import (
	"context"

	"musicschool/models"
)

// BookingWorkflow runs the two-step reservation pipeline against one
// widget's Session: create the calendar event, then send the confirmation
// email. Step 2 runs only if step 1 succeeded, and a step 2 failure never
// fails the booking.
type BookingWorkflow interface {
	Submit(ctx context.Context, sess *Session, req models.BookingRequest) (*models.BookingResult, error)
}
