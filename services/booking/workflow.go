package booking

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"musicschool/models"
	"musicschool/services/calendar"
	"musicschool/services/mailer"
	"musicschool/services/pricing"
)

// User-facing status messages. No granular error detail is ever exposed
// here; full detail stays in the server logs.
const (
	successMessage = "Votre cours a été réservé avec succès ! Vous recevrez un email de confirmation."
	errorMessage   = "Une erreur est survenue lors de la réservation. Veuillez réessayer."
)

// DefaultBookingWorkflow implements BookingWorkflow. It holds only the
// shared collaborators; all per-widget state lives in the Session a caller
// passes to Submit, so concurrent submissions from different users proceed
// independently.
type DefaultBookingWorkflow struct {
	Calendar calendar.CalendarService
	Mailer   mailer.MailerService
	Logger   *zap.Logger
}

func NewBookingWorkflow(cal calendar.CalendarService, mail mailer.MailerService, logger *zap.Logger) *DefaultBookingWorkflow {
	return &DefaultBookingWorkflow{
		Calendar: cal,
		Mailer:   mail,
		Logger:   logger,
	}
}

// Submit runs one booking to completion against sess. The sequence is
// fixed: validate, create the calendar event, send the confirmation email.
// A validation failure triggers no external call at all. A calendar failure
// aborts the run before the email step. An email failure is logged and
// swallowed; the reservation already exists, so the user still sees a
// success.
func (w *DefaultBookingWorkflow) Submit(ctx context.Context, sess *Session, req models.BookingRequest) (*models.BookingResult, error) {
	if err := sess.begin(req); err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		sess.fail()
		return nil, NewInvalidInputError(err)
	}

	// The price travels in the payload for display only; the authoritative
	// value is always re-derived.
	req.Course.Prix = pricing.Price(req.Course.Niveau, req.Course.Duree, req.Course.Type)

	ev, err := w.Calendar.CreateEvent(ctx, req)
	if err != nil {
		w.Logger.Error("booking: calendar event creation failed",
			zap.String("instrument", req.Course.Instrument),
			zap.Error(err))
		sess.fail()
		return nil, NewCalendarError(err)
	}

	emailSent := true
	if err := w.Mailer.SendBookingConfirmation(ctx, req); err != nil {
		// The booking stands even when the notification does not go out.
		emailSent = false
		w.Logger.Error("booking: confirmation email failed",
			zap.String("email", req.Student.Email),
			zap.Error(err))
	}

	sess.succeed()
	return &models.BookingResult{
		Reference: uuid.New().String(),
		Event:     ev,
		EmailSent: emailSent,
		Message:   successMessage,
	}, nil
}
