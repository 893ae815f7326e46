package mailer

import (
	"context"

	"musicschool/models"
)

// MailerService sends the school's transactional email: booking
// confirmations after a successful reservation and contact-form messages.
type MailerService interface {
	SendBookingConfirmation(ctx context.Context, req models.BookingRequest) error
	SendContactMessage(ctx context.Context, msg models.ContactMessage) error
}
