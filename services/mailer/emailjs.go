package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"musicschool/config"
	"musicschool/models"
	"musicschool/services/pricing"
)

// DefaultSendEndpoint is the EmailJS REST send endpoint.
const DefaultSendEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSMailer implements MailerService against the EmailJS REST API.
// Every send is a single attempt; callers decide whether a failure is
// fatal (contact form) or swallowed (booking confirmation).
type EmailJSMailer struct {
	client     *http.Client
	endpoint   string
	serviceID  string
	templateID string
	publicKey  string
}

// sendRequest is the EmailJS wire format.
type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func NewEmailJSMailer(cfg config.Config) *EmailJSMailer {
	return &EmailJSMailer{
		client:     &http.Client{Timeout: 10 * time.Second},
		endpoint:   DefaultSendEndpoint,
		serviceID:  cfg.EmailJSServiceID,
		templateID: cfg.EmailJSTemplateID,
		publicKey:  cfg.EmailJSPublicKey,
	}
}

// SendBookingConfirmation sends the reservation summary to the student.
func (m *EmailJSMailer) SendBookingConfirmation(ctx context.Context, req models.BookingRequest) error {
	prix := pricing.Price(req.Course.Niveau, req.Course.Duree, req.Course.Type)
	message := fmt.Sprintf(
		"Votre cours de %s (%s, %s, %s) du %s à %s est réservé. Prix: %g€.",
		req.Course.Instrument, req.Course.Type, req.Course.Niveau, req.Course.Duree,
		req.Course.Date, req.Course.Heure, prix,
	)
	return m.send(ctx, map[string]string{
		"from_name":  req.Student.Prenom + " " + req.Student.Nom,
		"from_email": req.Student.Email,
		"message":    message,
	})
}

// SendContactMessage sends a contact-form message with the template's three
// interpolated fields.
func (m *EmailJSMailer) SendContactMessage(ctx context.Context, msg models.ContactMessage) error {
	return m.send(ctx, map[string]string{
		"from_name":  msg.Name,
		"from_email": msg.Email,
		"message":    msg.Message,
	})
}

func (m *EmailJSMailer) send(ctx context.Context, params map[string]string) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      m.serviceID,
		TemplateID:     m.templateID,
		UserID:         m.publicKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("mailer: failed to marshal send request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("mailer: failed to build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("mailer: send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("mailer: emailjs returned %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}
