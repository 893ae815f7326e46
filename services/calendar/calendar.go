package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"musicschool/config"
	"musicschool/models"
	"musicschool/services/pricing"
	"musicschool/services/schedule"
)

// DefaultCalendarService implements CalendarService on top of the Google
// Calendar API, authenticated as a service account.
type DefaultCalendarService struct {
	svc        *gcal.Service
	calendarID string
	loc        *time.Location
}

// NewCalendarService builds the Google Calendar client from the
// service-account credentials in cfg. The private key is stored in the
// environment with literal "\n" sequences; they are unescaped here.
func NewCalendarService(ctx context.Context, cfg config.Config) (*DefaultCalendarService, error) {
	loc, err := time.LoadLocation(cfg.BookingTimezone)
	if err != nil {
		return nil, fmt.Errorf("calendar: invalid timezone %q: %w", cfg.BookingTimezone, err)
	}

	conf := &jwt.Config{
		Email:      cfg.GoogleClientEmail,
		PrivateKey: []byte(strings.ReplaceAll(cfg.GooglePrivateKey, `\n`, "\n")),
		Scopes:     []string{gcal.CalendarScope},
		TokenURL:   google.JWTTokenURL,
	}

	opts := []option.ClientOption{option.WithHTTPClient(conf.Client(ctx))}
	if cfg.GoogleProjectID != "" {
		opts = append(opts, option.WithQuotaProject(cfg.GoogleProjectID))
	}

	svc, err := gcal.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("calendar: failed to create client: %w", err)
	}

	return &DefaultCalendarService{
		svc:        svc,
		calendarID: cfg.GoogleCalendarID,
		loc:        loc,
	}, nil
}

// CreateEvent recomputes the event window and the price from the raw
// selection, builds the event and inserts it with update notifications
// suppressed so no invitations are sent.
func (s *DefaultCalendarService) CreateEvent(ctx context.Context, req models.BookingRequest) (*models.CalendarEvent, error) {
	ev, err := buildEvent(req, s.loc)
	if err != nil {
		return nil, err
	}

	created, err := s.svc.Events.Insert(s.calendarID, &gcal.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		Start: &gcal.EventDateTime{
			DateTime: ev.Start.DateTime,
			TimeZone: ev.Start.TimeZone,
		},
		End: &gcal.EventDateTime{
			DateTime: ev.End.DateTime,
			TimeZone: ev.End.TimeZone,
		},
	}).SendUpdates("none").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("calendar: failed to insert event: %w", err)
	}

	ev.ID = created.Id
	ev.HTMLLink = created.HtmlLink
	return ev, nil
}

// buildEvent derives the full event representation from a booking request.
// The price and the window come from the pricing table and the schedule
// calculator, never from client-supplied values.
func buildEvent(req models.BookingRequest, loc *time.Location) (*models.CalendarEvent, error) {
	start, end, err := schedule.EventWindow(req.Course.Date, req.Course.Heure, req.Course.Duree, loc)
	if err != nil {
		return nil, err
	}

	prix := pricing.Price(req.Course.Niveau, req.Course.Duree, req.Course.Type)

	description := fmt.Sprintf(
		"Type: %s\nNiveau: %s\nDurée: %s\nPrix: %g€\n\nContact: %s",
		req.Course.Type, req.Course.Niveau, req.Course.Duree, prix, req.Student.Email,
	)

	return &models.CalendarEvent{
		Summary:     fmt.Sprintf("Cours de %s - %s %s", req.Course.Instrument, req.Student.Prenom, req.Student.Nom),
		Description: description,
		Start: models.EventTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: loc.String(),
		},
		End: models.EventTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: loc.String(),
		},
	}, nil
}
