package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musicschool/models"
)

func newTestMailer(endpoint string) *EmailJSMailer {
	return &EmailJSMailer{
		client:     &http.Client{Timeout: 2 * time.Second},
		endpoint:   endpoint,
		serviceID:  "service_test",
		templateID: "template_test",
		publicKey:  "public_test",
	}
}

func TestSendContactMessagePayload(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := newTestMailer(srv.URL)
	err := m.SendContactMessage(context.Background(), models.ContactMessage{
		Name:    "Jean Dupont",
		Email:   "jean@example.com",
		Message: "Bonjour",
	})
	require.NoError(t, err)

	assert.Equal(t, "service_test", got.ServiceID)
	assert.Equal(t, "template_test", got.TemplateID)
	assert.Equal(t, "public_test", got.UserID)
	assert.Equal(t, "Jean Dupont", got.TemplateParams["from_name"])
	assert.Equal(t, "jean@example.com", got.TemplateParams["from_email"])
	assert.Equal(t, "Bonjour", got.TemplateParams["message"])
}

func TestSendBookingConfirmationIncludesRecomputedPrice(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := newTestMailer(srv.URL)
	err := m.SendBookingConfirmation(context.Background(), models.BookingRequest{
		Course: models.CourseSelection{
			Instrument: "Basse",
			Type:       models.TypeIndividuel,
			Niveau:     models.NiveauDebutant,
			Duree:      models.Duree1H,
			Date:       "2024-06-01",
			Heure:      "10:00",
		},
		Student: models.StudentInfo{Nom: "Dupont", Prenom: "Marie", Email: "marie@example.com"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Marie Dupont", got.TemplateParams["from_name"])
	assert.Contains(t, got.TemplateParams["message"], "45€")
	assert.Contains(t, got.TemplateParams["message"], "2024-06-01")
}

func TestSendNonSuccessStatusIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid public key", http.StatusForbidden)
	}))
	defer srv.Close()

	m := newTestMailer(srv.URL)
	err := m.SendContactMessage(context.Background(), models.ContactMessage{
		Name: "Jean", Email: "jean@example.com", Message: "Bonjour",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}
