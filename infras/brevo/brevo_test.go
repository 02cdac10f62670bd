package brevo_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelier/config"
	"hotelier/infras/brevo"
	"hotelier/infras/otel/mocks"
)

func newConfig(baseURL, apiKey string, enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.Email.Enable = enable
	cfg.Email.BaseURL = baseURL
	cfg.Email.APIKey = apiKey

	return cfg
}

func TestBrevo_SendTransactional(t *testing.T) {
	mail := brevo.Mail{
		FromEmail:   "noreply@hotel.test",
		ToEmails:    []string{"guest@example.com"},
		Subject:     "Booking Confirmation",
		HTMLContent: "<p>See you soon</p>",
	}

	t.Run("disabled client skips the API call", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected API call while email sending is disabled")
		}))
		defer server.Close()

		client := brevo.New(newConfig(server.URL, "key", false), mocks.NewOtel())

		err := client.SendTransactional(t.Context(), mail)

		assert.NoError(t, err)
	})

	t.Run("sends the payload with the API key", func(t *testing.T) {
		var (
			gotPath   string
			gotAPIKey string
			gotBody   map[string]any
		)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAPIKey = r.Header.Get("api-key")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)

			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := brevo.New(newConfig(server.URL, "key", true), mocks.NewOtel())

		err := client.SendTransactional(t.Context(), mail)

		assert.NoError(t, err)
		assert.Equal(t, "/v3/smtp/email", gotPath)
		assert.Equal(t, "key", gotAPIKey)
		assert.Equal(t, "Booking Confirmation", gotBody["subject"])
		assert.Equal(t, map[string]any{"email": "noreply@hotel.test"}, gotBody["sender"])
	})

	t.Run("missing API key fails", func(t *testing.T) {
		client := brevo.New(newConfig("http://localhost", "", true), mocks.NewOtel())

		err := client.SendTransactional(t.Context(), mail)

		assert.ErrorIs(t, err, brevo.ErrNotConfigured)
	})

	t.Run("API error status fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"invalid sender"}`, http.StatusBadRequest)
		}))
		defer server.Close()

		client := brevo.New(newConfig(server.URL, "key", true), mocks.NewOtel())

		err := client.SendTransactional(t.Context(), mail)

		assert.ErrorContains(t, err, "400")
	})
}
