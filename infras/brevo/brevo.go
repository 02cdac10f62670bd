package brevo

//go:generate go run go.uber.org/mock/mockgen -source=./brevo.go -destination=./mocks/brevo_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/shared/constant"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	sendPath       = "/v3/smtp/email"
	requestTimeout = 10 * time.Second

	headerAPIKey = "api-key"
)

var (
	ErrNotConfigured = errors.New("brevo client not configured (missing API key)")
)

// Mail is one transactional email. At least one of HTMLContent and
// TextContent must be set.
type Mail struct {
	FromEmail   string
	ToEmails    []string
	Subject     string
	HTMLContent string
	TextContent string
}

// Client sends transactional emails through the Brevo HTTP API.
type Client interface {
	SendTransactional(ctx context.Context, mail Mail) error
}

type clientImpl struct {
	cfg  *config.Config
	http *http.Client
	otel otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	if cfg.Email.APIKey == "" {
		log.Warn().Msg("Brevo API key is not set. Emails will fail.")
	}

	return &clientImpl{
		cfg:  cfg,
		http: &http.Client{Timeout: requestTimeout},
		otel: ot,
	}
}

type recipient struct {
	Email string `json:"email"`
}

type sendRequest struct {
	Sender      recipient   `json:"sender"`
	To          []recipient `json:"to"`
	Subject     string      `json:"subject"`
	HTMLContent string      `json:"htmlContent,omitempty"`
	TextContent string      `json:"textContent,omitempty"`
}

func (c *clientImpl) SendTransactional(ctx context.Context, mail Mail) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".brevo.SendTransactional")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !c.cfg.Email.Enable {
		log.Debug().Str("subject", mail.Subject).Msg("email sending disabled, skipping")

		return nil
	}

	if c.cfg.Email.APIKey == "" {
		return ErrNotConfigured
	}

	payload := sendRequest{
		Sender:      recipient{Email: mail.FromEmail},
		Subject:     mail.Subject,
		HTMLContent: mail.HTMLContent,
		TextContent: mail.TextContent,
	}
	for _, to := range mail.ToEmails {
		payload.To = append(payload.To, recipient{Email: to})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Email.BaseURL+sendPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(headerAPIKey, c.cfg.Email.APIKey)

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call email API: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		apiError, _ := io.ReadAll(io.LimitReader(res.Body, 1024))

		return fmt.Errorf("email API returned %d: %s", res.StatusCode, string(apiError))
	}

	log.Info().
		Str("subject", mail.Subject).
		Strs("to", mail.ToEmails).
		Msg("Transactional email sent")

	return nil
}
