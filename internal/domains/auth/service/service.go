package service

import (
	"context"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/infras/session"
	"hotelier/internal/domains/auth/model/dto"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/shared/password"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
}

type serviceImpl struct {
	cfg            *config.Config
	otel           otel.Otel
	sessionService session.Session
	// bcrypt hash of the configured admin password, computed once at
	// construction so Login never handles the plaintext.
	adminHash string
}

func New(cfg *config.Config, otel otel.Otel, sessionService session.Session) (Auth, error) {
	adminHash, err := password.Hash(cfg.Admin.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash admin password")

		return nil, err
	}

	return &serviceImpl{
		cfg:            cfg,
		otel:           otel,
		sessionService: sessionService,
		adminHash:      adminHash,
	}, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Username != s.cfg.Admin.Username {
		log.Warn().Str("username", req.Username).Msg("login attempt with unknown username")

		return res, failure.Unauthorized("invalid credentials") // nolint:wrapcheck
	}

	if err = password.Verify(req.Password, s.adminHash); err != nil {
		log.Warn().Str("username", req.Username).Msg("login attempt with wrong password")

		return res, failure.Unauthorized("invalid credentials") // nolint:wrapcheck
	}

	token, expiresAt, err := s.sessionService.Issue(req.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue session token")

		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	return dto.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}
