package session

//go:generate go run go.uber.org/mock/mockgen -source=./session.go -destination=./mocks/session_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"hotelier/config"
	"hotelier/shared/timezone"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session has expired")
)

// Claims represents the admin session token claims.
type Claims struct {
	Username  string `json:"username"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// Session issues and validates per-login admin session tokens. Each login
// gets its own signed token instead of flipping process-wide state.
type Session interface {
	Issue(username string) (string, time.Time, error)
	Validate(tokenString string) (*Claims, error)
}

type Service struct {
	config *config.Config
}

// New creates a new session token service
func New(cfg *config.Config) Session {
	return &Service{
		config: cfg,
	}
}

// Issue signs a new session token for the given admin username.
func (s *Service) Issue(username string) (string, time.Time, error) {
	now := timezone.Now()
	expiresAt := now.Add(time.Duration(s.config.Session.ExpireMin) * time.Minute)
	sessionID := uuid.NewString()

	claims := Claims{
		Username:  username,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.App.Name,
			Subject:   username,
			ID:        sessionID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString([]byte(s.config.Session.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return signedToken, expiresAt, nil
}

// Validate parses and verifies a session token.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Session.Secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Username == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
