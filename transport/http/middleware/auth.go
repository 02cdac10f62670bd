package middleware

import (
	"context"
	"net/http"

	"hotelier/infras/otel"
	"hotelier/infras/session"
	"hotelier/shared/constant"

	"github.com/rs/zerolog/log"
)

// Auth guards the admin console. Requests without a valid session cookie
// are redirected to the login page rather than answered with 401, matching
// the browser-first console.
type Auth interface {
	RequireLogin(next http.Handler) http.Handler
}

type authImpl struct {
	sessionService session.Session
	otel           otel.Otel
}

func NewAuthMiddleware(sessionService session.Session, otel otel.Otel) Auth {
	return &authImpl{
		sessionService: sessionService,
		otel:           otel,
	}
}

func (m *authImpl) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		cookie, err := request.Cookie(constant.SessionCookieName)
		if err != nil {
			http.Redirect(writer, request, "/admin/login", http.StatusFound)

			return
		}

		claims, err := m.sessionService.Validate(cookie.Value)
		if err != nil {
			log.Warn().Err(err).Msg("rejected admin session")

			http.Redirect(writer, request, "/admin/login", http.StatusFound)

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyAdminUser, claims.Username)
		ctx = context.WithValue(ctx, constant.ContextKeySessionID, claims.SessionID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
