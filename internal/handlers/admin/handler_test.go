package admin_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	brevoMocks "hotelier/infras/brevo/mocks"
	"hotelier/infras/otel/mocks"
	"hotelier/infras/session"
	authService "hotelier/internal/domains/auth/service"
	bookingMocks "hotelier/internal/domains/booking/mocks"
	bookingService "hotelier/internal/domains/booking/service"
	contactMocks "hotelier/internal/domains/contact/mocks"
	contactService "hotelier/internal/domains/contact/service"
	loungeMocks "hotelier/internal/domains/lounge/mocks"
	loungeModel "hotelier/internal/domains/lounge/model"
	loungeService "hotelier/internal/domains/lounge/service"
	roomMocks "hotelier/internal/domains/room/mocks"
	roomService "hotelier/internal/domains/room/service"
	eventMocks "hotelier/internal/events/mocks"
	"hotelier/internal/handlers/admin"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/constant"
	"hotelier/shared/timezone"
	"hotelier/transport/http/middleware"
)

type consoleMocks struct {
	lounges *loungeMocks.MockLounge
	cache   *cacheMocks.MockRedisCache
	session session.Session
}

// newConsole wires the admin handler the way the injector does, with the
// repositories and cache swapped for mocks.
func newConsole(t *testing.T) (http.Handler, consoleMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Admin.Username = "admin"
	cfg.Admin.Password = "secret"
	cfg.Session.Secret = "console-test-secret"
	cfg.Session.ExpireMin = 120
	cfg.Cache.TTL = 3600

	mockOtel := mocks.NewOtel()
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockMailer := brevoMocks.NewMockClient(ctrl)
	mockEvents := eventMocks.NewMockPublisher(ctrl)

	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockRooms := roomMocks.NewMockRoom(ctrl)
	mockContacts := contactMocks.NewMockContact(ctrl)
	mockLounges := loungeMocks.NewMockLounge(ctrl)

	sess := session.New(cfg)

	authSvc, err := authService.New(cfg, mockOtel, sess)
	assert.NoError(t, err)

	handler := admin.New(
		authSvc,
		bookingService.New(mockBookings, cfg, mockCache, mockMailer, mockEvents, mockOtel),
		roomService.New(mockRooms, cfg, mockCache, mockOtel),
		contactService.New(mockContacts, cfg, mockCache, mockMailer, mockOtel),
		loungeService.New(mockLounges, cfg, mockCache, mockMailer, mockEvents, mockOtel),
		middleware.NewAuthMiddleware(sess, mockOtel),
		cfg,
		mockOtel,
	)

	router := chi.NewRouter()
	handler.Router(router)

	return router, consoleMocks{lounges: mockLounges, cache: mockCache, session: sess}
}

func loginCookie(t *testing.T, sess session.Session) *http.Cookie {
	t.Helper()

	token, _, err := sess.Issue("admin")
	assert.NoError(t, err)

	return &http.Cookie{Name: constant.SessionCookieName, Value: token}
}

func TestAdminHandler_ListLounges(t *testing.T) {
	t.Run("lists lounge bookings for a logged in admin", func(t *testing.T) {
		router, deps := newConsole(t)

		deps.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		deps.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		deps.lounges.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]loungeModel.LoungeBooking{
				{
					ID:           "l-1",
					Name:         "Ada",
					Email:        "ada@example.com",
					Phone:        "0800000000",
					TableType:    "VIP",
					LoungeGuests: 4,
					Date:         "2026-10-01",
					Time:         "20:00",
					Status:       constant.StatusPending,
					CreatedAt:    timezone.Now(),
				},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/admin/lounge", nil)
		req.AddCookie(loginCookie(t, deps.session))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Lounge Bookings")
		assert.Contains(t, rec.Body.String(), "Ada")
		assert.Contains(t, rec.Body.String(), "VIP")
	})

	t.Run("redirects to login without a session", func(t *testing.T) {
		router, _ := newConsole(t)

		req := httptest.NewRequest(http.MethodGet, "/admin/lounge", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/admin/login", rec.Header().Get("Location"))
	})

	t.Run("load failure answers 500", func(t *testing.T) {
		router, deps := newConsole(t)

		deps.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		deps.lounges.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset"))

		req := httptest.NewRequest(http.MethodGet, "/admin/lounge", nil)
		req.AddCookie(loginCookie(t, deps.session))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
