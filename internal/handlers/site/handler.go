package site

import (
	"net/http"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/shared/constant"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	cfg  *config.Config
	otel otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		cfg:  cfg,
		otel: otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Root)
	router.Get("/api/test", handler.Test)
}

// Root answers the liveness probe used by the hosting platform.
func (handler *Handler) Root(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Root")
	defer scope.End()

	w.Header().Set(constant.RequestHeaderContentType, "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Hotel Booking API is running..."))
}

func (handler *Handler) Test(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Test")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, map[string]string{
		"status":  "success",
		"message": "Test route is working!",
	})
}
