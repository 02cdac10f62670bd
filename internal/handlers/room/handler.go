package room

import (
	"net/http"

	"hotelier/infras/otel"
	"hotelier/internal/domains/room/service"
	"hotelier/shared/constant"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/api/rooms/status", handler.GetRoomStatuses)
}

// GetRoomStatuses serves the public room availability projection consumed
// by the booking widget.
func (handler *Handler) GetRoomStatuses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomStatuses")
	defer scope.End()

	statuses, err := handler.service.ListStatuses(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room statuses")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room statuses retrieved successfully")

	response.WithJSON(w, http.StatusOK, statuses)
}
