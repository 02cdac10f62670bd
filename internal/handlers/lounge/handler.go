package lounge

import (
	"net/http"

	"hotelier/infras/otel"
	"hotelier/internal/domains/lounge/model/dto"
	"hotelier/internal/domains/lounge/service"
	"hotelier/shared/constant"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Lounge
	otel    otel.Otel
}

func New(service service.Lounge, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/lounge", handler.CreateLoungeBooking)
}

// CreateLoungeBooking stores a lounge table reservation. The widget only
// reads the success flag, so validation misses and server errors both
// answer 200 with success false.
func (handler *Handler) CreateLoungeBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateLoungeBooking")
	defer scope.End()

	req := dto.CreateLoungeBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate lounge booking request")

		response.WithFailure(writer, http.StatusOK, "All required fields must be filled.")

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create lounge booking")

		response.WithFailure(writer, http.StatusOK, constant.ResponseErrorServer)

		return
	}

	scope.AddEvent("Lounge booking created successfully")

	response.WithJSON(writer, http.StatusOK, response.Base{Success: true})
}
