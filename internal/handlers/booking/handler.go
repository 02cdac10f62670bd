package booking

import (
	"net/http"

	"hotelier/infras/otel"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/service"
	"hotelier/shared/constant"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/book", handler.CreateBooking)
}

// CreateBooking stores a public booking request. The booking is saved even
// when the notification emails fail; the message tells the caller which of
// the two happened.
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	emailSent, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	message := "Booking saved & email sent"
	if !emailSent {
		message = "Booking saved (email failed to send)"
	}

	response.WithSuccess(writer, http.StatusOK, message)
}
