package contact

import (
	"net/http"

	"hotelier/infras/otel"
	"hotelier/internal/domains/contact/model/dto"
	"hotelier/internal/domains/contact/service"
	"hotelier/shared/constant"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/contact", handler.CreateContact)
}

// CreateContact stores a contact form submission. Emails are best-effort;
// the saved message always answers "Contact saved".
func (handler *Handler) CreateContact(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateContact")
	defer scope.End()

	req := dto.CreateContactRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create contact")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Contact created successfully")

	response.WithSuccess(writer, http.StatusOK, "Contact saved")
}
