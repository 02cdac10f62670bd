package response

import (
	"encoding/json"
	"net/http"

	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/shared/logger"
)

// Base is the envelope every JSON endpoint answers with.
type Base struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// WithSuccess sends a success envelope with a message.
func WithSuccess(writer http.ResponseWriter, code int, message string) {
	respond(writer, code, Base{Success: true, Message: message})
}

// WithFailure sends a failure envelope without treating it as a server
// error; validation misses answer 200 with success false.
func WithFailure(writer http.ResponseWriter, code int, message string) {
	respond(writer, code, Base{Success: false, Message: message})
}

// WithJSON sends an arbitrary JSON payload.
func WithJSON(writer http.ResponseWriter, code int, payload interface{}) {
	respond(writer, code, payload)
}

// WithError maps a failure to its HTTP code. Internal errors hide the
// cause behind a generic message.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = constant.ResponseErrorServer
	}

	respond(writer, code, Base{Success: false, Message: message})
}

// WithHTML sends a rendered HTML page.
func WithHTML(writer http.ResponseWriter, code int, body []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	writer.WriteHeader(code)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithFailure(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithFailure(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithFailure(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func respond(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
