package handler

import (
	"net/http"

	"hotelier/config"
	"hotelier/di"
	"hotelier/shared/logger"
	"hotelier/transport/http/response"
)

// Handler adapts the service for serverless hosting; every invocation
// builds the handler from the cached config singleton.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service, err := di.InitializeService()
	if err != nil {
		response.WithUnhealthy(w)

		return
	}

	service.Handler().ServeHTTP(w, r)
}
