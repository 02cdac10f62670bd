//go:build wireinject
// +build wireinject

package di

import (
	"hotelier/config"
	"hotelier/infras/brevo"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/infras/redis"
	"hotelier/infras/session"
	"hotelier/internal/events"
	"hotelier/shared/cache"
	"hotelier/transport/http"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/router"

	authService "hotelier/internal/domains/auth/service"
	bookingRepository "hotelier/internal/domains/booking/repository"
	bookingService "hotelier/internal/domains/booking/service"
	contactRepository "hotelier/internal/domains/contact/repository"
	contactService "hotelier/internal/domains/contact/service"
	loungeRepository "hotelier/internal/domains/lounge/repository"
	loungeService "hotelier/internal/domains/lounge/service"
	roomRepository "hotelier/internal/domains/room/repository"
	roomService "hotelier/internal/domains/room/service"

	adminHandler "hotelier/internal/handlers/admin"
	bookingHandler "hotelier/internal/handlers/booking"
	contactHandler "hotelier/internal/handlers/contact"
	loungeHandler "hotelier/internal/handlers/lounge"
	roomHandler "hotelier/internal/handlers/room"
	siteHandler "hotelier/internal/handlers/site"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	session.New,
	brevo.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var loungeDomain = wire.NewSet(
	loungeRepository.New,
	loungeService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	roomDomain,
	contactDomain,
	loungeDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	siteHandler.New,
	bookingHandler.New,
	contactHandler.New,
	loungeHandler.New,
	roomHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
