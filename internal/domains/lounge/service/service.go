package service

import (
	"context"
	"fmt"

	"hotelier/config"
	"hotelier/infras/brevo"
	"hotelier/infras/otel"
	"hotelier/internal/domains/lounge/model/dto"
	"hotelier/internal/domains/lounge/repository"
	"hotelier/internal/events"
	"hotelier/internal/mail"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"

	"github.com/rs/zerolog/log"
)

const cacheGetAllLounge = "lounge:gets"

type Lounge interface {
	Create(ctx context.Context, req dto.CreateLoungeBookingRequest) error
	GetAll(ctx context.Context) (dto.GetLoungeBookingsResponse, error)
}

type serviceImpl struct {
	repo   repository.Lounge
	cfg    *config.Config
	cache  cache.RedisCache
	mailer brevo.Client
	events events.Publisher
	otel   otel.Otel
}

func New(
	repo repository.Lounge,
	cfg *config.Config,
	cache cache.RedisCache,
	mailer brevo.Client,
	publisher events.Publisher,
	otel otel.Otel,
) Lounge {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		mailer: mailer,
		events: publisher,
		otel:   otel,
	}
}

// Create stores the reservation, then sends the admin notification and the
// auto-reply. An email failure fails the whole call; the row stays saved.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateLoungeBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking := req.ToModel()

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create lounge booking")

		return fmt.Errorf("failed to create lounge booking: %w", err)
	}

	log.Info().
		Str("name", booking.Name).
		Str("tableType", booking.TableType).
		Str("date", booking.Date).
		Str("time", booking.Time).
		Msg("lounge booking saved")

	s.events.Publish(ctx, events.TypeLoungeBookingCreated, booking.ID, booking)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllLounge)
	}()

	for _, m := range mail.LoungeEmails(s.cfg, booking) {
		if err = s.mailer.SendTransactional(ctx, m); err != nil {
			log.Error().Err(err).Msg("failed to send lounge booking email")

			return fmt.Errorf("failed to send lounge booking email: %w", err)
		}
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetLoungeBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.NewestFirst()
	filter := gDto.FilterGroup{}
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllLounge, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for lounge bookings")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get lounge bookings")

		return res, fmt.Errorf("failed to get lounge bookings: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save lounge bookings to cache")
		}
	}()

	return res, nil
}
