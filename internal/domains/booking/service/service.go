package service

import (
	"context"
	"fmt"

	"hotelier/config"
	"hotelier/infras/brevo"
	"hotelier/infras/otel"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/repository"
	"hotelier/internal/events"
	"hotelier/internal/mail"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheRoomPrefix    = "room"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (emailSent bool, err error)
	GetAll(ctx context.Context) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Delete(ctx context.Context, id string) error
	ToggleStatus(ctx context.Context, id string) (newStatus string, err error)
}

type serviceImpl struct {
	repo   repository.Booking
	cfg    *config.Config
	cache  cache.RedisCache
	mailer brevo.Client
	events events.Publisher
	otel   otel.Otel
}

func New(
	repo repository.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	mailer brevo.Client,
	publisher events.Publisher,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		mailer: mailer,
		events: publisher,
		otel:   otel,
	}
}

// Create stores the booking and then attempts the notification emails. A
// failed email never rolls back the stored booking; callers get emailSent
// so the response can say which of the two happened.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (emailSent bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking := req.ToModel()

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return false, fmt.Errorf("failed to create booking: %w", err)
	}

	log.Info().Str("name", booking.Name).Str("room", booking.Room).Msg("booking saved")

	s.events.Publish(ctx, events.TypeBookingCreated, booking.ID, booking)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()

	emailSent = true

	for _, m := range mail.BookingEmails(s.cfg, booking) {
		if mailErr := s.mailer.SendTransactional(ctx, m); mailErr != nil {
			log.Error().Err(mailErr).Msg("failed to send booking email")

			emailSent = false

			break
		}
	}

	return emailSent, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.NewestFirst()
	filter := gDto.FilterGroup{}
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

// Update overwrites the whole editable row with the submitted form. Fields
// left blank on the edit form clear the stored values; status never moves
// through this path.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updatedFields := req.ToFields()
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()

	return nil
}

// Delete removes a booking by id. An id with no matching row is not an
// error; the admin console treats both outcomes as a completed delete.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()

	return nil
}

// ToggleStatus flips a booking between booked and available. Only "booked"
// flips back to "available"; any other stored value becomes "booked". The
// matching room row follows the booking inside one transaction.
func (s *serviceImpl) ToggleStatus(ctx context.Context, id string) (newStatus string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return "", fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return "", failure.NotFound("booking not found") // nolint:wrapcheck
	}

	newStatus = constant.StatusBooked
	if booking.Status == constant.StatusBooked {
		newStatus = constant.StatusAvailable
	}

	if err = s.repo.UpdateStatusWithRoom(ctx, id, booking.Room, newStatus); err != nil {
		log.Error().Err(err).Msg("failed to toggle booking status")

		return "", fmt.Errorf("failed to toggle booking status: %w", err)
	}

	s.events.Publish(ctx, events.TypeBookingStatusChanged, booking.ID, map[string]any{
		"bookingId": booking.ID,
		"room":      booking.Room,
		"status":    newStatus,
	})

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheRoomPrefix)
	}()

	return newStatus, nil
}
