package service

import (
	"context"
	"fmt"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/internal/domains/room/model"
	"hotelier/internal/domains/room/model/dto"
	"hotelier/internal/domains/room/repository"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheRoomStatuses = "room:statuses"
	cacheGetAllRoom   = "room:gets"
)

type Room interface {
	ListStatuses(ctx context.Context) (dto.GetRoomStatusesResponse, error)
	GetAll(ctx context.Context) (dto.GetRoomsResponse, error)
	ToggleStatus(ctx context.Context, id string) (newStatus string, err error)
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// ListStatuses serves the public room-status projection, name ascending.
func (s *serviceImpl) ListStatuses(ctx context.Context) (res dto.GetRoomStatusesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListStatuses")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheRoomStatuses, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheRoomStatuses).Msg("cache hit for room statuses")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, s.sortedByName(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get room statuses")

		return res, fmt.Errorf("failed to get room statuses: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheRoomStatuses, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room statuses to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, s.sortedByName(), gDto.FilterGroup{})

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, s.sortedByName(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

// ToggleStatus flips a single room without touching any booking. Bookings
// referencing the room keep their stored status until toggled themselves.
func (s *serviceImpl) ToggleStatus(ctx context.Context, id string) (newStatus string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	room, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return "", fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return "", failure.NotFound("room not found") // nolint:wrapcheck
	}

	newStatus = constant.StatusBooked
	if room.Status == constant.StatusBooked {
		newStatus = constant.StatusAvailable
	}

	if err = s.repo.Update(ctx, map[string]any{model.FieldStatus: newStatus}, filter); err != nil {
		log.Error().Err(err).Msg("failed to toggle room status")

		return "", fmt.Errorf("failed to toggle room status: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, cacheRoomStatuses); err != nil {
			log.Error().Err(err).Msg("failed to delete room statuses from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoom)
	}()

	return newStatus, nil
}

func (s *serviceImpl) sortedByName() gDto.QueryParams {
	return gDto.QueryParams{
		SortBy:  model.FieldName,
		SortDir: gDto.SortDirAsc,
	}
}
