package service

import (
	"context"
	"fmt"

	"hotelier/config"
	"hotelier/infras/brevo"
	"hotelier/infras/otel"
	"hotelier/internal/domains/contact/model"
	"hotelier/internal/domains/contact/model/dto"
	"hotelier/internal/domains/contact/repository"
	"hotelier/internal/mail"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetContact    = "contact:get"
	cacheGetAllContact = "contact:gets"
)

type Contact interface {
	Create(ctx context.Context, req dto.CreateContactRequest) error
	GetAll(ctx context.Context) (dto.GetContactsResponse, error)
	Get(ctx context.Context, id string) (dto.ContactResponse, error)
	Update(ctx context.Context, req dto.UpdateContactRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo   repository.Contact
	cfg    *config.Config
	cache  cache.RedisCache
	mailer brevo.Client
	otel   otel.Otel
}

func New(repo repository.Contact, cfg *config.Config, cache cache.RedisCache, mailer brevo.Client, otel otel.Otel) Contact {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		mailer: mailer,
		otel:   otel,
	}
}

// Create stores the message and then notifies the admin plus auto-replies
// to the sender. Email failures are logged, never surfaced; the message is
// already saved at that point.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateContactRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	contact := req.ToModel()

	if err = s.repo.Insert(ctx, contact); err != nil {
		log.Error().Err(err).Msg("failed to create contact")

		return fmt.Errorf("failed to create contact: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllContact)
	}()

	for _, m := range mail.ContactEmails(s.cfg, contact.Name, contact.Email, contact.Message) {
		if mailErr := s.mailer.SendTransactional(ctx, m); mailErr != nil {
			log.Error().Err(mailErr).Msg("failed to send contact email")

			break
		}
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetContactsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.NewestFirst()
	filter := gDto.FilterGroup{}
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllContact, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for contacts")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contacts")

		return res, fmt.Errorf("failed to get contacts: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save contacts to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetContact, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for contact")

		return res, nil
	}

	contact, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get contact")

		return res, fmt.Errorf("failed to get contact: %w", err)
	}

	if contact.ID == constant.Empty {
		return res, failure.NotFound("contact not found") // nolint:wrapcheck
	}

	res.FromModel(contact)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save contact to cache")
		}
	}()

	return res, nil
}

// Update overwrites the whole editable row with the submitted form; blank
// fields clear the stored values.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateContactRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if contact exists")

		return fmt.Errorf("failed to check if contact exists: %w", err)
	}

	if !exist {
		log.Error().Msg("contact not found")

		return failure.NotFound("contact not found") // nolint:wrapcheck
	}

	updatedFields := req.ToFields()
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update contact")

		return fmt.Errorf("failed to update contact: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetContact, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete contact from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllContact)
	}()

	return nil
}

// Delete removes a contact by id; an id with no matching row still
// completes without error.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete contact")

		return fmt.Errorf("failed to delete contact: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetContact, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete contact from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllContact)
	}()

	return nil
}
