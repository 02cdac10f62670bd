package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	brevoMocks "hotelier/infras/brevo/mocks"
	"hotelier/infras/otel/mocks"
	contactMocks "hotelier/internal/domains/contact/mocks"
	"hotelier/internal/domains/contact/model"
	"hotelier/internal/domains/contact/model/dto"
	"hotelier/internal/domains/contact/service"
	cacheMocks "hotelier/shared/cache/mocks"
	gDto "hotelier/shared/dto"
	"hotelier/shared/timezone"
)

func newService(t *testing.T) (
	service.Contact,
	*contactMocks.MockContact,
	*cacheMocks.MockRedisCache,
	*brevoMocks.MockClient,
) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := contactMocks.NewMockContact(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockMailer := brevoMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Email.AdminEmail = "admin@hotel.test"
	cfg.Email.From = "noreply@hotel.test"

	svc := service.New(mockRepo, cfg, mockCache, mockMailer, mockOtel)

	return svc, mockRepo, mockCache, mockMailer
}

func TestContactService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateContactRequest
		setupMock func(repo *contactMocks.MockContact, cache *cacheMocks.MockRedisCache, mailer *brevoMocks.MockClient)
		wantErr   bool
	}{
		{
			name: "contact saved and emails sent",
			req: dto.CreateContactRequest{
				Name:    "Ada",
				Email:   "ada@example.com",
				Message: "Do you have rooms in October?",
			},
			setupMock: func(repo *contactMocks.MockContact, cache *cacheMocks.MockRedisCache, mailer *brevoMocks.MockClient) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				// Admin notification plus auto-reply.
				mailer.EXPECT().
					SendTransactional(gomock.Any(), gomock.Any()).
					Return(nil).
					Times(2)

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "contact saved when email fails",
			req: dto.CreateContactRequest{
				Name:    "Ada",
				Email:   "ada@example.com",
				Message: "Hello",
			},
			setupMock: func(repo *contactMocks.MockContact, cache *cacheMocks.MockRedisCache, mailer *brevoMocks.MockClient) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mailer.EXPECT().
					SendTransactional(gomock.Any(), gomock.Any()).
					Return(errors.New("brevo unavailable"))

				cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateContactRequest{
				Name: "Ada",
			},
			setupMock: func(repo *contactMocks.MockContact, cache *cacheMocks.MockRedisCache, mailer *brevoMocks.MockClient) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, mockMailer := newService(t)
			tt.setupMock(mockRepo, mockCache, mockMailer)

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContactService_GetAll(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *contactMocks.MockContact, cache *cacheMocks.MockRedisCache)
		wantErr   bool
		wantCount int
	}{
		{
			name: "cache hit",
			setupMock: func(repo *contactMocks.MockContact, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			setupMock: func(repo *contactMocks.MockContact, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Contact{
						{ID: "c-1", Name: "Ada", CreatedAt: timezone.Now()},
					}, nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantCount: 1,
		},
		{
			name: "repository error",
			setupMock: func(repo *contactMocks.MockContact, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, _ := newService(t)
			tt.setupMock(mockRepo, mockCache)

			res, err := svc.GetAll(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, res.Contacts, tt.wantCount)
			}
		})
	}
}

func TestContactService_Get(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *contactMocks.MockContact, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "cache hit",
			id:   "c-1",
			setupMock: func(repo *contactMocks.MockContact, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   "c-1",
			setupMock: func(repo *contactMocks.MockContact, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Contact{ID: "c-1", Name: "Ada", CreatedAt: timezone.Now()}, nil)

				cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "contact not found",
			id:   "nonexistent-id",
			setupMock: func(repo *contactMocks.MockContact, cache *cacheMocks.MockRedisCache) {
				cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Contact{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, _ := newService(t)
			tt.setupMock(mockRepo, mockCache)

			_, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContactService_Update(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdateContactRequest
		id        string
		setupMock func(repo *contactMocks.MockContact, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdateContactRequest{Name: "Updated Name"},
			id:   "c-1",
			setupMock: func(repo *contactMocks.MockContact, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			// A form submitted with every field blank still overwrites the row.
			name: "empty update request overwrites",
			req:  dto.UpdateContactRequest{},
			id:   "c-1",
			setupMock: func(repo *contactMocks.MockContact, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "contact not found",
			req:  dto.UpdateContactRequest{Name: "Updated Name"},
			id:   "nonexistent-id",
			setupMock: func(repo *contactMocks.MockContact, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, _ := newService(t)
			tt.setupMock(mockRepo, mockCache)

			err := svc.Update(context.Background(), tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestContactService_UpdateOverwritesFullRow(t *testing.T) {
	svc, mockRepo, mockCache, _ := newService(t)

	var updated map[string]any

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil)

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			updated = fields

			return nil
		})

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// The message cleared on the edit form must clear the stored message.
	err := svc.Update(context.Background(), dto.UpdateContactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "",
	}, "c-1")

	assert.NoError(t, err)
	assert.Len(t, updated, 3)
	assert.Equal(t, "", updated[model.FieldMessage])
	assert.Equal(t, "Ada", updated[model.FieldName])
}

func TestContactService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(repo *contactMocks.MockContact, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "successful deletion",
			id:   "c-1",
			setupMock: func(repo *contactMocks.MockContact, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "unknown id still succeeds",
			id:   "nonexistent-id",
			setupMock: func(repo *contactMocks.MockContact, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "delete error",
			id:   "c-1",
			setupMock: func(repo *contactMocks.MockContact, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("delete error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache, _ := newService(t)
			tt.setupMock(mockRepo, mockCache)

			err := svc.Delete(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
