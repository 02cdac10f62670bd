package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/contact/model"
	gDto "hotelier/shared/dto"
	gRepo "hotelier/shared/repository"
)

type Contact interface {
	Insert(ctx context.Context, model model.Contact) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Contact, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Contact, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Contact]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Contact {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Contact](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
