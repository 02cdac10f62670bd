package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/booking/model"
	roomModel "hotelier/internal/domains/room/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gRepo "hotelier/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	UpdateStatusWithRoom(ctx context.Context, id, roomName, status string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	rooms gRepo.Repository[roomModel.Room]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		rooms:      gRepo.NewRepository[roomModel.Room](roomModel.EntityName, roomModel.TableName, roomModel.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UpdateStatusWithRoom writes the booking status and the matching room row
// in a single transaction. Rooms are matched by name; a booking whose room
// label has no counterpart in the rooms table still gets its own status
// updated and the room statement is a no-op.
func (repo *repositoryImpl) UpdateStatusWithRoom(ctx context.Context, id, roomName, status string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".UpdateStatusWithRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	statusPatch := map[string]any{model.FieldStatus: status}
	err = repo.UpdateTx(ctx, tx, statusPatch, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return err
	}

	roomPatch := map[string]any{roomModel.FieldStatus: status}
	err = repo.rooms.UpdateTx(ctx, tx, roomPatch, shared.FilterByField(roomName, roomModel.FieldName, roomModel.TableName))
	if err != nil {
		return err
	}

	return nil
}
