package repository_test

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"hotelier/infras/otel/mocks"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/booking/repository"
)

const (
	updateBookingQuery = `UPDATE bookings SET status = \$1\s+WHERE \(bookings\.id = \$2\)`
	updateRoomQuery    = `UPDATE rooms SET status = \$1\s+WHERE \(rooms\.name = \$2\)`
)

func newRepository(t *testing.T) (repository.Booking, sqlmock.Sqlmock) {
	t.Helper()

	mockDb, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDb.Close() })

	db := sqlx.NewDb(mockDb, "postgres")
	conn := &postgres.Connection{Read: db, Write: db}

	return repository.New(conn, mocks.NewOtel()), mock
}

func TestBookingRepository_UpdateStatusWithRoom(t *testing.T) {
	t.Parallel()

	t.Run("writes booking and room in one transaction", func(t *testing.T) {
		t.Parallel()

		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(updateBookingQuery).
			WithArgs("booked", "b-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(updateRoomQuery).
			WithArgs("booked", "Room 1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.UpdateStatusWithRoom(t.Context(), "b-1", "Room 1", "booked")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("room update failure rolls back the booking write", func(t *testing.T) {
		t.Parallel()

		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(updateBookingQuery).
			WithArgs("available", "b-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(updateRoomQuery).
			WithArgs("available", "Room 2").
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.UpdateStatusWithRoom(t.Context(), "b-1", "Room 2", "available")

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("booking update failure skips the room write", func(t *testing.T) {
		t.Parallel()

		repo, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(updateBookingQuery).
			WithArgs("booked", "missing").
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		err := repo.UpdateStatusWithRoom(t.Context(), "missing", "Room 1", "booked")

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
