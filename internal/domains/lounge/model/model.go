package model

import "time"

const (
	TableName  = "lounge_bookings"
	EntityName = "lounge booking"

	FieldID           = "id"
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldTableType    = "table_type"
	FieldLoungeGuests = "lounge_guests"
	FieldDate         = "date"
	FieldTime         = "time"
	FieldMessage      = "message"
	FieldStatus       = "status"
	FieldCreatedAt    = "created_at"
)

type LoungeBooking struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	TableType    string    `db:"table_type"`
	LoungeGuests int       `db:"lounge_guests"`
	Date         string    `db:"date"`
	Time         string    `db:"time"`
	Message      string    `db:"message"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}
