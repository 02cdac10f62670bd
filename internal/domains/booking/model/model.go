package model

import (
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldRoom      = "room"
	FieldGuests    = "guests"
	FieldCheckIn   = "check_in"
	FieldCheckOut  = "check_out"
	FieldStatus    = "status"
	FieldCreatedAt = "created_at"
)

// Booking is a guest reservation. Room is a denormalized room name, not a
// foreign key; zero or several rooms may carry the same name.
type Booking struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Room      string    `db:"room"`
	Guests    int       `db:"guests"`
	CheckIn   string    `db:"check_in"`
	CheckOut  string    `db:"check_out"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}
