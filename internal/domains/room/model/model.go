package model

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID     = "id"
	FieldName   = "name"
	FieldStatus = "status"
)

// DefaultRooms is the fixed inventory seeded on startup.
var DefaultRooms = []string{"Room 1", "Room 2", "Room 3", "Room 4", "Room 5"}

type Room struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Status string `db:"status"`
}
