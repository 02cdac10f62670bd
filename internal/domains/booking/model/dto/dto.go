package dto

import (
	"hotelier/internal/domains/booking/model"
	"hotelier/shared/constant"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

const (
	defaultRoomLabel = "Not specified"
	defaultGuests    = 1
)

// CreateBookingRequest carries the public booking form. None of the guest
// fields are mandatory; absent strings are stored empty.
type CreateBookingRequest struct {
	Name     string `json:"name"     validate:"omitempty,max=100"`
	Email    string `json:"email"    validate:"omitempty,email,max=100"`
	Phone    string `json:"phone"    validate:"omitempty,max=30"`
	Room     string `json:"room"     validate:"omitempty,max=100"`
	Guests   int    `json:"guests"   validate:"omitempty,min=1"`
	CheckIn  string `json:"checkIn"  validate:"omitempty"`
	CheckOut string `json:"checkOut" validate:"omitempty"`
}

func (c *CreateBookingRequest) ToModel() model.Booking {
	room := c.Room
	if room == "" {
		room = defaultRoomLabel
	}

	guests := c.Guests
	if guests == 0 {
		guests = defaultGuests
	}

	return model.Booking{
		ID:     uuid.NewString(),
		Name:   c.Name,
		Email:  c.Email,
		Phone:  c.Phone,
		Room:   room,
		Guests: guests,
		// New bookings start out "available"; the admin console flips
		// them to "booked" later.
		Status:    constant.StatusAvailable,
		CheckIn:   c.CheckIn,
		CheckOut:  c.CheckOut,
		CreatedAt: timezone.Now(),
	}
}

// UpdateBookingRequest is the admin edit form. Status is deliberately
// absent; it only changes through the toggle path.
type UpdateBookingRequest struct {
	Name     string `json:"name"     validate:"omitempty,max=100"`
	Email    string `json:"email"    validate:"omitempty,email,max=100"`
	Phone    string `json:"phone"    validate:"omitempty,max=30"`
	Room     string `json:"room"     validate:"omitempty,max=100"`
	Guests   int    `json:"guests"   validate:"omitempty,min=1"`
	CheckIn  string `json:"checkIn"  validate:"omitempty"`
	CheckOut string `json:"checkOut" validate:"omitempty"`
}

// ToFields maps every editable column, including blank ones, so an update
// overwrites the full row the way the edit form submits it.
func (u *UpdateBookingRequest) ToFields() map[string]any {
	return map[string]any{
		model.FieldName:     u.Name,
		model.FieldEmail:    u.Email,
		model.FieldPhone:    u.Phone,
		model.FieldRoom:     u.Room,
		model.FieldGuests:   u.Guests,
		model.FieldCheckIn:  u.CheckIn,
		model.FieldCheckOut: u.CheckOut,
	}
}

type BookingResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Room      string `json:"room"`
	Guests    int    `json:"guests"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Room = model.Room
	r.Guests = model.Guests
	r.CheckIn = model.CheckIn
	r.CheckOut = model.CheckOut
	r.Status = model.Status
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking) {
	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
