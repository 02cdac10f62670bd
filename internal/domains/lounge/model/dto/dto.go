package dto

import (
	"hotelier/internal/domains/lounge/model"
	"hotelier/shared/constant"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

// CreateLoungeBookingRequest keeps the original field names of the lounge
// widget, including the LoungeGuest casing. All fields except message are
// required.
type CreateLoungeBookingRequest struct {
	Name         string `json:"name"        validate:"required,max=100"`
	Email        string `json:"email"       validate:"required,email,max=100"`
	Phone        string `json:"phone"       validate:"required,max=30"`
	TableType    string `json:"tableType"   validate:"required,max=100"`
	LoungeGuests int    `json:"LoungeGuest" validate:"required,min=1"`
	Date         string `json:"date"        validate:"required"`
	Time         string `json:"time"        validate:"required"`
	Message      string `json:"message"     validate:"omitempty"`
}

func (c *CreateLoungeBookingRequest) ToModel() model.LoungeBooking {
	return model.LoungeBooking{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Email:        c.Email,
		Phone:        c.Phone,
		TableType:    c.TableType,
		LoungeGuests: c.LoungeGuests,
		Date:         c.Date,
		Time:         c.Time,
		Message:      c.Message,
		Status:       constant.StatusPending,
		CreatedAt:    timezone.Now(),
	}
}

type LoungeBookingResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	TableType    string `json:"tableType"`
	LoungeGuests int    `json:"LoungeGuest"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Message      string `json:"message"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

func (r *LoungeBookingResponse) FromModel(model model.LoungeBooking) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.TableType = model.TableType
	r.LoungeGuests = model.LoungeGuests
	r.Date = model.Date
	r.Time = model.Time
	r.Message = model.Message
	r.Status = model.Status
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

type GetLoungeBookingsResponse struct {
	Bookings []LoungeBookingResponse `json:"bookings"`
}

func (r *GetLoungeBookingsResponse) FromModels(models []model.LoungeBooking) {
	r.Bookings = make([]LoungeBookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
