package mail_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelier/config"
	bookingModel "hotelier/internal/domains/booking/model"
	loungeModel "hotelier/internal/domains/lounge/model"
	"hotelier/internal/mail"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "Minista of Enjoyment Hotel"
	cfg.Email.From = "noreply@hotel.test"
	cfg.Email.AdminEmail = "admin@hotel.test"

	return cfg
}

func TestBookingEmails(t *testing.T) {
	cfg := newConfig()

	booking := bookingModel.Booking{
		Name:     "Ada",
		Email:    "ada@example.com",
		Phone:    "0800000000",
		Room:     "Room 2",
		Guests:   2,
		CheckIn:  "2026-10-01",
		CheckOut: "2026-10-03",
	}

	mails := mail.BookingEmails(cfg, booking)

	assert.Len(t, mails, 2)

	admin := mails[0]
	assert.Equal(t, []string{"admin@hotel.test"}, admin.ToEmails)
	assert.Equal(t, "New Booking Received from Ada", admin.Subject)
	assert.Contains(t, admin.TextContent, "Room: Room 2")
	assert.Contains(t, admin.HTMLContent, "Check-in:</strong> 2026-10-01")

	guest := mails[1]
	assert.Equal(t, []string{"ada@example.com"}, guest.ToEmails)
	assert.Contains(t, guest.Subject, "Booking Confirmation")
	assert.Contains(t, guest.TextContent, "Thank you for booking with Minista of Enjoyment Hotel")
}

func TestBookingEmails_NoGuestAddress(t *testing.T) {
	cfg := newConfig()

	mails := mail.BookingEmails(cfg, bookingModel.Booking{Name: "Walk-in"})

	assert.Len(t, mails, 1)
	assert.Equal(t, []string{"admin@hotel.test"}, mails[0].ToEmails)
}

func TestContactEmails(t *testing.T) {
	cfg := newConfig()

	mails := mail.ContactEmails(cfg, "Ada", "ada@example.com", "Do you have rooms?")

	assert.Len(t, mails, 2)
	assert.Equal(t, "New Contact Message from Ada", mails[0].Subject)
	assert.Contains(t, mails[0].HTMLContent, "Do you have rooms?")
	assert.Equal(t, []string{"ada@example.com"}, mails[1].ToEmails)
	assert.Contains(t, mails[1].Subject, "Thanks for contacting")
}

func TestContactEmails_NoSenderAddress(t *testing.T) {
	cfg := newConfig()

	mails := mail.ContactEmails(cfg, "Ada", "", "Hello")

	assert.Len(t, mails, 1)
}

func TestLoungeEmails(t *testing.T) {
	cfg := newConfig()

	booking := loungeModel.LoungeBooking{
		Name:         "Ada",
		Email:        "ada@example.com",
		Phone:        "0800000000",
		TableType:    "VIP",
		LoungeGuests: 4,
		Date:         "2026-10-01",
		Time:         "20:00",
		Message:      "Birthday table",
	}

	mails := mail.LoungeEmails(cfg, booking)

	assert.Len(t, mails, 2)
	assert.Equal(t, "New Lounge Booking: VIP", mails[0].Subject)
	assert.Contains(t, mails[0].HTMLContent, "Birthday table")
	assert.Equal(t, []string{"ada@example.com"}, mails[1].ToEmails)
	assert.Contains(t, mails[1].HTMLContent, "lounge booking request for <strong>VIP</strong>")
}

func TestLoungeEmails_DefaultMessage(t *testing.T) {
	cfg := newConfig()

	mails := mail.LoungeEmails(cfg, loungeModel.LoungeBooking{
		Name:      "Ada",
		Email:     "ada@example.com",
		TableType: "Regular",
	})

	assert.Contains(t, mails[0].HTMLContent, "No message provided")
}
