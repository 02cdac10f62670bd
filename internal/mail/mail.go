// Package mail builds the transactional emails sent for bookings, lounge
// reservations and contact messages. Builders only assemble brevo.Mail
// values; sending stays with the caller.
package mail

import (
	"fmt"

	"hotelier/config"
	"hotelier/infras/brevo"
	bookingModel "hotelier/internal/domains/booking/model"
	loungeModel "hotelier/internal/domains/lounge/model"
)

// BookingEmails returns the admin notification plus, when the guest left an
// email address, the guest confirmation.
func BookingEmails(cfg *config.Config, booking bookingModel.Booking) []brevo.Mail {
	from := cfg.Email.From
	hotel := cfg.App.Name

	mails := []brevo.Mail{
		{
			FromEmail: from,
			ToEmails:  []string{cfg.Email.AdminEmail},
			Subject:   fmt.Sprintf("New Booking Received from %s", booking.Name),
			TextContent: fmt.Sprintf(
				"New booking details:\nName: %s\nEmail: %s\nPhone: %s\nRoom: %s\nGuests: %d\nCheck-in: %s\nCheck-out: %s",
				booking.Name, booking.Email, booking.Phone, booking.Room, booking.Guests, booking.CheckIn, booking.CheckOut,
			),
			HTMLContent: fmt.Sprintf(
				`<div style="font-family:Arial,sans-serif">
  <h3>New Booking Received</h3>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Email:</strong> %s</p>
  <p><strong>Phone:</strong> %s</p>
  <p><strong>Room:</strong> %s</p>
  <p><strong>Guests:</strong> %d</p>
  <p><strong>Check-in:</strong> %s</p>
  <p><strong>Check-out:</strong> %s</p>
</div>`,
				booking.Name, booking.Email, booking.Phone, booking.Room, booking.Guests, booking.CheckIn, booking.CheckOut,
			),
		},
	}

	if booking.Email == "" {
		return mails
	}

	return append(mails, brevo.Mail{
		FromEmail: from,
		ToEmails:  []string{booking.Email},
		Subject:   fmt.Sprintf("Booking Confirmation — %s", hotel),
		TextContent: fmt.Sprintf(
			"Hello %s,\n\nThank you for booking with %s.\nHere are your booking details:\n\nRoom: %s\nGuests: %d\nCheck-in: %s\nCheck-out: %s\n\nWe look forward to your stay!\n\n— %s",
			booking.Name, hotel, booking.Room, booking.Guests, booking.CheckIn, booking.CheckOut, hotel,
		),
		HTMLContent: fmt.Sprintf(
			`<div style="font-family:Arial,sans-serif">
  <h3>Hello %s,</h3>
  <p>Thank you for booking with <strong>%s</strong>.</p>
  <p>Here are your booking details:</p>
  <ul>
    <li><strong>Room:</strong> %s</li>
    <li><strong>Guests:</strong> %d</li>
    <li><strong>Check-in:</strong> %s</li>
    <li><strong>Check-out:</strong> %s</li>
  </ul>
  <p>We look forward to your stay!</p>
  <p>— %s</p>
</div>`,
			booking.Name, hotel, booking.Room, booking.Guests, booking.CheckIn, booking.CheckOut, hotel,
		),
	})
}

// ContactEmails returns the admin notification and the auto-reply for a
// contact form submission.
func ContactEmails(cfg *config.Config, name, email, message string) []brevo.Mail {
	from := cfg.Email.From
	hotel := cfg.App.Name

	mails := []brevo.Mail{
		{
			FromEmail: from,
			ToEmails:  []string{cfg.Email.AdminEmail},
			Subject:   fmt.Sprintf("New Contact Message from %s", name),
			HTMLContent: fmt.Sprintf(
				`<h3>New Contact Form Submission</h3>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`,
				name, email, message,
			),
		},
	}

	if email == "" {
		return mails
	}

	return append(mails, brevo.Mail{
		FromEmail: from,
		ToEmails:  []string{email},
		Subject:   fmt.Sprintf("Thanks for contacting %s", hotel),
		HTMLContent: fmt.Sprintf(
			`<div style="font-family:Arial,sans-serif">
  <h3>Hi %s,</h3>
  <p>We have received your message and will respond as soon as possible.</p>
  <p>— %s</p>
</div>`,
			name, hotel,
		),
	})
}

// LoungeEmails returns the admin notification and the auto-reply for a
// lounge table reservation.
func LoungeEmails(cfg *config.Config, booking loungeModel.LoungeBooking) []brevo.Mail {
	from := cfg.Email.From
	hotel := cfg.App.Name

	message := booking.Message
	if message == "" {
		message = "No message provided"
	}

	return []brevo.Mail{
		{
			FromEmail: from,
			ToEmails:  []string{cfg.Email.AdminEmail},
			Subject:   fmt.Sprintf("New Lounge Booking: %s", booking.TableType),
			HTMLContent: fmt.Sprintf(
				`<h2>New Lounge Booking</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Booking Type:</strong> %s</p>
<p><strong>Guest Number:</strong> %d</p>
<p><strong>Date:</strong> %s</p>
<p><strong>Time:</strong> %s</p>
<p><strong>Message:</strong> %s</p>`,
				booking.Name, booking.Email, booking.Phone, booking.TableType,
				booking.LoungeGuests, booking.Date, booking.Time, message,
			),
			TextContent: fmt.Sprintf(
				"Lounge booking: %s - %s - %s - %s - %d - %s %s",
				booking.TableType, booking.Name, booking.Email, booking.Phone,
				booking.LoungeGuests, booking.Date, booking.Time,
			),
		},
		{
			FromEmail: from,
			ToEmails:  []string{booking.Email},
			Subject:   fmt.Sprintf("Lounge Booking Confirmation — %s", hotel),
			HTMLContent: fmt.Sprintf(
				`<h3>Hi %s,</h3>
<p>We have received your lounge booking request for <strong>%s</strong> on <strong>%s</strong> at <strong>%s</strong>.</p>
<p>Our team will contact you shortly to confirm your reservation.</p>
<p>— %s</p>`,
				booking.Name, booking.TableType, booking.Date, booking.Time, hotel,
			),
			TextContent: fmt.Sprintf(
				"Hi %s, we received your lounge booking for %s on %s at %s. We'll contact you to confirm.",
				booking.Name, booking.TableType, booking.Date, booking.Time,
			),
		},
	}
}
