package router

import (
	"hotelier/internal/handlers/admin"
	"hotelier/internal/handlers/booking"
	"hotelier/internal/handlers/contact"
	"hotelier/internal/handlers/lounge"
	"hotelier/internal/handlers/room"
	"hotelier/internal/handlers/site"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Site    site.Handler
	Booking booking.Handler
	Contact contact.Handler
	Lounge  lounge.Handler
	Room    room.Handler
	Admin   admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts everything at the root; the public widget endpoints
// and the admin console share one mux.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Site.Router(router)
	r.DomainHandlers.Booking.Router(router)
	r.DomainHandlers.Contact.Router(router)
	r.DomainHandlers.Lounge.Router(router)
	r.DomainHandlers.Room.Router(router)
	r.DomainHandlers.Admin.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
