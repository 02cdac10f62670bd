package admin

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"hotelier/config"
	"hotelier/infras/otel"
	authDto "hotelier/internal/domains/auth/model/dto"
	authService "hotelier/internal/domains/auth/service"
	bookingDto "hotelier/internal/domains/booking/model/dto"
	bookingService "hotelier/internal/domains/booking/service"
	contactDto "hotelier/internal/domains/contact/model/dto"
	contactService "hotelier/internal/domains/contact/service"
	loungeDto "hotelier/internal/domains/lounge/model/dto"
	loungeService "hotelier/internal/domains/lounge/service"
	roomDto "hotelier/internal/domains/room/model/dto"
	roomService "hotelier/internal/domains/room/service"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	auth     authService.Auth
	bookings bookingService.Booking
	rooms    roomService.Room
	contacts contactService.Contact
	lounges  loungeService.Lounge
	authMw   middleware.Auth
	cfg      *config.Config
	otel     otel.Otel
}

func New(
	auth authService.Auth,
	bookings bookingService.Booking,
	rooms roomService.Room,
	contacts contactService.Contact,
	lounges loungeService.Lounge,
	authMw middleware.Auth,
	cfg *config.Config,
	otel otel.Otel,
) Handler {
	return Handler{
		auth:     auth,
		bookings: bookings,
		rooms:    rooms,
		contacts: contacts,
		lounges:  lounges,
		authMw:   authMw,
		cfg:      cfg,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Get("/login", handler.LoginPage)
		routerGroup.Post("/login", handler.Login)
		routerGroup.Get("/logout", handler.Logout)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(handler.authMw.RequireLogin)

			protected.Get("/bookings", handler.ListBookings)
			protected.Post("/bookings/toggle/{id}", handler.ToggleBooking)
			protected.Post("/bookings/delete/{id}", handler.DeleteBooking)
			protected.Get("/bookings/edit/{id}", handler.EditBookingPage)
			protected.Post("/bookings/edit/{id}", handler.EditBooking)

			protected.Get("/rooms", handler.ListRooms)
			protected.Post("/rooms/toggle/{id}", handler.ToggleRoom)

			protected.Get("/lounge", handler.ListLounges)

			protected.Get("/contacts", handler.ListContacts)
			protected.Post("/contacts/delete/{id}", handler.DeleteContact)
			protected.Get("/contacts/edit/{id}", handler.EditContactPage)
			protected.Post("/contacts/edit/{id}", handler.EditContact)
		})
	})
}

func (handler *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LoginPage")
	defer scope.End()

	handler.render(w, loginTemplate, nil)
}

// Login checks the console credentials and, on success, sets the session
// cookie before sending the admin to the bookings table.
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	if err := r.ParseForm(); err != nil {
		scope.TraceError(err)
		response.WithHTML(w, http.StatusOK, []byte(invalidCredentialsPage))

		return
	}

	req := authDto.LoginRequest{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}

	res, err := handler.auth.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Str("username", req.Username).Msg("admin login rejected")

		response.WithHTML(w, http.StatusOK, []byte(invalidCredentialsPage))

		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     constant.SessionCookieName,
		Value:    res.Token,
		Path:     "/",
		Expires:  res.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	scope.AddEvent("Admin logged in")

	http.Redirect(w, r, "/admin/bookings", http.StatusFound)
}

func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	http.SetCookie(w, &http.Cookie{
		Name:     constant.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
	})

	response.WithHTML(w, http.StatusOK, []byte(loggedOutPage))
}

type bookingsPage struct {
	Title    string
	Heading  string
	Bookings []bookingDto.BookingResponse
}

func (handler *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListBookings")
	defer scope.End()

	res, err := handler.bookings.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load bookings")

		http.Error(w, "Error loading bookings", http.StatusInternalServerError)

		return
	}

	handler.render(w, bookingsTemplate, bookingsPage{
		Title:    "Bookings",
		Heading:  "All Bookings",
		Bookings: res.Bookings,
	})
}

func (handler *Handler) ToggleBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	newStatus, err := handler.bookings.ToggleStatus(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle booking status")

		if failure.IsNotFound(err) {
			http.Error(w, "Booking not found", http.StatusNotFound)

			return
		}

		http.Error(w, "Error toggling booking status", http.StatusInternalServerError)

		return
	}

	log.Info().Str("id", id).Str("status", newStatus).Msg("booking status toggled")

	http.Redirect(w, r, "/admin/bookings", http.StatusFound)
}

func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.bookings.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		http.Error(w, "Error deleting booking", http.StatusInternalServerError)

		return
	}

	http.Redirect(w, r, "/admin/bookings", http.StatusFound)
}

func (handler *Handler) EditBookingPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditBookingPage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.bookings.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		if failure.IsNotFound(err) {
			response.WithHTML(w, http.StatusNotFound, []byte("<h1>Booking not found</h1>"))

			return
		}

		log.Error().Err(err).Msg("failed to load booking for edit")

		http.Error(w, constant.ResponseErrorServer, http.StatusInternalServerError)

		return
	}

	handler.render(w, bookingEditTemplate, booking)
}

func (handler *Handler) EditBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseForm(); err != nil {
		scope.TraceError(err)

		http.Error(w, "Error updating booking", http.StatusInternalServerError)

		return
	}

	guests, _ := strconv.Atoi(r.FormValue("guests"))

	req := bookingDto.UpdateBookingRequest{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Phone:    r.FormValue("phone"),
		Room:     r.FormValue("room"),
		Guests:   guests,
		CheckIn:  r.FormValue("check_in"),
		CheckOut: r.FormValue("check_out"),
	}

	if err := handler.bookings.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		http.Error(w, "Error updating booking", http.StatusInternalServerError)

		return
	}

	http.Redirect(w, r, "/admin/bookings", http.StatusFound)
}

type roomsPage struct {
	Title   string
	Heading string
	Rooms   []roomDto.RoomResponse
}

func (handler *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListRooms")
	defer scope.End()

	res, err := handler.rooms.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load rooms")

		http.Error(w, "Error loading rooms", http.StatusInternalServerError)

		return
	}

	handler.render(w, roomsTemplate, roomsPage{
		Title:   "Rooms",
		Heading: "Manage Rooms",
		Rooms:   res.Rooms,
	})
}

// ToggleRoom flips a single room's availability without touching bookings.
func (handler *Handler) ToggleRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleRoom")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	newStatus, err := handler.rooms.ToggleStatus(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle room status")

		if failure.IsNotFound(err) {
			http.Error(w, "Room not found", http.StatusNotFound)

			return
		}

		http.Error(w, "Error toggling room status", http.StatusInternalServerError)

		return
	}

	log.Info().Str("id", id).Str("status", newStatus).Msg("room status toggled")

	http.Redirect(w, r, "/admin/rooms", http.StatusFound)
}

type loungesPage struct {
	Title    string
	Heading  string
	Bookings []loungeDto.LoungeBookingResponse
}

func (handler *Handler) ListLounges(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListLounges")
	defer scope.End()

	res, err := handler.lounges.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load lounge bookings")

		http.Error(w, "Error loading lounge bookings", http.StatusInternalServerError)

		return
	}

	handler.render(w, loungesTemplate, loungesPage{
		Title:    "Lounge",
		Heading:  "Lounge Bookings",
		Bookings: res.Bookings,
	})
}

type contactsPage struct {
	Title    string
	Heading  string
	Contacts []contactDto.ContactResponse
}

func (handler *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListContacts")
	defer scope.End()

	res, err := handler.contacts.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to load contacts")

		http.Error(w, "Error loading contacts", http.StatusInternalServerError)

		return
	}

	handler.render(w, contactsTemplate, contactsPage{
		Title:    "Contacts",
		Heading:  "All Contacts",
		Contacts: res.Contacts,
	})
}

func (handler *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteContact")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.contacts.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete contact")

		http.Error(w, "Error deleting contact", http.StatusInternalServerError)

		return
	}

	http.Redirect(w, r, "/admin/contacts", http.StatusFound)
}

func (handler *Handler) EditContactPage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditContactPage")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	contact, err := handler.contacts.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		if failure.IsNotFound(err) {
			response.WithHTML(w, http.StatusNotFound, []byte("<h1>Contact not found</h1>"))

			return
		}

		log.Error().Err(err).Msg("failed to load contact for edit")

		http.Error(w, constant.ResponseErrorServer, http.StatusInternalServerError)

		return
	}

	handler.render(w, contactEditTemplate, contact)
}

func (handler *Handler) EditContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditContact")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseForm(); err != nil {
		scope.TraceError(err)

		http.Error(w, "Error updating contact", http.StatusInternalServerError)

		return
	}

	req := contactDto.UpdateContactRequest{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Message: r.FormValue("message"),
	}

	if err := handler.contacts.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update contact")

		http.Error(w, "Error updating contact", http.StatusInternalServerError)

		return
	}

	http.Redirect(w, r, "/admin/contacts", http.StatusFound)
}

func (handler *Handler) render(w http.ResponseWriter, tmpl *template.Template, data any) {
	var buf bytes.Buffer

	if err := tmpl.Execute(&buf, data); err != nil {
		log.Error().Err(err).Str("template", tmpl.Name()).Msg("failed to render page")

		http.Error(w, constant.ResponseErrorServer, http.StatusInternalServerError)

		return
	}

	response.WithHTML(w, http.StatusOK, buf.Bytes())
}
