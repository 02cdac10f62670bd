package admin

import "html/template"

// The console is served straight from these templates; there is no static
// asset pipeline. Bootstrap comes from the CDN like the original pages.

const layoutHead = `<html>
  <head>
    <title>{{.Title}}</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css" rel="stylesheet">
  </head>
  <body class="container py-4">
    <nav class="mb-4">
      <a href="/admin/bookings" class="btn btn-primary me-2">Bookings</a>
      <a href="/admin/rooms" class="btn btn-success me-2">Rooms</a>
      <a href="/admin/lounge" class="btn btn-warning me-2">Lounge</a>
      <a href="/admin/contacts" class="btn btn-info me-2">Contacts</a>
      <a href="/admin/logout" class="btn btn-danger">Logout</a>
    </nav>
    <h1 class="mb-4">{{.Heading}}</h1>
    <div class="table-responsive">
      <table class="table table-striped table-bordered align-middle">
`

const layoutFoot = `      </table>
    </div>
  </body>
</html>
`

var loginTemplate = template.Must(template.New("login").Parse(`<html>
  <head>
    <title>Admin Login</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css" rel="stylesheet">
  </head>
  <body class="d-flex justify-content-center align-items-center vh-100 bg-light">
    <div class="card shadow-lg" style="width: 400px;">
      <div class="card-body">
        <h2 class="text-center mb-4">Admin Login</h2>
        <form method="POST" action="/admin/login">
          <div class="mb-3"><input type="text" name="username" class="form-control" placeholder="Username" required></div>
          <div class="mb-3"><input type="password" name="password" class="form-control" placeholder="Password" required></div>
          <button type="submit" class="btn btn-primary w-100">Login</button>
        </form>
      </div>
    </div>
  </body>
</html>
`))

var bookingsTemplate = template.Must(template.New("bookings").Parse(layoutHead + `        <thead class="table-dark">
          <tr><th>ID</th><th>Name</th><th>Email</th><th>Phone</th><th>Room</th><th>Guests</th><th>Check-in</th><th>Check-out</th><th>Status</th><th>Created</th><th>Actions</th></tr>
        </thead>
        <tbody>
          {{range .Bookings}}
          <tr>
            <td>{{.ID}}</td>
            <td>{{.Name}}</td>
            <td>{{.Email}}</td>
            <td>{{.Phone}}</td>
            <td>{{.Room}}</td>
            <td>{{.Guests}}</td>
            <td>{{.CheckIn}}</td>
            <td>{{.CheckOut}}</td>
            <td>{{.Status}}</td>
            <td>{{.CreatedAt}}</td>
            <td>
              <form method="POST" action="/admin/bookings/toggle/{{.ID}}" style="display:inline;">
                <button type="submit" class="btn btn-sm {{if eq .Status "booked"}}btn-secondary{{else}}btn-success{{end}}">{{if eq .Status "booked"}}Mark Available{{else}}Mark Booked{{end}}</button>
              </form>
              <form method="POST" action="/admin/bookings/delete/{{.ID}}" style="display:inline;" onsubmit="return confirm('Delete this booking?');">
                <button type="submit" class="btn btn-sm btn-danger">Delete</button>
              </form>
              <form method="GET" action="/admin/bookings/edit/{{.ID}}" style="display:inline;">
                <button type="submit" class="btn btn-sm btn-warning">Edit</button>
              </form>
            </td>
          </tr>
          {{end}}
        </tbody>
` + layoutFoot))

var roomsTemplate = template.Must(template.New("rooms").Parse(layoutHead + `        <thead class="table-dark">
          <tr><th>ID</th><th>Room Name</th><th>Status</th><th>Actions</th></tr>
        </thead>
        <tbody>
          {{range .Rooms}}
          <tr>
            <td>{{.ID}}</td>
            <td>{{.Name}}</td>
            <td>{{.Status}}</td>
            <td>
              <form method="POST" action="/admin/rooms/toggle/{{.ID}}" style="display:inline;">
                <button type="submit" class="btn btn-sm {{if eq .Status "booked"}}btn-secondary{{else}}btn-success{{end}}">{{if eq .Status "booked"}}Mark Available{{else}}Mark Booked{{end}}</button>
              </form>
            </td>
          </tr>
          {{end}}
        </tbody>
` + layoutFoot))

var loungesTemplate = template.Must(template.New("lounges").Parse(layoutHead + `        <thead class="table-dark">
          <tr><th>ID</th><th>Name</th><th>Email</th><th>Phone</th><th>Table</th><th>Guests</th><th>Date</th><th>Time</th><th>Message</th><th>Status</th><th>Created</th></tr>
        </thead>
        <tbody>
          {{range .Bookings}}
          <tr>
            <td>{{.ID}}</td>
            <td>{{.Name}}</td>
            <td>{{.Email}}</td>
            <td>{{.Phone}}</td>
            <td>{{.TableType}}</td>
            <td>{{.LoungeGuests}}</td>
            <td>{{.Date}}</td>
            <td>{{.Time}}</td>
            <td>{{.Message}}</td>
            <td>{{.Status}}</td>
            <td>{{.CreatedAt}}</td>
          </tr>
          {{end}}
        </tbody>
` + layoutFoot))

var contactsTemplate = template.Must(template.New("contacts").Parse(layoutHead + `        <thead class="table-dark">
          <tr><th>ID</th><th>Name</th><th>Email</th><th>Message</th><th>Created</th><th>Actions</th></tr>
        </thead>
        <tbody>
          {{range .Contacts}}
          <tr>
            <td>{{.ID}}</td>
            <td>{{.Name}}</td>
            <td>{{.Email}}</td>
            <td>{{.Message}}</td>
            <td>{{.CreatedAt}}</td>
            <td>
              <form method="POST" action="/admin/contacts/delete/{{.ID}}" style="display:inline;" onsubmit="return confirm('Delete this contact?');">
                <button type="submit" class="btn btn-sm btn-danger">Delete</button>
              </form>
              <form method="GET" action="/admin/contacts/edit/{{.ID}}" style="display:inline;">
                <button type="submit" class="btn btn-sm btn-warning">Edit</button>
              </form>
            </td>
          </tr>
          {{end}}
        </tbody>
` + layoutFoot))

var bookingEditTemplate = template.Must(template.New("bookingEdit").Parse(`<html>
  <head><title>Edit Booking</title></head>
  <body style="font-family:Arial; padding:20px;">
    <h2>Edit Booking ID: {{.ID}}</h2>
    <form method="POST" action="/admin/bookings/edit/{{.ID}}">
      <input type="text" name="name" value="{{.Name}}" required/><br/><br/>
      <input type="email" name="email" value="{{.Email}}" required/><br/><br/>
      <input type="text" name="phone" value="{{.Phone}}" required/><br/><br/>
      <input type="text" name="room" value="{{.Room}}" required/><br/><br/>
      <input type="number" name="guests" value="{{.Guests}}" required/><br/><br/>
      <input type="date" name="check_in" value="{{.CheckIn}}" required/><br/><br/>
      <input type="date" name="check_out" value="{{.CheckOut}}" required/><br/><br/>
      <button type="submit">Save Changes</button>
    </form>
  </body>
</html>
`))

var contactEditTemplate = template.Must(template.New("contactEdit").Parse(`<html>
  <head><title>Edit Contact</title></head>
  <body style="font-family:Arial; padding:20px;">
    <h2>Edit Contact ID: {{.ID}}</h2>
    <form method="POST" action="/admin/contacts/edit/{{.ID}}">
      <input type="text" name="name" value="{{.Name}}" required/><br/><br/>
      <input type="email" name="email" value="{{.Email}}" required/><br/><br/>
      <textarea name="message" required>{{.Message}}</textarea><br/><br/>
      <button type="submit">Save Changes</button>
    </form>
  </body>
</html>
`))

const (
	invalidCredentialsPage = `<h2>Invalid credentials. <a href='/admin/login'>Try again</a></h2>`
	loggedOutPage          = `<h2>Logged out. <a href='/admin/login'>Login again</a></h2>`
)
