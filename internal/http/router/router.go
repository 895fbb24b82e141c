// Package router wires the registration handlers into an http.Handler.
//
// Route table:
//
//	GET  /               → empty registration form
//	POST /               → validate and store a registration
//	GET  /registrations  → listing, behind HTTP Basic auth
package router

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/registration-form/internal/auth"
	"github.com/aanand-mishra/registration-form/internal/http/handlers/registration"
	"github.com/aanand-mishra/registration-form/internal/http/middleware"
	"github.com/aanand-mishra/registration-form/internal/storage"
	"github.com/aanand-mishra/registration-form/internal/view"
)

// Deps are the process-wide handles the routes need. They are built
// once at startup and never torn down while the server runs.
type Deps struct {
	Storage     storage.Storage
	Renderer    view.Renderer
	Credentials auth.Verifier
	Realm       string
	Log         *slog.Logger
}

// New returns the application's root handler.
func New(d Deps) http.Handler {
	mux := http.NewServeMux()

	// "/{$}" matches only the root path, not every unmatched path.
	mux.HandleFunc("GET /{$}", registration.Form(d.Renderer))
	mux.HandleFunc("POST /{$}", registration.Create(d.Storage, d.Renderer))
	mux.Handle("GET /registrations",
		auth.Basic(d.Realm, d.Credentials, registration.List(d.Storage, d.Renderer)))

	if d.Log == nil {
		return mux
	}
	return middleware.Logger(d.Log, mux)
}
