// Package registration contains the HTTP handlers for the registration
// form and the registration listing.
//
// Handlers are built with the closure / factory pattern: a factory
// receives the dependencies (storage, renderer) once at startup and
// returns the func(http.ResponseWriter, *http.Request) that runs on
// every request.
//
//	router.HandleFunc("POST /{$}", registration.Create(storage, renderer))
package registration

import (
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/registration-form/internal/auth"
	"github.com/aanand-mishra/registration-form/internal/storage"
	"github.com/aanand-mishra/registration-form/internal/types"
	"github.com/aanand-mishra/registration-form/internal/utils/response"
	"github.com/aanand-mishra/registration-form/internal/validation"
	"github.com/aanand-mishra/registration-form/internal/view"
)

// Page titles.
const (
	FormTitle    = "Registration form"
	ListingTitle = "Listing registrations"
)

// ─────────────────────────────────────────────────────────────────────────────
// Form handles GET /
// Renders the empty registration form. Nothing about earlier requests
// leaks into it, so every GET renders the same page.
// ─────────────────────────────────────────────────────────────────────────────
func Form(renderer view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeView(w, renderer, view.Form, view.Data{Title: FormTitle})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Create handles POST /
// Validates the form-encoded name and email and persists a registration.
//
// Outcomes (all 200 OK):
//
//	valid, stored        — "Thank you for your registration!"
//	valid, store failed  — "Sorry! Something went wrong." (error logged)
//	invalid              — form re-rendered with errors and the submitted values
//
// ─────────────────────────────────────────────────────────────────────────────
func Create(storage storage.Storage, renderer view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a registration")

		// A body that cannot be parsed is treated as an empty submission;
		// validation then reports both fields.
		if err := r.ParseForm(); err != nil {
			slog.Info("unparseable form body", slog.String("error", err.Error()))
		}

		form := types.RegistrationForm{
			Name:  r.PostForm.Get("name"),
			Email: r.PostForm.Get("email"),
		}

		failures := validation.DefaultRules.Check(form.Fields())
		if !validation.Valid(failures) {
			slog.Info("registration rejected",
				slog.Any("errors", validation.Messages(failures)))

			writeView(w, renderer, view.Form, view.Data{
				Title:  FormTitle,
				Errors: failures,
				Data:   form,
			})
			return
		}

		if err := storage.CreateRegistration(r.Context(), form.Registration()); err != nil {
			slog.Error("error creating registration", slog.String("error", err.Error()))
			response.WriteText(w, http.StatusOK, response.MsgSorry)
			return
		}

		slog.Info("registration created")
		response.WriteText(w, http.StatusOK, response.MsgThanks)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// List handles GET /registrations
// Renders every stored registration. Meant to sit behind auth.Basic.
// An empty store renders the listing with no rows.
// ─────────────────────────────────────────────────────────────────────────────
func List(storage storage.Storage, renderer view.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, _ := auth.UserFromContext(r.Context())
		slog.Info("listing registrations", slog.String("user", user))

		registrations, err := storage.GetRegistrations(r.Context())
		if err != nil {
			slog.Error("error listing registrations", slog.String("error", err.Error()))
			response.WriteText(w, http.StatusOK, response.MsgSorry)
			return
		}

		writeView(w, renderer, view.Index, view.Data{
			Title:         ListingTitle,
			Registrations: registrations,
		})
	}
}

// writeView renders a page, falling back to the generic apology when
// the template fails.
func writeView(w http.ResponseWriter, renderer view.Renderer, page string, data view.Data) {
	if err := response.WriteView(w, http.StatusOK, renderer, page, data); err != nil {
		slog.Error("error rendering view",
			slog.String("page", page),
			slog.String("error", err.Error()))
		response.WriteText(w, http.StatusOK, response.MsgSorry)
	}
}
