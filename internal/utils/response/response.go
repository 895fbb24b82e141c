// Package response provides helpers for writing consistent HTTP
// responses.
//
// The application answers with one of two shapes: a rendered HTML page
// or a short plain-text message. Rather than repeating the header,
// status, and body steps in every handler, they live here.
package response

import (
	"bytes"
	"io"
	"net/http"

	"github.com/aanand-mishra/registration-form/internal/view"
)

// User-facing plain-text messages.
const (
	MsgThanks = "Thank you for your registration!"
	MsgSorry  = "Sorry! Something went wrong."
)

// WriteText writes msg as text/plain with the given status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
func WriteText(w http.ResponseWriter, status int, msg string) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, err := io.WriteString(w, msg)
	return err
}

// WriteView renders page into a buffer first and only then writes the
// headers and body, so a template error never leaves a half-written
// page behind. On render failure nothing is written and the error is
// returned for the caller to handle. Errors writing the finished page
// mean the client has gone and are not reported.
func WriteView(w http.ResponseWriter, status int, renderer view.Renderer, page string, data view.Data) error {
	var buf bytes.Buffer
	if err := renderer.Render(&buf, page, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
	return nil
}
