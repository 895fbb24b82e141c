// Package view renders the HTML pages served by the application.
//
// Templates are embedded into the binary and parsed once. Each page
// template defines a "content" block that is slotted into layout.html.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/aanand-mishra/registration-form/internal/types"
	"github.com/aanand-mishra/registration-form/internal/validation"
)

// Page names.
const (
	Form  = "form"
	Index = "index"
)

//go:embed templates/*.html
var files embed.FS

// Data is everything a page template may use. Only Title is required.
type Data struct {
	Title         string
	Errors        []validation.Failure
	Data          types.RegistrationForm
	Registrations []types.Registration
}

// Renderer turns a page name and its data into markup.
type Renderer interface {
	Render(w io.Writer, name string, data Data) error
}

// Templates is the html/template backed Renderer.
type Templates struct {
	pages map[string]*template.Template
}

// New parses the embedded templates.
func New() (*Templates, error) {
	pages := make(map[string]*template.Template)

	for _, name := range []string{Form, Index} {
		tmpl, err := template.New("layout.html").
			Funcs(template.FuncMap{"datetime": datetime}).
			ParseFS(files, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("view.New: parse %s: %w", name, err)
		}
		pages[name] = tmpl
	}

	return &Templates{pages: pages}, nil
}

// MustNew is New that panics; for use at startup and in tests.
func MustNew() *Templates {
	t, err := New()
	if err != nil {
		panic(err)
	}
	return t
}

// Render executes the named page into w.
func (t *Templates) Render(w io.Writer, name string, data Data) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown page %q", name)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("view: render %s: %w", name, err)
	}
	return nil
}
