package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/registration-form/internal/types"
	"github.com/aanand-mishra/registration-form/internal/validation"
)

func render(t *testing.T, name string, data Data) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, MustNew().Render(&buf, name, data))
	return buf.String()
}

func TestRenderEmptyForm(t *testing.T) {
	out := render(t, Form, Data{Title: "Registration form"})

	assert.Contains(t, out, "<title>Registration form</title>")
	assert.Contains(t, out, `name="name" value=""`)
	assert.Contains(t, out, `name="email" value=""`)
	assert.NotContains(t, out, `class="errors"`)
}

func TestRenderFormWithErrors(t *testing.T) {
	out := render(t, Form, Data{
		Title:  "Registration form",
		Errors: []validation.Failure{{Field: "name", Message: "Please enter a name"}},
		Data:   types.RegistrationForm{Email: "x@y.com"},
	})

	assert.Contains(t, out, "<li>Please enter a name</li>")
	assert.Contains(t, out, `value="x@y.com"`)
}

func TestRenderEscapesInput(t *testing.T) {
	out := render(t, Form, Data{
		Title: "Registration form",
		Data:  types.RegistrationForm{Name: `"><script>alert(1)</script>`},
	})

	assert.NotContains(t, out, "<script>")
}

func TestRenderIndex(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		out := render(t, Index, Data{Title: "Listing registrations"})
		assert.Contains(t, out, "No registrations yet")
	})

	t.Run("rows", func(t *testing.T) {
		out := render(t, Index, Data{
			Title: "Listing registrations",
			Registrations: []types.Registration{
				{Name: "Ada", Email: "ada@example.com", CreatedAt: time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)},
			},
		})
		assert.Contains(t, out, "<td>Ada</td>")
		assert.Contains(t, out, "<td>ada@example.com</td>")
		assert.Contains(t, out, "2026-10-16 09:30")
		assert.NotContains(t, out, "No registrations yet")
	})
}

func TestRenderUnknownPage(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, MustNew().Render(&buf, "missing", Data{}))
}
