// Package types holds the shared data structures used across the
// application. Keeping them in one place prevents import cycles:
// handlers, storage, and views can all import types without depending
// on each other.
package types

import "time"

// Registration is one persisted form submission.
//
// ID and CreatedAt are creation metadata assigned by the storage layer
// on insert; callers only ever fill in Name and Email.
type Registration struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// RegistrationForm is the raw form-encoded payload of POST /.
// Values are kept exactly as submitted so that the form can be
// redisplayed without losing what the user typed.
type RegistrationForm struct {
	Name  string
	Email string
}

// Fields returns the submission as a field-name to value mapping,
// the shape the validation rules operate on.
func (f RegistrationForm) Fields() map[string]string {
	return map[string]string{
		"name":  f.Name,
		"email": f.Email,
	}
}

// Registration builds the record to persist from a validated form.
func (f RegistrationForm) Registration() Registration {
	return Registration{Name: f.Name, Email: f.Email}
}
