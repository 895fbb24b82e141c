// Package validation evaluates declarative per-field rules against
// submitted form data.
//
// A Rule pairs a field name with a go-playground/validator tag and the
// message shown to the user when the tag fails. Rules are checked in
// order and each one yields at most one Failure, so the result of a
// rule list is simply the concatenation of its rules' results.
package validation

import (
	"github.com/go-playground/validator/v10"
)

// Rule is a single check applied to one field of submitted data.
type Rule struct {
	// Field is the form field name, e.g. "email".
	Field string
	// Tag is any validator tag expression, e.g. "required" or "min=1".
	Tag string
	// Message is what the user sees when the check fails.
	Message string
}

// Failure describes a rule that did not hold.
type Failure struct {
	Field   string
	Message string
	Value   string
}

// Rules is an ordered list of rules.
type Rules []Rule

// DefaultRules are the checks applied to a registration submission.
// "required" on a string means length >= 1; no format check is done
// on the email so any non-empty value passes.
var DefaultRules = Rules{
	{Field: "name", Tag: "required", Message: "Please enter a name"},
	{Field: "email", Tag: "required", Message: "Please enter an email"},
}

// validate is safe for concurrent use and caches parsed tags, so one
// instance is shared by every request.
var validate = validator.New()

// Check runs every rule against fields and returns the failures in rule
// order. A field missing from the map is checked as an empty string.
// Check has no side effects.
func (rs Rules) Check(fields map[string]string) []Failure {
	failures := make([]Failure, 0)

	for _, rule := range rs {
		value := fields[rule.Field]
		if err := validate.Var(value, rule.Tag); err != nil {
			failures = append(failures, Failure{
				Field:   rule.Field,
				Message: rule.Message,
				Value:   value,
			})
		}
	}

	return failures
}

// Valid reports whether there were zero failures.
func Valid(failures []Failure) bool {
	return len(failures) == 0
}

// Messages returns just the user-facing messages, in order.
func Messages(failures []Failure) []string {
	msgs := make([]string, 0, len(failures))
	for _, f := range failures {
		msgs = append(msgs, f.Message)
	}
	return msgs
}
