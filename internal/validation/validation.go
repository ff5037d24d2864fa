// Package validation implements the declarative per-route field rules run
// before handler logic. A route declares an ordered Chain of checks; the
// first failing rule short-circuits the request with its message. Primitive
// format checks are delegated to go-playground/validator.
package validation

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var validate = validator.New()

// Values abstracts the source of field values: a parsed form, query
// parameters or a decoded JSON payload.
type Values interface {
	Get(name string) string
	Has(name string) bool
}

// MapValues adapts a plain map to the Values interface.
type MapValues map[string]string

func (m MapValues) Get(name string) string { return m[name] }
func (m MapValues) Has(name string) bool   { _, ok := m[name]; return ok }

// Error is a failed validation outcome carrying the failing rule's message.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

// Checker is a single entry in a route's validation chain.
type Checker interface {
	Validate(v Values) *Error
}

// Chain is an ordered rule set for one route. Validate runs entries in
// declared order and stops at the first failure.
type Chain []Checker

func (c Chain) Validate(v Values) *Error {
	for _, checker := range c {
		if err := checker.Validate(v); err != nil {
			return err
		}
	}
	return nil
}

// Rule pairs a pure predicate with the message reported when it fails.
type Rule struct {
	Check   func(value string) bool
	Message string
}

// Field holds the ordered rules for one named field. Optional fields skip
// all rules when the value is absent or empty.
type Field struct {
	Name     string
	Optional bool
	Rules    []Rule
}

func (f Field) Validate(v Values) *Error {
	value := v.Get(f.Name)
	if f.Optional && strings.TrimSpace(value) == "" {
		return nil
	}
	for _, rule := range f.Rules {
		if !rule.Check(value) {
			return &Error{Message: rule.Message}
		}
	}
	return nil
}

// GroupRule is a cross-field rule evaluated against the whole value set,
// e.g. "at least one of email or username must be present".
type GroupRule struct {
	Check   func(v Values) bool
	Message string
}

func (g GroupRule) Validate(v Values) *Error {
	if !g.Check(v) {
		return &Error{Message: g.Message}
	}
	return nil
}

// Required fails on absent or whitespace-only values.
func Required(message string) Rule {
	return Rule{
		Check:   func(value string) bool { return strings.TrimSpace(value) != "" },
		Message: message,
	}
}

// Email fails unless the value is a well-formed email address.
func Email(message string) Rule {
	return Rule{
		Check: func(value string) bool {
			return validate.Var(strings.TrimSpace(value), "required,email") == nil
		},
		Message: message,
	}
}

// Numeric fails unless the value parses as a number.
func Numeric(message string) Rule {
	return Rule{
		Check: func(value string) bool {
			return validate.Var(strings.TrimSpace(value), "required,numeric") == nil
		},
		Message: message,
	}
}

// Date fails unless the value is an ISO-8601 calendar date or timestamp.
func Date(message string) Rule {
	return Rule{
		Check: func(value string) bool {
			_, err := ParseDate(value)
			return err == nil
		},
		Message: message,
	}
}

// MinLen fails when the value is shorter than n bytes.
func MinLen(n int, message string) Rule {
	return Rule{
		Check:   func(value string) bool { return len(value) >= n },
		Message: message,
	}
}

// ObjectID fails unless the value is a well-formed document id.
func ObjectID(message string) Rule {
	return Rule{
		Check: func(value string) bool {
			_, err := bson.ObjectIDFromHex(value)
			return err == nil
		},
		Message: message,
	}
}

// RequireAnyOf is a cross-field rule demanding at least one of the named
// fields to be present and non-empty.
func RequireAnyOf(message string, names ...string) GroupRule {
	return GroupRule{
		Check: func(v Values) bool {
			for _, name := range names {
				if strings.TrimSpace(v.Get(name)) != "" {
					return true
				}
			}
			return false
		},
		Message: message,
	}
}

// ParseDate parses an ISO-8601 date, accepting both a bare calendar date
// and a full RFC 3339 timestamp.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
