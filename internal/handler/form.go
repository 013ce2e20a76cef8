package handler

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dukerupert/choretracker/internal/chore"
)

const (
	msgWholeNumber = "Enter a whole number."
	msgValidDate   = "Enter a valid date."
)

// formPage is the data every create/edit template receives. Form holds the
// raw values to redisplay, Errors the messages keyed by field name.
type formPage struct {
	Title  string
	Action string
	Form   url.Values
	Errors map[string][]string
	Extra  map[string]any
}

func formString(v url.Values, key string) string {
	return strings.TrimSpace(v.Get(key))
}

// formInt parses an integer field. A blank value yields def when optional.
func formInt(v url.Values, key string, def int, required bool, errs *chore.ValidationErrors) int {
	s := formString(v, key)
	if s == "" {
		if required {
			errs.Add(key, chore.ErrRequired, chore.MsgRequired)
		}
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		errs.Add(key, chore.ErrInvalid, msgWholeNumber)
		return def
	}
	return n
}

// formID parses a foreign key selection.
func formID(v url.Values, key string, errs *chore.ValidationErrors) int64 {
	s := formString(v, key)
	if s == "" {
		errs.Add(key, chore.ErrRequired, chore.MsgRequired)
		return 0
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		errs.Add(key, chore.ErrInvalid, chore.MsgInvalidChoice)
		return 0
	}
	return id
}

// formDate parses an optional date field; ok is false when the field is blank
// or malformed.
func formDate(v url.Values, key string, errs *chore.ValidationErrors) (time.Time, bool) {
	s := formString(v, key)
	if s == "" {
		return time.Time{}, false
	}
	d, err := chore.ParseDate(s)
	if err != nil {
		errs.Add(key, chore.ErrInvalid, msgValidDate)
		return time.Time{}, false
	}
	return d, true
}

func formBool(v url.Values, key string) bool {
	switch strings.ToLower(formString(v, key)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// merge appends b's errors for fields a has not already flagged, so a parse
// failure is not followed by a second message for the same field.
func merge(a chore.ValidationErrors, b error) chore.ValidationErrors {
	v, ok := chore.AsValidation(b)
	if !ok {
		return a
	}
	seen := a.ByField()
	for _, fe := range v {
		if _, dup := seen[fe.Field]; !dup {
			a = append(a, fe)
		}
	}
	return a
}
