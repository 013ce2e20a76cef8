package chore

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dukerupert/choretracker/internal/model"
)

// Kinds of validation failure. A FieldError unwraps to one of these.
var (
	ErrRequired = errors.New("required field missing")
	ErrRange    = errors.New("value out of range")
	ErrOrder    = errors.New("dates out of order")
	ErrInvalid  = errors.New("invalid value")
)

const (
	MinAge          = 0
	MaxAge          = 100
	MaxChildNameLen = 100
	MaxChoreNameLen = 200
)

const (
	MsgRequired              = "This field is required."
	MsgAgeRange              = "Age must be between 0 and 100."
	MsgDateCompletedRequired = "Date completed is required when the chore is marked as completed."
	MsgDateCompletedOrder    = "Date completed cannot be earlier than the date assigned."
	MsgInvalidChoice         = "Select a valid choice. That choice is not one of the available choices."
)

type FieldError struct {
	Field   string
	Message string
	Kind    error
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func (e FieldError) Unwrap() error {
	return e.Kind
}

// ValidationErrors collects every problem found on a record. The zero value
// means valid.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, len(v))
	for i, fe := range v {
		errs[i] = fe
	}
	return errs
}

func (v *ValidationErrors) Add(field string, kind error, msg string) {
	*v = append(*v, FieldError{Field: field, Message: msg, Kind: kind})
}

// ByField groups messages by field name, in the order they were added.
func (v ValidationErrors) ByField() map[string][]string {
	out := make(map[string][]string, len(v))
	for _, fe := range v {
		out[fe.Field] = append(out[fe.Field], fe.Message)
	}
	return out
}

// Err returns nil when v is empty so callers can return it directly.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// AsValidation reports whether err carries field errors and returns them.
func AsValidation(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

func ValidateChild(c model.Child) error {
	var errs ValidationErrors
	checkName(&errs, c.Name, MaxChildNameLen)
	if c.Age < MinAge || c.Age > MaxAge {
		errs.Add("age", ErrRange, MsgAgeRange)
	}
	return errs.Err()
}

func ValidateChore(c model.Chore) error {
	var errs ValidationErrors
	checkName(&errs, c.Name, MaxChoreNameLen)
	return errs.Err()
}

// ValidateAssignment enforces the completion rules on new and edited
// assignments alike.
func ValidateAssignment(a model.Assignment) error {
	var errs ValidationErrors
	if a.ChildID <= 0 {
		errs.Add("child", ErrRequired, MsgRequired)
	}
	if a.ChoreID <= 0 {
		errs.Add("chore", ErrRequired, MsgRequired)
	}
	if a.DateAssigned.IsZero() {
		errs.Add("date_assigned", ErrRequired, MsgRequired)
	}
	if a.Completed && a.DateCompleted == nil {
		errs.Add("date_completed", ErrRequired, MsgDateCompletedRequired)
	}
	if a.DateCompleted != nil && !a.DateAssigned.IsZero() && Day(*a.DateCompleted).Before(Day(a.DateAssigned)) {
		errs.Add("date_completed", ErrOrder, MsgDateCompletedOrder)
	}
	return errs.Err()
}

func checkName(errs *ValidationErrors, name string, max int) {
	name = strings.TrimSpace(name)
	if name == "" {
		errs.Add("name", ErrRequired, MsgRequired)
		return
	}
	if n := utf8.RuneCountInString(name); n > max {
		errs.Add("name", ErrRange, fmt.Sprintf("Ensure this value has at most %d characters (it has %d).", max, n))
	}
}
