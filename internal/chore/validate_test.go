package chore

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dukerupert/choretracker/internal/model"
)

func TestValidateChildAge(t *testing.T) {
	tests := []struct {
		age  int
		want bool
	}{
		{-1, false},
		{0, true},
		{10, true},
		{100, true},
		{101, false},
	}
	for _, tt := range tests {
		err := ValidateChild(model.Child{Name: "Alice", Age: tt.age})
		if (err == nil) != tt.want {
			t.Errorf("age %d: err = %v, want valid=%v", tt.age, err, tt.want)
		}
		if err != nil {
			if !errors.Is(err, ErrRange) {
				t.Errorf("age %d: err does not wrap ErrRange", tt.age)
			}
			v, _ := AsValidation(err)
			if msgs := v.ByField()["age"]; len(msgs) != 1 || msgs[0] != MsgAgeRange {
				t.Errorf("age %d: messages = %v", tt.age, msgs)
			}
		}
	}
}

func TestValidateNames(t *testing.T) {
	if err := ValidateChild(model.Child{Name: "  ", Age: 5}); !errors.Is(err, ErrRequired) {
		t.Errorf("blank child name: err = %v, want ErrRequired", err)
	}
	if err := ValidateChore(model.Chore{Name: strings.Repeat("a", MaxChoreNameLen)}); err != nil {
		t.Errorf("chore name at limit: err = %v", err)
	}
	err := ValidateChore(model.Chore{Name: strings.Repeat("a", MaxChoreNameLen+1)})
	if !errors.Is(err, ErrRange) {
		t.Fatalf("long chore name: err = %v, want ErrRange", err)
	}
	v, _ := AsValidation(err)
	want := "Ensure this value has at most 200 characters (it has 201)."
	if got := v.ByField()["name"][0]; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestValidateAssignment(t *testing.T) {
	before := date(2026, 1, 9)
	same := date(2026, 1, 10)
	after := date(2026, 1, 12)

	tests := []struct {
		name      string
		completed bool
		done      *time.Time
		kind      error
		msg       string
	}{
		{"pending without date", false, nil, nil, ""},
		{"completed without date", true, nil, ErrRequired, MsgDateCompletedRequired},
		{"completed before assigned", true, &before, ErrOrder, MsgDateCompletedOrder},
		{"pending with early date", false, &before, ErrOrder, MsgDateCompletedOrder},
		{"completed same day", true, &same, nil, ""},
		{"completed later", true, &after, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := model.Assignment{
				ChildID:       1,
				ChoreID:       1,
				DateAssigned:  date(2026, 1, 10),
				Completed:     tt.completed,
				DateCompleted: tt.done,
			}
			err := ValidateAssignment(a)
			if tt.kind == nil {
				if err != nil {
					t.Errorf("err = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.kind) {
				t.Fatalf("err = %v, want %v", err, tt.kind)
			}
			v, ok := AsValidation(err)
			if !ok {
				t.Fatal("error is not ValidationErrors")
			}
			if got := v.ByField()["date_completed"]; len(got) != 1 || got[0] != tt.msg {
				t.Errorf("date_completed messages = %v, want [%q]", got, tt.msg)
			}
		})
	}
}

func TestValidateAssignmentMissingRefs(t *testing.T) {
	err := ValidateAssignment(model.Assignment{DateAssigned: date(2026, 1, 1)})
	v, ok := AsValidation(err)
	if !ok {
		t.Fatalf("err = %v, want ValidationErrors", err)
	}
	fields := v.ByField()
	if _, ok := fields["child"]; !ok {
		t.Error("missing child error")
	}
	if _, ok := fields["chore"]; !ok {
		t.Error("missing chore error")
	}
}
