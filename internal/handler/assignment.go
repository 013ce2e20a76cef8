package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dukerupert/choretracker/internal/chore"
	"github.com/dukerupert/choretracker/internal/model"
	"github.com/dukerupert/choretracker/internal/store"
	"github.com/dukerupert/choretracker/internal/websocket"
)

type AssignmentHandler struct {
	*resource[model.Assignment]
	assignments *store.AssignmentStore
	children    *store.ChildStore
	chores      *store.ChoreStore
	today       func() time.Time
}

func NewAssignmentHandler(
	assignments *store.AssignmentStore,
	children *store.ChildStore,
	chores *store.ChoreStore,
	views *Views,
	hub *websocket.Hub,
	today func() time.Time,
	logger *slog.Logger,
) *AssignmentHandler {
	h := &AssignmentHandler{
		assignments: assignments,
		children:    children,
		chores:      chores,
		today:       today,
	}
	h.resource = &resource[model.Assignment]{
		kind:     "assignment",
		entity:   websocket.EntityAssignment,
		basePath: "/assignments/",
		formPage: "assignment_form.html",
		store:    assignments,
		newItem:  func() *model.Assignment { return &model.Assignment{DateAssigned: today()} },
		idOf:     func(a *model.Assignment) int64 { return a.ID },
		decode:   h.decode,
		encode:   encodeAssignment,
		validate: chore.ValidateAssignment,
		extra:    h.choices,
		payload:  func(a *model.Assignment) map[string]any { return map[string]any{"child_id": a.ChildID} },
		views:    views,
		hub:      hub,
		logger:   logger,
	}
	return h
}

type sortOption struct {
	Value    string
	Label    string
	Selected bool
}

var sortLabels = map[chore.SortKey]string{
	chore.SortDateAssignedDesc: "Newest first",
	chore.SortDateAssigned:     "Oldest first",
	chore.SortChildName:        "Child",
	chore.SortChoreName:        "Chore",
	chore.SortCompleted:        "Pending first",
}

// List shows one page of assignments in the order named by ?order_by=.
func (h *AssignmentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	key := chore.ParseSortKey(q.Get("order_by"))

	total, err := h.assignments.Count(r.Context())
	if err != nil {
		serverError(w, r, h.logger, "count assignments", err)
		return
	}
	page, err := resolvePage(q.Get("page"), total)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	list, err := h.assignments.ListPage(r.Context(), key, PageSize, page.Offset())
	if err != nil {
		serverError(w, r, h.logger, "list assignments", err)
		return
	}

	options := make([]sortOption, 0, len(sortLabels))
	for _, k := range chore.SortKeys() {
		options = append(options, sortOption{Value: k.String(), Label: sortLabels[k], Selected: k == key})
	}

	h.views.Render(w, http.StatusOK, "assignments.html", map[string]any{
		"Assignments": list,
		"OrderBy":     key.String(),
		"SortOptions": options,
		"Page":        page,
	})
}

// Complete marks an assignment completed today. Completing twice is harmless.
// If today is before the assignment date the edit form is shown with the
// error instead.
func (h *AssignmentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	on := h.today()
	a, changed, err := h.assignments.Complete(r.Context(), id, on)
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if v, ok := chore.AsValidation(err); ok {
		h.completeFailed(w, r, id, on, v)
		return
	}
	if err != nil {
		serverError(w, r, h.logger, "complete assignment", err)
		return
	}

	if changed {
		h.logger.Info("assignment completed", "id", a.ID, "child_id", a.ChildID, "on", chore.FormatDate(*a.DateCompleted))
		h.publish(websocket.ActionCompleted, a)
	}
	http.Redirect(w, r, h.basePath, http.StatusFound)
}

func (h *AssignmentHandler) completeFailed(w http.ResponseWriter, r *http.Request, id int64, on time.Time, errs chore.ValidationErrors) {
	a, err := h.assignments.GetByID(r.Context(), id)
	if err != nil {
		serverError(w, r, h.logger, "get assignment", err)
		return
	}
	if a == nil {
		http.NotFound(w, r)
		return
	}
	chore.Complete(a, on)
	h.renderForm(w, r, "Edit assignment", h.editAction(id), encodeAssignment(a), errs)
}

func (h *AssignmentHandler) choices(ctx context.Context) (map[string]any, error) {
	children, err := h.children.List(ctx)
	if err != nil {
		return nil, err
	}
	chores, err := h.chores.List(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]any{"Children": children, "Chores": chores}, nil
}

// decode reads the assignment form. A blank assignment date means today.
func (h *AssignmentHandler) decode(v url.Values, a *model.Assignment) chore.ValidationErrors {
	var errs chore.ValidationErrors
	a.ChildID = formID(v, "child", &errs)
	a.ChoreID = formID(v, "chore", &errs)

	if formString(v, "date_assigned") == "" {
		a.DateAssigned = h.today()
	} else if d, ok := formDate(v, "date_assigned", &errs); ok {
		a.DateAssigned = d
	}

	a.Completed = formBool(v, "completed")
	a.DateCompleted = nil
	if d, ok := formDate(v, "date_completed", &errs); ok {
		a.DateCompleted = &d
	}
	return errs
}

func encodeAssignment(a *model.Assignment) url.Values {
	v := url.Values{}
	if a.ChildID != 0 {
		v.Set("child", strconv.FormatInt(a.ChildID, 10))
	}
	if a.ChoreID != 0 {
		v.Set("chore", strconv.FormatInt(a.ChoreID, 10))
	}
	v.Set("date_assigned", formatDate(a.DateAssigned))
	if a.Completed {
		v.Set("completed", "on")
	}
	v.Set("date_completed", formatDate(a.DateCompleted))
	return v
}
