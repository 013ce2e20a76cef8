package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dukerupert/choretracker/internal/chore"
	"github.com/dukerupert/choretracker/internal/model"
	"github.com/dukerupert/choretracker/internal/store"
)

// ReportHandler renders a child's points, calendar and completion graph.
type ReportHandler struct {
	children    *store.ChildStore
	assignments *store.AssignmentStore
	views       *Views
	today       func() time.Time
	logger      *slog.Logger
}

func NewReportHandler(children *store.ChildStore, assignments *store.AssignmentStore, views *Views, today func() time.Time, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		children:    children,
		assignments: assignments,
		views:       views,
		today:       today,
		logger:      logger,
	}
}

var errNoChild = errors.New("child not found")

func (h *ReportHandler) child(r *http.Request) (*model.Child, error) {
	id, err := parseIDParam(r)
	if err != nil {
		return nil, errNoChild
	}
	c, err := h.children.GetByID(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errNoChild
	}
	return c, nil
}

func (h *ReportHandler) loadChild(w http.ResponseWriter, r *http.Request) (*model.Child, bool) {
	c, err := h.child(r)
	if errors.Is(err, errNoChild) {
		http.NotFound(w, r)
		return nil, false
	}
	if err != nil {
		serverError(w, r, h.logger, "get child", err)
		return nil, false
	}
	return c, true
}

// Points shows the day, week, month and all-time totals. ?period= highlights
// one of them.
func (h *ReportHandler) Points(w http.ResponseWriter, r *http.Request) {
	c, ok := h.loadChild(w, r)
	if !ok {
		return
	}

	completions, err := h.assignments.Completions(r.Context(), c.ID, time.Time{}, time.Time{})
	if err != nil {
		serverError(w, r, h.logger, "load completions", err)
		return
	}

	var period chore.Period
	if raw := r.URL.Query().Get("period"); raw != "" {
		period = chore.ParsePeriod(raw)
	}

	h.views.Render(w, http.StatusOK, "points.html", map[string]any{
		"Child":  c,
		"Totals": chore.Totals(completions, h.today()),
		"Period": string(period),
	})
}

// Calendar shows one month. Without year and month in the path it shows the
// current month.
func (h *ReportHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	c, ok := h.loadChild(w, r)
	if !ok {
		return
	}

	today := h.today()
	year, month := today.Year(), int(today.Month())
	if ys, ms := r.PathValue("year"), r.PathValue("month"); ys != "" || ms != "" {
		var err error
		if year, err = strconv.Atoi(ys); err != nil || year < 1 || year > 9999 {
			http.NotFound(w, r)
			return
		}
		if month, err = strconv.Atoi(ms); err != nil || !chore.ValidMonth(month) {
			http.NotFound(w, r)
			return
		}
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	completions, err := h.assignments.Completions(r.Context(), c.ID, first, last)
	if err != nil {
		serverError(w, r, h.logger, "load completions", err)
		return
	}

	h.views.Render(w, http.StatusOK, "calendar.html", map[string]any{
		"Child":    c,
		"Calendar": chore.BuildCalendar(year, time.Month(month), completions),
	})
}

// Graph renders the chart page; the chart itself loads GraphData.
func (h *ReportHandler) Graph(w http.ResponseWriter, r *http.Request) {
	c, ok := h.loadChild(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	start, end, err := chore.SeriesRange(q.Get("start_date"), q.Get("end_date"), h.today())
	if err != nil {
		http.Error(w, "invalid date: use YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	params := url.Values{}
	params.Set("start_date", chore.FormatDate(start))
	params.Set("end_date", chore.FormatDate(end))

	h.views.Render(w, http.StatusOK, "graph.html", map[string]any{
		"Child":   c,
		"Start":   chore.FormatDate(start),
		"End":     chore.FormatDate(end),
		"DataURL": fmt.Sprintf("/children/%d/graph/data/?%s", c.ID, params.Encode()),
	})
}

// GraphData returns completions per day between start_date and end_date as
// chart JSON.
func (h *ReportHandler) GraphData(w http.ResponseWriter, r *http.Request) {
	c, err := h.child(r)
	if errors.Is(err, errNoChild) {
		writeJSONError(w, http.StatusNotFound, "child not found")
		return
	}
	if err != nil {
		h.logger.Error("get child", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to load child")
		return
	}

	q := r.URL.Query()
	start, end, err := chore.SeriesRange(q.Get("start_date"), q.Get("end_date"), h.today())
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var completions []model.Completion
	if !start.After(end) {
		completions, err = h.assignments.Completions(r.Context(), c.ID, start, end)
		if err != nil {
			h.logger.Error("load completions", "error", err, "child_id", c.ID)
			writeJSONError(w, http.StatusInternalServerError, "failed to load completions")
			return
		}
	}

	writeJSON(w, http.StatusOK, chore.Chart(chore.BuildSeries(completions, start, end)))
}
