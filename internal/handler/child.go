package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dukerupert/choretracker/internal/chore"
	"github.com/dukerupert/choretracker/internal/model"
	"github.com/dukerupert/choretracker/internal/store"
	"github.com/dukerupert/choretracker/internal/websocket"
)

type ChildHandler struct {
	*resource[model.Child]
	children *store.ChildStore
}

func NewChildHandler(children *store.ChildStore, views *Views, hub *websocket.Hub, logger *slog.Logger) *ChildHandler {
	return &ChildHandler{
		children: children,
		resource: &resource[model.Child]{
			kind:     "child",
			entity:   websocket.EntityChild,
			basePath: "/children/",
			formPage: "child_form.html",
			cascade:  "All of their assignments will be deleted too.",
			store:    children,
			newItem:  func() *model.Child { return &model.Child{} },
			idOf:     func(c *model.Child) int64 { return c.ID },
			decode:   decodeChild,
			encode:   encodeChild,
			validate: chore.ValidateChild,
			views:    views,
			hub:      hub,
			logger:   logger,
		},
	}
}

func (h *ChildHandler) List(w http.ResponseWriter, r *http.Request) {
	children, err := h.children.List(r.Context())
	if err != nil {
		serverError(w, r, h.logger, "list children", err)
		return
	}
	h.views.Render(w, http.StatusOK, "children.html", map[string]any{
		"Children": children,
	})
}

func decodeChild(v url.Values, c *model.Child) chore.ValidationErrors {
	var errs chore.ValidationErrors
	c.Name = formString(v, "name")
	c.Age = formInt(v, "age", 0, true, &errs)
	return errs
}

func encodeChild(c *model.Child) url.Values {
	v := url.Values{}
	v.Set("name", c.Name)
	if c.ID != 0 {
		v.Set("age", strconv.Itoa(c.Age))
	}
	return v
}
