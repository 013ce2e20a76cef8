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

type ChoreHandler struct {
	*resource[model.Chore]
	chores *store.ChoreStore
}

func NewChoreHandler(chores *store.ChoreStore, views *Views, hub *websocket.Hub, logger *slog.Logger) *ChoreHandler {
	return &ChoreHandler{
		chores: chores,
		resource: &resource[model.Chore]{
			kind:     "chore",
			entity:   websocket.EntityChore,
			basePath: "/chores/",
			formPage: "chore_form.html",
			cascade:  "Every assignment of this chore will be deleted too.",
			store:    chores,
			newItem:  func() *model.Chore { return &model.Chore{Points: model.DefaultChorePoints} },
			idOf:     func(c *model.Chore) int64 { return c.ID },
			decode:   decodeChore,
			encode:   encodeChore,
			validate: chore.ValidateChore,
			views:    views,
			hub:      hub,
			logger:   logger,
		},
	}
}

func (h *ChoreHandler) List(w http.ResponseWriter, r *http.Request) {
	chores, err := h.chores.List(r.Context())
	if err != nil {
		serverError(w, r, h.logger, "list chores", err)
		return
	}
	h.views.Render(w, http.StatusOK, "chores.html", map[string]any{
		"Chores": chores,
	})
}

func decodeChore(v url.Values, c *model.Chore) chore.ValidationErrors {
	var errs chore.ValidationErrors
	c.Name = formString(v, "name")
	c.Description = formString(v, "description")
	c.Points = formInt(v, "points", model.DefaultChorePoints, false, &errs)
	return errs
}

func encodeChore(c *model.Chore) url.Values {
	v := url.Values{}
	v.Set("name", c.Name)
	v.Set("description", c.Description)
	v.Set("points", strconv.Itoa(c.Points))
	return v
}
