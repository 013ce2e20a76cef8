package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/dukerupert/choretracker/internal/chore"
	"github.com/dukerupert/choretracker/internal/store"
	"github.com/dukerupert/choretracker/internal/websocket"
)

type crudStore[T any] interface {
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, id int64) error
}

// resource serves the create, edit and delete pages of one entity. The
// entity-specific parts are the decode/encode pair and the validator.
type resource[T any] struct {
	kind     string
	entity   string
	basePath string
	formPage string
	cascade  string

	store    crudStore[T]
	newItem  func() *T
	idOf     func(*T) int64
	decode   func(url.Values, *T) chore.ValidationErrors
	encode   func(*T) url.Values
	validate func(T) error
	extra    func(ctx context.Context) (map[string]any, error)
	payload  func(*T) map[string]any

	views  *Views
	hub    *websocket.Hub
	logger *slog.Logger
}

func (res *resource[T]) createAction() string { return res.basePath + "create/" }

func (res *resource[T]) editAction(id int64) string {
	return fmt.Sprintf("%s%d/edit/", res.basePath, id)
}

// New renders an empty create form.
func (res *resource[T]) New(w http.ResponseWriter, r *http.Request) {
	res.renderForm(w, r, "Add "+res.kind, res.createAction(), res.encode(res.newItem()), nil)
}

func (res *resource[T]) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	item := res.newItem()
	title, action := "Add "+res.kind, res.createAction()
	if errs := res.bind(r.PostForm, item); len(errs) > 0 {
		res.renderForm(w, r, title, action, r.PostForm, errs)
		return
	}

	if err := res.store.Create(r.Context(), item); err != nil {
		res.writeFailed(w, r, err, title, action)
		return
	}

	res.publish(websocket.ActionCreated, item)
	http.Redirect(w, r, res.basePath, http.StatusFound)
}

func (res *resource[T]) Edit(w http.ResponseWriter, r *http.Request) {
	item, ok := res.load(w, r)
	if !ok {
		return
	}
	res.renderForm(w, r, "Edit "+res.kind, res.editAction(res.idOf(item)), res.encode(item), nil)
}

func (res *resource[T]) Update(w http.ResponseWriter, r *http.Request) {
	item, ok := res.load(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	title, action := "Edit "+res.kind, res.editAction(res.idOf(item))
	if errs := res.bind(r.PostForm, item); len(errs) > 0 {
		res.renderForm(w, r, title, action, r.PostForm, errs)
		return
	}

	if err := res.store.Update(r.Context(), item); err != nil {
		res.writeFailed(w, r, err, title, action)
		return
	}

	res.publish(websocket.ActionUpdated, item)
	http.Redirect(w, r, res.basePath, http.StatusFound)
}

func (res *resource[T]) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	item, ok := res.load(w, r)
	if !ok {
		return
	}
	res.views.Render(w, http.StatusOK, "confirm_delete.html", map[string]any{
		"Kind":    res.kind,
		"Object":  fmt.Sprint(item),
		"Cascade": res.cascade,
		"Action":  fmt.Sprintf("%s%d/delete/", res.basePath, res.idOf(item)),
		"Cancel":  res.basePath,
	})
}

func (res *resource[T]) Delete(w http.ResponseWriter, r *http.Request) {
	item, ok := res.load(w, r)
	if !ok {
		return
	}

	err := res.store.Delete(r.Context(), res.idOf(item))
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		serverError(w, r, res.logger, "delete "+res.kind, err)
		return
	}

	res.logger.Info(res.kind+" deleted", "id", res.idOf(item))
	res.publish(websocket.ActionDeleted, item)
	http.Redirect(w, r, res.basePath, http.StatusFound)
}

// load resolves the {id} path value. Ids that do not parse are treated the
// same as ids that do not exist.
func (res *resource[T]) load(w http.ResponseWriter, r *http.Request) (*T, bool) {
	id, err := parseIDParam(r)
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}
	item, err := res.store.GetByID(r.Context(), id)
	if err != nil {
		serverError(w, r, res.logger, "get "+res.kind, err)
		return nil, false
	}
	if item == nil {
		http.NotFound(w, r)
		return nil, false
	}
	return item, true
}

func (res *resource[T]) bind(form url.Values, item *T) chore.ValidationErrors {
	errs := res.decode(form, item)
	return merge(errs, res.validate(*item))
}

func (res *resource[T]) writeFailed(w http.ResponseWriter, r *http.Request, err error, title, action string) {
	if v, ok := chore.AsValidation(err); ok {
		res.renderForm(w, r, title, action, r.PostForm, v)
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	serverError(w, r, res.logger, "save "+res.kind, err)
}

func (res *resource[T]) renderForm(w http.ResponseWriter, r *http.Request, title, action string, form url.Values, errs chore.ValidationErrors) {
	page := formPage{
		Title:  title,
		Action: action,
		Form:   form,
		Errors: errs.ByField(),
	}
	if res.extra != nil {
		extra, err := res.extra(r.Context())
		if err != nil {
			serverError(w, r, res.logger, "load form choices", err)
			return
		}
		page.Extra = extra
	}
	res.views.Render(w, http.StatusOK, res.formPage, page)
}

func (res *resource[T]) publish(action string, item *T) {
	var extra map[string]any
	if res.payload != nil {
		extra = res.payload(item)
	}
	res.hub.Publish(res.entity, action, res.idOf(item), extra)
}
