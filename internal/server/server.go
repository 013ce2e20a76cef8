package server

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dukerupert/choretracker/internal/chore"
	"github.com/dukerupert/choretracker/internal/handler"
	"github.com/dukerupert/choretracker/internal/middleware"
	"github.com/dukerupert/choretracker/internal/store"
	ws "github.com/dukerupert/choretracker/internal/websocket"
	"github.com/dukerupert/choretracker/web"
)

// wsConnectLimit caps websocket upgrades per client IP per minute.
const wsConnectLimit = 30

type Options struct {
	// AdminPasswordHash guards delete routes when set.
	AdminPasswordHash string
	// WSOrigins are extra hosts allowed to open the live update socket.
	WSOrigins []string
	// Location decides the calendar day used as "today".
	Location *time.Location
	// Now overrides the clock; tests pin it.
	Now func() time.Time
}

type Server struct {
	db          *sql.DB
	hub         *ws.Hub
	opts        Options
	childH      *handler.ChildHandler
	choreH      *handler.ChoreHandler
	assignmentH *handler.AssignmentHandler
	reportH     *handler.ReportHandler
	healthH     *handler.HealthHandler
	rateLimiter *middleware.RateLimiter
	logger      *slog.Logger
}

func New(db *sql.DB, opts Options, logger *slog.Logger) (*Server, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	today := func() time.Time { return chore.Today(opts.Now(), opts.Location) }

	views, err := handler.LoadViews(web.TemplatesFS, logger.With("component", "views"))
	if err != nil {
		return nil, fmt.Errorf("load views: %w", err)
	}

	hub := ws.NewHub(logger.With("component", "websocket"))

	childStore := store.NewChildStore(db)
	choreStore := store.NewChoreStore(db)
	assignmentStore := store.NewAssignmentStore(db)

	return &Server{
		db:          db,
		hub:         hub,
		opts:        opts,
		childH:      handler.NewChildHandler(childStore, views, hub, logger.With("component", "child")),
		choreH:      handler.NewChoreHandler(choreStore, views, hub, logger.With("component", "chore")),
		assignmentH: handler.NewAssignmentHandler(assignmentStore, childStore, choreStore, views, hub, today, logger.With("component", "assignment")),
		reportH:     handler.NewReportHandler(childStore, assignmentStore, views, today, logger.With("component", "report")),
		healthH:     handler.NewHealthHandler(db, logger.With("component", "health")),
		rateLimiter: middleware.NewRateLimiter(),
		logger:      logger,
	}, nil
}

func (s *Server) Hub() *ws.Hub {
	return s.hub
}

func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/children/", http.StatusFound)
	})
	mux.HandleFunc("GET /health", s.healthH.Check)
	wsLimit := middleware.RateLimit(s.rateLimiter, middleware.ByIP("ws"), wsConnectLimit, time.Minute)
	mux.Handle("GET /ws", wsLimit(ws.HandleWebSocket(s.hub, s.opts.WSOrigins, s.logger.With("component", "websocket"))))

	s.registerRoutes(mux)

	var h http.Handler = mux
	h = chimw.Recoverer(h)
	h = middleware.RequestLogger(s.logger.With("component", "http"))(h)
	h = chimw.RequestID(h)
	return h
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	admin := middleware.RequireAdmin(s.opts.AdminPasswordHash, s.rateLimiter, s.logger.With("component", "admin"))
	guarded := func(h http.HandlerFunc) http.Handler { return admin(h) }

	mux.HandleFunc("GET /children/{$}", s.childH.List)
	mux.HandleFunc("GET /children/create/{$}", s.childH.New)
	mux.HandleFunc("POST /children/create/{$}", s.childH.Create)
	mux.HandleFunc("GET /children/{id}/edit/{$}", s.childH.Edit)
	mux.HandleFunc("POST /children/{id}/edit/{$}", s.childH.Update)
	mux.Handle("GET /children/{id}/delete/{$}", guarded(s.childH.ConfirmDelete))
	mux.Handle("POST /children/{id}/delete/{$}", guarded(s.childH.Delete))

	mux.HandleFunc("GET /children/{id}/points/{$}", s.reportH.Points)
	mux.HandleFunc("GET /children/{id}/calendar/{$}", s.reportH.Calendar)
	mux.HandleFunc("GET /children/{id}/calendar/{year}/{month}/{$}", s.reportH.Calendar)
	mux.HandleFunc("GET /children/{id}/graph/{$}", s.reportH.Graph)
	mux.HandleFunc("GET /children/{id}/graph/data/{$}", s.reportH.GraphData)

	mux.HandleFunc("GET /chores/{$}", s.choreH.List)
	mux.HandleFunc("GET /chores/create/{$}", s.choreH.New)
	mux.HandleFunc("POST /chores/create/{$}", s.choreH.Create)
	mux.HandleFunc("GET /chores/{id}/edit/{$}", s.choreH.Edit)
	mux.HandleFunc("POST /chores/{id}/edit/{$}", s.choreH.Update)
	mux.Handle("GET /chores/{id}/delete/{$}", guarded(s.choreH.ConfirmDelete))
	mux.Handle("POST /chores/{id}/delete/{$}", guarded(s.choreH.Delete))

	mux.HandleFunc("GET /assignments/{$}", s.assignmentH.List)
	mux.HandleFunc("GET /assignments/create/{$}", s.assignmentH.New)
	mux.HandleFunc("POST /assignments/create/{$}", s.assignmentH.Create)
	mux.HandleFunc("GET /assignments/{id}/edit/{$}", s.assignmentH.Edit)
	mux.HandleFunc("POST /assignments/{id}/edit/{$}", s.assignmentH.Update)
	mux.HandleFunc("POST /assignments/{id}/complete/{$}", s.assignmentH.Complete)
	mux.Handle("GET /assignments/{id}/delete/{$}", guarded(s.assignmentH.ConfirmDelete))
	mux.Handle("POST /assignments/{id}/delete/{$}", guarded(s.assignmentH.Delete))
}
