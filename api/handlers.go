package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"exercise-tracker/apperr"
	"exercise-tracker/database"
	"exercise-tracker/exercise"
	"exercise-tracker/logger"
	"exercise-tracker/metrics"
	"exercise-tracker/user"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
)

type API struct {
	router    *mux.Router
	users     user.Store
	exercises *exercise.Service
	metrics   *metrics.Collector
	logger    *slog.Logger
	accessLog io.Writer
	now       func() time.Time
}

// Options carries the optional collaborators of the API. Zero values are
// replaced with defaults.
type Options struct {
	Logger    *slog.Logger
	AccessLog io.Writer
	Metrics   *metrics.Collector
	Now       func() time.Time
}

func NewAPI(backend *database.Backend, opts Options) *API {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.AccessLog == nil {
		opts.AccessLog = os.Stdout
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.NewCollector(prometheus.NewRegistry())
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &API{
		router:    mux.NewRouter(),
		users:     backend.Users,
		exercises: exercise.NewService(backend.Exercises, backend.Users),
		metrics:   opts.Metrics,
		logger:    opts.Logger,
		accessLog: opts.AccessLog,
		now:       opts.Now,
	}
}

// Router returns the bare router, without logging, recovery or CORS.
func (a *API) Router() http.Handler {
	return a.router
}

func (a *API) Handler() http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(logger.Std(a.logger, slog.LevelError)),
		handlers.PrintRecoveryStack(true),
	)

	// Use Gorilla's built-in logging handler
	return recovery(handlers.LoggingHandler(a.accessLog, cors(a.router)))
}

func (a *API) Response(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		a.logger.Error("encode response", slog.Any("error", err))
	}
}

// writeError is the single place where a failure becomes a response.
func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := apperr.Render(err)
	if status >= http.StatusInternalServerError {
		a.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, message)
}

func (a *API) notFound(w http.ResponseWriter, r *http.Request) {
	a.writeError(w, r, apperr.NotFound("not found"))
}

func (a *API) RegisterRoutes() {
	a.router.Use(a.metrics.Middleware)
	a.router.NotFoundHandler = a.metrics.Middleware(http.HandlerFunc(a.notFound))
	a.router.MethodNotAllowedHandler = a.metrics.Middleware(http.HandlerFunc(a.notFound))

	a.router.HandleFunc("/", a.index).Methods(http.MethodGet, http.MethodHead)
	a.router.HandleFunc("/health", a.health).Methods(http.MethodGet)
	a.router.Handle("/metrics", a.metrics.Handler()).Methods(http.MethodGet)

	r := a.router.PathPrefix("/api/exercise").Subrouter()
	r.HandleFunc("/new-user", a.withBody(a.createUser)).Methods(http.MethodPost)
	r.HandleFunc("/users", a.getUsers).Methods(http.MethodGet)
	r.HandleFunc("/add", a.withBody(a.validateNewExercise(a.addExercise))).Methods(http.MethodPost)
	r.HandleFunc("/log", a.getLog).Methods(http.MethodGet)

	a.router.PathPrefix("/").Handler(a.static()).Methods(http.MethodGet, http.MethodHead)
}
