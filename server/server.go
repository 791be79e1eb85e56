package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/huntmatch/pkg/domain"
	"github.com/umputun/huntmatch/pkg/matcher"
	"github.com/umputun/huntmatch/pkg/notify"
	"github.com/umputun/huntmatch/pkg/suggest"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/matcher.go -pkg mocks -skip-ensure -fmt goimports . Matcher
//go:generate moq -out mocks/dispatcher.go -pkg mocks -skip-ensure -fmt goimports . Dispatcher
//go:generate moq -out mocks/ingester.go -pkg mocks -skip-ensure -fmt goimports . Ingester
//go:generate moq -out mocks/suggester.go -pkg mocks -skip-ensure -fmt goimports . Suggester
//go:generate moq -out mocks/blocklist.go -pkg mocks -skip-ensure -fmt goimports . Blocklist
//go:generate moq -out mocks/status.go -pkg mocks -skip-ensure -fmt goimports . StatusProvider
//go:generate moq -out mocks/notifications.go -pkg mocks -skip-ensure -fmt goimports . Notifications

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	deps    Deps
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Deps are services used by handlers
type Deps struct {
	Matcher       Matcher
	Dispatcher    Dispatcher
	Ingester      Ingester
	Suggester     Suggester
	Blocklist     Blocklist
	Notifications Notifications
	Status        StatusProvider // optional
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Matcher selects hunters for a post and previews keywords
type Matcher interface {
	Match(ctx context.Context, postID string) (matcher.Result, error)
	Keywords(ctx context.Context, text, postID string) ([]string, error)
}

// Dispatcher enqueues notification jobs for candidates
type Dispatcher interface {
	Dispatch(ctx context.Context, candidates []domain.MatchCandidate) (notify.Report, error)
}

// Ingester requests ingestion of solved posts
type Ingester interface {
	RequestIngest(ctx context.Context, postID string) error
}

// Suggester makes suggestions from solved knowledge
type Suggester interface {
	Suggest(ctx context.Context, req suggest.Request) (suggest.Result, error)
}

// Blocklist manages per-user block lists
type Blocklist interface {
	Block(ctx context.Context, userID, targetID string) error
	Unblock(ctx context.Context, userID, targetID string) error
	Blocked(ctx context.Context, userID string) ([]string, error)
}

// Notifications reads the delivery log
type Notifications interface {
	GetByJob(ctx context.Context, jobID string) (*domain.NotificationLogEntry, error)
	ListByRecipient(ctx context.Context, recipientID string, limit int) ([]domain.NotificationLogEntry, error)
}

// StatusProvider reports state of stores and workers
type StatusProvider interface {
	Status(ctx context.Context) (map[string]any, error)
}

// New initializes a new server instance
func New(cfg ConfigProvider, deps Deps, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		deps:    deps,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// Handler returns the http handler with all routes and middlewares
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("huntmatch", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("POST /match-notify", s.matchNotifyHandler)
		r.HandleFunc("POST /ingest", s.ingestHandler)
		r.HandleFunc("POST /suggest", s.suggestHandler)
		r.HandleFunc("POST /keywords", s.keywordsHandler)

		r.HandleFunc("GET /blocks", s.listBlocksHandler)
		r.HandleFunc("POST /blocks/{targetId}", s.blockHandler)
		r.HandleFunc("DELETE /blocks/{targetId}", s.unblockHandler)

		r.HandleFunc("GET /notifications", s.listNotificationsHandler)
		r.HandleFunc("GET /notifications/{jobId}", s.getNotificationHandler)
	})
}
