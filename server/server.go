// Package server exposes the REST API: subscriber registration, topic and
// subscription management, manual digest and ingestion triggers, and stats.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/habrdigest/habrdigest/pkg/digest"
	"github.com/habrdigest/habrdigest/pkg/domain"
	"github.com/habrdigest/habrdigest/pkg/repository"
	"github.com/habrdigest/habrdigest/pkg/service"
)

//go:generate moq -out mocks/service.go -pkg mocks -skip-ensure -fmt goimports . Service
//go:generate moq -out mocks/scheduler.go -pkg mocks -skip-ensure -fmt goimports . Scheduler
//go:generate moq -out mocks/digester.go -pkg mocks -skip-ensure -fmt goimports . Digester
//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	svc       Service
	scheduler Scheduler
	digester  Digester
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Service provides subscriber, topic, and subscription operations
type Service interface {
	GetStats(ctx context.Context) (*domain.Stats, error)
	GetTopics(ctx context.Context, activeOnly bool) ([]*domain.Topic, error)
	CreateTopic(ctx context.Context, topic *domain.Topic) error
	UpdateTopicStatus(ctx context.Context, id int64, active bool) error
	EnsureSubscriber(ctx context.Context, sub *domain.Subscriber) (*domain.Subscriber, bool, error)
	Deactivate(ctx context.Context, subscriberID int64) error
	Subscribe(ctx context.Context, subscriberID, topicID int64, frequencyHours int) (*domain.Subscription, error)
	Unsubscribe(ctx context.Context, subscriberID, topicID int64) error
	GetActiveSubscriptions(ctx context.Context, subscriberID int64) ([]*domain.Subscription, error)
	GetRecentRuns(ctx context.Context, limit int) ([]*domain.IngestionRun, error)
}

// Scheduler interface for on-demand pipeline runs
type Scheduler interface {
	DeliverNow(ctx context.Context) (domain.TickStats, error)
	IngestNow(ctx context.Context) error
	SummarizeNow(ctx context.Context) error
}

// Digester interface for per-subscriber delivery operations
type Digester interface {
	SendDigest(ctx context.Context, subscriberID, topicID int64) error
	SendWelcome(ctx context.Context, chatID int64)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, svc Service, scheduler Scheduler, digester Digester, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		svc:       svc,
		scheduler: scheduler,
		digester:  digester,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("habrdigest", "habrdigest", s.version))
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
		r.HandleFunc("GET /stats", s.statsHandler)

		r.HandleFunc("GET /topics", s.listTopicsHandler)
		r.HandleFunc("POST /topics", s.createTopicHandler)
		r.HandleFunc("POST /topics/{id}/enable", s.enableTopicHandler)
		r.HandleFunc("POST /topics/{id}/disable", s.disableTopicHandler)

		r.HandleFunc("POST /subscribers", s.registerSubscriberHandler)
		r.HandleFunc("DELETE /subscribers/{id}", s.deactivateSubscriberHandler)
		r.HandleFunc("GET /subscribers/{id}/subscriptions", s.listSubscriptionsHandler)
		r.HandleFunc("POST /subscribers/{id}/subscriptions", s.subscribeHandler)
		r.HandleFunc("DELETE /subscribers/{id}/subscriptions/{topic}", s.unsubscribeHandler)
		r.HandleFunc("POST /subscribers/{id}/digest/{topic}", s.sendDigestHandler)

		r.HandleFunc("GET /runs", s.listRunsHandler)

		r.HandleFunc("POST /admin/digest", s.triggerDigestHandler)
		r.HandleFunc("POST /admin/ingest", s.triggerIngestHandler)
		r.HandleFunc("POST /admin/summarize", s.triggerSummarizeHandler)
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}

// errToStatus maps known domain errors to HTTP status codes
func errToStatus(err error) int {
	switch {
	case errors.Is(err, repository.ErrTopicNotFound),
		errors.Is(err, repository.ErrSubscriberNotFound),
		errors.Is(err, repository.ErrSubscriptionNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrDuplicateTopic),
		errors.Is(err, repository.ErrDuplicateSubscription),
		errors.Is(err, digest.ErrTickInProgress):
		return http.StatusConflict
	case errors.Is(err, service.ErrFrequencyOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
