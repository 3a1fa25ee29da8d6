// Package portfolio hosts the browser-facing portfolio service: a
// server-rendered page over the project catalog with per-visitor UI state.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/pbhende/portfolio/internal/platform/requestctx"
	"github.com/pbhende/portfolio/internal/platform/timeouts"
	"github.com/pbhende/portfolio/internal/services/portfolio/content"
	"github.com/pbhende/portfolio/internal/services/portfolio/domain/integrity"
	"github.com/pbhende/portfolio/internal/services/portfolio/domain/project"
	"github.com/pbhende/portfolio/internal/services/portfolio/metrics"
	"github.com/pbhende/portfolio/internal/services/portfolio/platform/httpx"
	"github.com/pbhende/portfolio/internal/services/portfolio/platform/observability"
	"github.com/pbhende/portfolio/internal/services/portfolio/platform/requestmeta"
	"github.com/pbhende/portfolio/internal/services/portfolio/platform/sessioncookie"
	"github.com/pbhende/portfolio/internal/services/portfolio/routepath"
	"github.com/pbhende/portfolio/internal/services/portfolio/session"
	portfoliostatic "github.com/pbhende/portfolio/internal/services/portfolio/static"
)

// Config defines startup inputs for the portfolio service.
type Config struct {
	HTTPAddr string
	Catalog  *project.Catalog
	Profile  content.Profile
	// Report is the startup integrity report served at /integrity.
	Report              integrity.Report
	SessionIdleTimeout  time.Duration
	TrustForwardedProto bool
	// Metrics is optional; nil disables /metrics and instrumentation.
	Metrics *metrics.Metrics
	Logger  *log.Logger
	Now     func() time.Time
}

// Server hosts the portfolio HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	sessions   *session.Store
}

// NewHandler builds the root handler over a fresh session store.
func NewHandler(cfg Config) (http.Handler, error) {
	handler, _, err := newHandler(cfg)
	return handler, err
}

func newHandler(cfg Config) (http.Handler, *session.Store, error) {
	if cfg.Catalog == nil {
		return nil, nil, errors.New("catalog is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	sessions := session.NewStore(cfg.Catalog, cfg.SessionIdleTimeout)
	if err := cfg.Metrics.WatchSessions(sessions.Len); err != nil {
		return nil, nil, err
	}
	h := &handlers{
		catalog:  cfg.Catalog,
		profile:  cfg.Profile,
		report:   cfg.Report,
		sessions: sessions,
		metrics:  cfg.Metrics,
		policy:   requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		now:      now,
	}

	route := func(pattern string, handler http.Handler, methods ...string) (string, http.Handler) {
		return pattern, httpx.Chain(handler,
			cfg.Metrics.Instrument(routeLabel(pattern)),
			httpx.RequireMethod(methods...),
		)
	}

	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(portfoliostatic.FS))))
	mux.Handle(route("/{$}", http.HandlerFunc(h.index), http.MethodGet, http.MethodHead))
	mux.Handle(route(routepath.ProjectPattern, http.HandlerFunc(h.openProject), http.MethodGet))
	mux.Handle(route(routepath.ProjectsClosePattern, http.HandlerFunc(h.closeProject), http.MethodPost))
	mux.Handle(route(routepath.Theme, http.HandlerFunc(h.toggleTheme), http.MethodPost))
	mux.Handle(route(routepath.Integrity, http.HandlerFunc(h.integrityReport), http.MethodGet))
	mux.Handle(route(routepath.Health, http.HandlerFunc(h.health), http.MethodGet, http.MethodHead))
	if cfg.Metrics != nil {
		mux.Handle(routepath.Metrics, cfg.Metrics.Handler())
	}
	mux.Handle(routepath.Root, http.HandlerFunc(h.notFound))

	return httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.Trace(nil),
		observability.RequestLogger(logger),
		requireSameOrigin(h.policy),
		attachSession(),
	), sessions, nil
}

// attachSession moves the visitor session cookie into the request context.
func attachSession() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sessionID, ok := sessioncookie.Read(r); ok {
				r = r.WithContext(requestctx.WithSessionID(r.Context(), sessionID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// routeLabel drops the method from a ServeMux pattern.
func routeLabel(pattern string) string {
	if _, path, ok := strings.Cut(pattern, " "); ok {
		return path
	}
	return pattern
}

// requireSameOrigin rejects state-changing requests that cannot prove they
// came from this site.
func requireSameOrigin(policy requestmeta.SchemePolicy) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutationMethod(r) {
				next.ServeHTTP(w, r)
				return
			}
			if !requestmeta.HasSameOriginProofWithPolicy(r, policy) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutationMethod(r *http.Request) bool {
	if r == nil {
		return false
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

// NewServer validates config and constructs a portfolio server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, sessions, err := newHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose portfolio handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		sessions: sessions,
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server
// stop. Idle sessions are swept for as long as it runs.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("portfolio server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	var sweeper sync.WaitGroup
	sweeper.Add(1)
	go func() {
		defer sweeper.Done()
		s.sessions.RunSweeper(sweepCtx, timeouts.SessionSweep)
	}()
	defer func() {
		stopSweep()
		sweeper.Wait()
	}()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()
	log.Printf("portfolio listening addr=%s", s.httpAddr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		<-serveErr
		if err != nil {
			return fmt.Errorf("shutdown portfolio http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve portfolio http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
