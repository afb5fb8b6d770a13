package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"atrika/internal/config"
	"atrika/internal/domain"
	"atrika/internal/metrics"

	"github.com/rs/zerolog"
)

// Deps are the services the HTTP API fronts. Ready is optional and reports
// whether the session backend answers.
type Deps struct {
	Search   domain.SearchService
	Bookings domain.BookingService
	Accounts domain.AccountService
	Deals    domain.DealService
	Ready    func(ctx context.Context) error
}

// HTTPServer exposes the booking flow as a JSON API.
type HTTPServer struct {
	cfg     config.APIConfig
	deps    Deps
	logger  *zerolog.Logger
	limiter *rateLimiter
	server  *http.Server
	now     func() time.Time
}

func NewHTTPServer(cfg config.APIConfig, deps Deps, logger *zerolog.Logger) *HTTPServer {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	srv := &HTTPServer{
		cfg:     cfg,
		deps:    deps,
		logger:  logger,
		limiter: newRateLimiter(&cfg),
		now:     time.Now,
	}

	mux := http.NewServeMux()
	srv.routes(mux)

	handler := srv.loggingMiddleware(srv.limiter.Wrap(mux))

	srv.server = &http.Server{
		Addr:              net.JoinHostPort(cfg.HTTP.Host, strconv.Itoa(cfg.HTTP.Port)),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	return srv
}

func (s *HTTPServer) routes(mux *http.ServeMux) {
	gate := newLoginGate(s.deps.Accounts)

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)

	mux.HandleFunc("POST /api/v1/login", s.handleLogin)
	mux.HandleFunc("POST /api/v1/login/guest", s.handleGuest)
	mux.HandleFunc("POST /api/v1/logout", s.handleLogout)
	mux.HandleFunc("GET /api/v1/destinations", s.handleDestinations)

	mux.Handle("GET /api/v1/me", gate.Wrap(s.handleMe))
	mux.Handle("GET /api/v1/profile", gate.Wrap(s.handleProfile))
	mux.Handle("PUT /api/v1/profile", gate.Wrap(s.handleSaveProfile))
	mux.Handle("POST /api/v1/search", gate.Wrap(s.handleSearch))
	mux.Handle("GET /api/v1/search/history", gate.Wrap(s.handleSearchHistory))
	mux.Handle("POST /api/v1/bookings", gate.Wrap(s.handleBook))
	mux.Handle("GET /api/v1/bookings", gate.Wrap(s.handleBookings))
	mux.Handle("GET /api/v1/bookings/export", gate.Wrap(s.handleExport))
	mux.Handle("POST /api/v1/bookings/{id}/cancel", gate.Wrap(s.handleCancel))
	mux.Handle("GET /api/v1/deals", gate.Wrap(s.handleDeals))
	mux.Handle("GET /api/v1/deals/banner", gate.Wrap(s.handleBanner))
}

// Handler returns the full middleware chain, for tests and embedding.
func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

func (s *HTTPServer) Addr() string {
	return s.server.Addr
}

func (s *HTTPServer) Start() error {
	if s.server == nil {
		return fmt.Errorf("http server is not initialized")
	}
	s.logger.Info().Str("addr", s.server.Addr).Msg("HTTP API listening")
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *HTTPServer) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(recorder, r)

		endpoint := r.Pattern
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.IncHTTP(endpoint)

		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", recorder.status).
			Dur("duration", time.Since(start)).
			Msg("http request")
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
