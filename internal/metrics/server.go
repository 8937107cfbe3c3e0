package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/finvops/aplookup-mcp/internal/logging"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger reports backend health for the /healthz endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server serves Prometheus metrics and a health check over HTTP, separate
// from the stdio protocol stream.
type Server struct {
	srv    *http.Server
	logger *logging.Logger
}

// NewServer creates a metrics server listening on addr.
func NewServer(addr string, pinger Pinger, logger *logging.Logger) *Server {
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if pinger != nil {
			if err := pinger.Ping(ctx); err != nil {
				http.Error(w, "database unreachable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	return &Server{
		srv: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Start begins serving in the background.
func (s *Server) Start() {
	go func() {
		s.logger.Info("Metrics server listening", map[string]interface{}{"addr": s.srv.Addr})
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Metrics server failed", err, nil)
		}
	}()
}

// Stop shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
