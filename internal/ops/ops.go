package ops

import (
	"net/http"
	"net/http/pprof"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fatalview/internal"
)

var logger = internal.NewLogger("Ops")

// Server is the operational sidecar: liveness, readiness and optional
// pprof on a port separate from the dashboard, so probes and profiling
// never mix with user traffic.
type Server struct {
	router *chi.Mux
	ready  func() bool
}

// NewServer builds the ops router. ready reports whether the Traffic
// table finished loading.
func NewServer(ready func() bool, pprofEnabled bool) *Server {
	s := &Server{
		router: chi.NewRouter(),
		ready:  ready,
	}

	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/readyz", s.handleReady)

	if pprofEnabled {
		s.router.HandleFunc("/debug/pprof/", pprof.Index)
		s.router.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		s.router.HandleFunc("/debug/pprof/profile", pprof.Profile)
		s.router.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		s.router.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}

	return s
}

// Start blocks serving the ops endpoints.
func (s *Server) Start(addr string) error {
	logger.Info("listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if s.ready == nil || !s.ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"loading"}`))
		return
	}
	w.Write([]byte(`{"status":"ready"}`))
}
