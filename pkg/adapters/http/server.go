package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aretw0/stagedash/pkg/domain"
	"github.com/aretw0/stagedash/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server exposes a ports.PipelineSource as the pipeline state API.
type Server struct {
	Source  ports.PipelineSource
	Logger  *slog.Logger
	Metrics http.Handler
	Token   string
}

type ServerOption func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetrics mounts h on GET /metrics.
func WithMetrics(h http.Handler) ServerOption {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithRequiredToken rejects requests that do not carry the bearer token.
// /healthz stays open.
func WithRequiredToken(token string) ServerOption {
	return func(s *Server) {
		s.Token = token
	}
}

// NewHandler creates a new HTTP handler serving source.
func NewHandler(source ports.PipelineSource, opts ...ServerOption) http.Handler {
	s := &Server{
		Source: source,
		Logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.Health)
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}
	r.Group(func(r chi.Router) {
		r.Use(s.authorize)
		r.Get("/pipelines", s.ListPipelines)
		r.Get("/pipelines/{name}/state", s.PipelineState)
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Token != "" && r.Header.Get("Authorization") != "Bearer "+s.Token {
			s.writeError(w, http.StatusUnauthorized, "missing or invalid token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListPipelines handles GET /pipelines.
func (s *Server) ListPipelines(w http.ResponseWriter, r *http.Request) {
	names, err := s.Source.ListPipelines(r.Context())
	if err != nil {
		s.Logger.Error("ListPipelines failed", "error", err)
		s.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	resp := ListPipelinesResponse{Pipelines: make([]PipelineSummary, 0, len(names))}
	for _, name := range names {
		resp.Pipelines = append(resp.Pipelines, PipelineSummary{Name: name})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// PipelineState handles GET /pipelines/{name}/state.
func (s *Server) PipelineState(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	pipeline, err := s.Source.PipelineState(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrPipelineNotFound) {
			s.writeError(w, http.StatusNotFound, err.Error())
			return
		}
		s.Logger.Error("PipelineState failed", "pipeline", name, "error", err)
		s.writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, mapPipelineFromDomain(pipeline))
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	s.writeJSON(w, code, ErrorResponse{Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}
