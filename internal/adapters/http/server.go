// Package http exposes the assessment engine over a small JSON API.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fbruhn/datakompass/internal/i18n"
	"github.com/fbruhn/datakompass/internal/logging"
	"github.com/fbruhn/datakompass/internal/presentation/graph"
	"github.com/fbruhn/datakompass/pkg/catalog"
	"github.com/fbruhn/datakompass/pkg/domain"
	"github.com/fbruhn/datakompass/pkg/engine"
	"github.com/fbruhn/datakompass/pkg/rules"
	"github.com/fbruhn/datakompass/pkg/session"
)

// Server wires the questionnaire core to HTTP handlers. Each request
// loads the session, applies one mutation through a fresh traversal, and
// persists the result under the session lock.
type Server struct {
	catalog  *catalog.Catalog
	sessions *session.Manager
	rules    *rules.Engine
	metrics  *Metrics
	logger   *slog.Logger
}

// ServerOption configures the Server.
type ServerOption func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) { s.logger = logger }
}

// WithRegistry registers the adapter metrics on a custom registry
// instead of the default one.
func WithRegistry(reg prometheus.Registerer) ServerOption {
	return func(s *Server) { s.metrics = NewMetrics(reg) }
}

// NewServer creates a Server over the given catalog and session manager.
func NewServer(cat *catalog.Catalog, sessions *session.Manager, ruleEngine *rules.Engine, opts ...ServerOption) *Server {
	s := &Server{
		catalog:  cat,
		sessions: sessions,
		rules:    ruleEngine,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = NewMetrics(prometheus.DefaultRegisterer)
	}
	return s
}

// Handler builds the chi router for the server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleStartSession)
		r.Get("/", s.handleListSessions)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleDeleteSession)
			r.Get("/question", s.handleCurrentQuestion)
			r.Post("/answers", s.handleAnswer)
			r.Post("/navigate", s.handleNavigate)
			r.Get("/summary", s.handleSummary)
			r.Get("/report", s.handleReport)
			r.Get("/diagram", s.handleDiagram)
			r.Get("/export", s.handleExport)
			r.Post("/import", s.handleImport)
		})
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type startSessionRequest struct {
	SessionID string `json:"session_id"`
	Language  string `json:"language"`
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var body startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if body.SessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}
	if body.Language == "" {
		body.Language = i18n.DefaultLanguage
	}

	state, err := s.sessions.LoadOrStart(r.Context(), body.SessionID, body.Language)
	if err != nil {
		s.logger.Error("failed to start session", "session_id", body.SessionID, "err", err)
		http.Error(w, "failed to start session", http.StatusInternalServerError)
		return
	}
	s.metrics.SessionsStarted.Inc()
	writeJSON(w, http.StatusCreated, stateResponse(state))
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := s.sessions.List(r.Context())
	if err != nil {
		http.Error(w, "failed to list sessions", http.StatusInternalServerError)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"sessions": ids})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	state, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, stateResponse(state))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if err := s.sessions.Delete(r.Context(), sessionID); err != nil {
		http.Error(w, "failed to delete session", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type questionResponse struct {
	Question  *domain.Question `json:"question,omitempty"`
	Completed bool             `json:"completed"`
	Current   int              `json:"current"`
	Total     int              `json:"total"`
}

func (s *Server) handleCurrentQuestion(w http.ResponseWriter, r *http.Request) {
	state, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	trav := engine.NewTraversal(s.catalog, state)
	resp := questionResponse{Completed: trav.Completed()}
	resp.Current, resp.Total = trav.Progress()
	if q, ok := trav.Current(); ok {
		resp.Question = &q
	}
	writeJSON(w, http.StatusOK, resp)
}

type answerRequest struct {
	QuestionID string `json:"question_id"`
	Value      any    `json:"value"`
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	var body answerRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if body.QuestionID == "" {
		http.Error(w, "question_id is required", http.StatusBadRequest)
		return
	}

	err := s.sessions.WithLock(r.Context(), sessionID, func(ctx context.Context) error {
		state, err := s.sessions.Store().Load(ctx, sessionID)
		if err != nil {
			return err
		}
		trav := engine.NewTraversal(s.catalog, state, engine.WithLogger(s.logger))
		if err := trav.Answer(body.QuestionID, body.Value); err != nil {
			return err
		}
		return s.sessions.Store().Save(ctx, sessionID, state)
	})
	if err != nil {
		s.writeSessionError(w, sessionID, err)
		return
	}
	s.metrics.AnswersRecorded.Inc()
	w.WriteHeader(http.StatusNoContent)
}

type navigateRequest struct {
	Direction string `json:"direction"`
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	var body navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var resp questionResponse
	err := s.sessions.WithLock(r.Context(), sessionID, func(ctx context.Context) error {
		state, err := s.sessions.Store().Load(ctx, sessionID)
		if err != nil {
			return err
		}
		trav := engine.NewTraversal(s.catalog, state, engine.WithLogger(s.logger))
		switch body.Direction {
		case "next":
			if err := trav.Advance(); err != nil {
				return err
			}
		case "back":
			trav.Retreat()
		default:
			return fmt.Errorf("unknown direction %q", body.Direction)
		}
		if trav.Completed() {
			s.metrics.SessionsCompleted.Inc()
		}
		resp.Completed = trav.Completed()
		resp.Current, resp.Total = trav.Progress()
		if q, ok := trav.Current(); ok {
			resp.Question = &q
		}
		return s.sessions.Store().Save(ctx, sessionID, state)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotAnswered) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		s.writeSessionError(w, sessionID, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	state, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	trav := engine.NewTraversal(s.catalog, state)
	rows := engine.Summarize(s.catalog, trav.Answers(), trav.Evaluator())
	if rows == nil {
		rows = []engine.SummaryRow{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"summary": rows})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	state, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	s.metrics.RuleEvaluations.Inc()
	suggestions := s.rules.Evaluate(engine.NewTraversal(s.catalog, state).Answers())

	switch r.URL.Query().Get("format") {
	case "", "json":
		w.Header().Set("Content-Type", "application/json")
		_ = rules.WriteJSON(w, suggestions)
	case "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		_ = rules.WriteMarkdown(w, i18n.Text(state.Language, "report_title"), suggestions)
	case "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		_ = rules.WriteCSV(w, suggestions)
	default:
		http.Error(w, "unknown format", http.StatusBadRequest)
	}
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	state, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	script := graph.GenerateD2(engine.NewTraversal(s.catalog, state).Answers(), state.Language)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(script))
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	state, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := session.Export(w, state); err != nil {
		s.logger.Error("export failed", "session_id", state.SessionID, "err", err)
	}
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	var body bytes.Buffer
	if _, err := body.ReadFrom(r.Body); err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	err := s.sessions.WithLock(r.Context(), sessionID, func(ctx context.Context) error {
		state, err := s.sessions.Store().Load(ctx, sessionID)
		if err != nil {
			if !errors.Is(err, domain.ErrSessionNotFound) {
				return err
			}
			state = domain.NewState(sessionID, i18n.DefaultLanguage)
		}
		if err := session.Import(&body, state); err != nil {
			return err
		}
		return s.sessions.Store().Save(ctx, sessionID, state)
	})
	if err != nil {
		if errors.Is(err, domain.ErrMalformedSnapshot) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		s.writeSessionError(w, sessionID, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) loadSession(w http.ResponseWriter, r *http.Request) (*domain.State, bool) {
	sessionID := chi.URLParam(r, "sessionID")
	state, err := s.sessions.Load(r.Context(), sessionID)
	if err != nil {
		s.writeSessionError(w, sessionID, err)
		return nil, false
	}
	return state, true
}

func (s *Server) writeSessionError(w http.ResponseWriter, sessionID string, err error) {
	if errors.Is(err, domain.ErrSessionNotFound) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	s.logger.Error("session operation failed", "session_id", sessionID, "err", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

type sessionResponse struct {
	SessionID    string `json:"session_id"`
	CurrentIndex int    `json:"current_question_index"`
	Completed    bool   `json:"completed"`
	Language     string `json:"language"`
	Answered     int    `json:"answered"`
}

func stateResponse(state *domain.State) sessionResponse {
	return sessionResponse{
		SessionID:    state.SessionID,
		CurrentIndex: state.CurrentIndex,
		Completed:    state.Completed,
		Language:     state.Language,
		Answered:     len(state.Answers),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
