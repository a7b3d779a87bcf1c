package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ai_finance_dashboard/dashboard"
	"ai_finance_dashboard/generator"
)

//go:embed web/dist
var embeddedStatic embed.FS

const generateTimeout = 120 * time.Second

type Server struct {
	genAgent *generator.Agent
	ledger   *dashboard.Ledger
	store    *sessionStore
	staticFS http.Handler
	logger   *log.Logger
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*generator.Session
}

func newStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*generator.Session)}
}

func (s *sessionStore) set(id string, sess *generator.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
}

func (s *sessionStore) get(id string) (*generator.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func New(genAgent *generator.Agent, ledger *dashboard.Ledger, logger *log.Logger) (*Server, error) {
	if genAgent == nil {
		return nil, errors.New("generator agent required")
	}
	if ledger == nil {
		return nil, errors.New("ledger required")
	}
	if logger == nil {
		logger = log.Default()
	}

	sub, err := fs.Sub(embeddedStatic, "web/dist")
	if err != nil {
		return nil, err
	}

	return &Server{
		genAgent: genAgent,
		ledger:   ledger,
		store:    newStore(),
		staticFS: http.FileServer(http.FS(sub)),
		logger:   logger,
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/dashboard", s.handleDashboard)
	mux.HandleFunc("/api/transfer", s.handleTransfer)
	mux.HandleFunc("/api/insights", s.handleInsightCreate)
	mux.HandleFunc("/api/insights/stream", s.handleInsightStream)
	mux.HandleFunc("/api/insights/", s.handleInsightByID)
	mux.Handle("/", s.staticHandler())
	return s.logMiddleware(mux)
}

func (s *Server) staticHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// fall back to index.html for SPA-ish behavior
		upath := r.URL.Path
		if upath == "/" || !strings.HasPrefix(upath, "/api/") {
			p := upath
			if p == "/" {
				p = "/index.html"
			}
			r.URL.Path = p
			s.staticFS.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// --- Handlers ---

type insightCreateReq struct {
	Prompt string `json:"prompt"`
}

type reviseReq struct {
	Comment string `json:"comment"`
}

type transferReq struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

type insightResp struct {
	SessionID       string            `json:"session_id"`
	Insight         generator.Insight `json:"insight"`
	ExplanationHTML string            `json:"explanation_html,omitempty"`
	History         []generator.Turn  `json:"history"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, s.ledger.Snapshot())
}

func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req transferReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.ledger.Transfer(req.From, req.To, req.Amount); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, s.ledger.Snapshot())
}

func (s *Server) handleInsightCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	req, ok := decodeInsightReq(w, r)
	if !ok {
		return
	}

	id := uuid.NewString()
	sess := generator.NewSession(id, s.insightSpec(req.Prompt), s.genAgent)
	ctx, cancel := context.WithTimeout(r.Context(), generateTimeout)
	defer cancel()

	insight, err := sess.Propose(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	s.store.set(id, sess)
	writeJSON(w, s.insightResp(id, sess, insight))
}

// handleInsightStream runs a generation and pushes the live extraction
// state over Server-Sent Events: one "update" event per model chunk, then
// a final "done" event with the post-processed insight. The client is the
// presentation sink; it just replaces its view with each snapshot.
func (s *Server) handleInsightStream(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	req, ok := decodeInsightReq(w, r)
	if !ok {
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	writeEvent := func(event string, v any) {
		data, err := json.Marshal(v)
		if err != nil {
			return
		}
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
	}

	id := uuid.NewString()
	sess := generator.NewSession(id, s.insightSpec(req.Prompt), s.genAgent)
	ctx, cancel := context.WithTimeout(r.Context(), generateTimeout)
	defer cancel()

	insight, err := sess.ProposeStream(ctx, func(snap generator.Snapshot) {
		writeEvent("update", snap)
	})
	if err != nil {
		writeEvent("error", map[string]string{"error": err.Error()})
		return
	}
	s.store.set(id, sess)
	writeEvent("done", s.insightResp(id, sess, insight))
}

func (s *Server) handleInsightByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/insights/")
	if id == "" {
		http.NotFound(w, r)
		return
	}
	sess, ok := s.store.get(id)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		writeJSON(w, s.insightResp(id, sess, sess.Insight))
	case http.MethodPost:
		var req reviseReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), generateTimeout)
		defer cancel()
		insight, err := sess.Revise(ctx, req.Comment)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		writeJSON(w, s.insightResp(id, sess, insight))
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// --- Helpers ---

func (s *Server) insightSpec(prompt string) generator.Spec {
	return generator.Spec{
		Prompt:  prompt,
		Context: s.ledger.PromptContext(),
	}
}

func (s *Server) insightResp(id string, sess *generator.Session, insight generator.Insight) insightResp {
	html, err := dashboard.RenderHTML(insight.Explanation)
	if err != nil {
		html = ""
	}
	return insightResp{
		SessionID:       id,
		Insight:         insight,
		ExplanationHTML: html,
		History:         sess.History,
	}
}

func decodeInsightReq(w http.ResponseWriter, r *http.Request) (insightCreateReq, bool) {
	var req insightCreateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return insightCreateReq{}, false
	}
	if strings.TrimSpace(req.Prompt) == "" {
		http.Error(w, "prompt is required", http.StatusBadRequest)
		return insightCreateReq{}, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
