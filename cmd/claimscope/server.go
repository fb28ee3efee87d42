// cmd/claimscope/server.go
package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
)

const invalidClaimMessage = "Please enter a valid claim (at least 10 characters)"

// Server is the web front-end: a form page for humans and a small JSON API
type Server struct {
	cfg     *Config
	checker *Checker
	router  *mux.Router
}

// NewServer builds the HTTP surface around a checker
func NewServer(cfg *Config, checker *Checker) *Server {
	s := &Server{
		cfg:     cfg,
		checker: checker,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := mux.NewRouter()

	r.HandleFunc("/", s.handleHome).Methods("GET")
	r.HandleFunc("/analyze", s.handleAnalyzeForm).Methods("POST")
	r.HandleFunc("/ws", s.checker.hub.handleWebsocket)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/check", s.handleCheck).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/status", s.handleStatus).Methods("GET")
	api.HandleFunc("/errors", s.handleErrors).Methods("GET")

	s.router = r
}

// Start blocks serving HTTP on the configured port
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.DashboardPort)
	return http.ListenAndServe(addr, s.router)
}

// Handler exposes the router for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// handleHome renders the claim entry page
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	renderIndex(w, &indexData{})
}

// handleAnalyzeForm runs the pipeline for a browser form submission and
// renders the result inline
func (s *Server) handleAnalyzeForm(w http.ResponseWriter, r *http.Request) {
	claim := r.FormValue("claim")

	if !ValidateClaim(claim) {
		countRejection()
		renderIndex(w, &indexData{Claim: claim, Warning: invalidClaimMessage})
		return
	}

	result := s.checker.Check(r.Context(), claim)
	renderIndex(w, &indexData{Claim: claim, Result: result})
}

// handleCheck is the JSON API equivalent of the form flow
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Claim string `json:"claim"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !ValidateClaim(req.Claim) {
		countRejection()
		respondWithError(w, http.StatusBadRequest, invalidClaimMessage)
		return
	}

	result := s.checker.Check(r.Context(), req.Claim)
	respondWithJSON(w, http.StatusOK, result)
}

// handleErrors exposes the recent-errors buffer
func (s *Server) handleErrors(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, RecentErrors())
}

// respondWithJSON writes a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		Logger().Error("failed to encode response: %v", err)
	}
}

// respondWithError writes a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}
