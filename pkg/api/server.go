package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AshCoder07/Title-verification/pkg/config"
	"github.com/AshCoder07/Title-verification/pkg/corpus"
	"github.com/AshCoder07/Title-verification/pkg/verify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// RebuildFunc reloads the dataset and builds a fresh corpus snapshot.
type RebuildFunc func() (*corpus.Corpus, error)

// Server is the HTTP boundary around the verification service. All state it
// touches per request is read-only; concurrent requests need no locking.
type Server struct {
	cfg      *config.Instance
	svc      *verify.Service
	rebuild  RebuildFunc
	validate *validator.Validate
}

func NewServer(cfg *config.Instance, svc *verify.Service, rebuild RebuildFunc) *Server {
	return &Server{
		cfg:      cfg,
		svc:      svc,
		rebuild:  rebuild,
		validate: validator.New(),
	}
}

// Router assembles the chi router with recovery, timeout and CORS middleware.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.NoCache)
	r.Use(middleware.Timeout(config.APIRequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins(),
		AllowedMethods: []string{"GET", "POST"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{},
	}))

	r.Post("/api/verify", s.handleVerify)
	r.Get("/api/health", s.handleHealth)
	r.Post("/api/rebuild", s.handleRebuild)

	return r
}

// ListenAndServe starts the HTTP server on the configured port.
func (s *Server) ListenAndServe() error {
	addr := ":" + strconv.Itoa(s.cfg.APIPort())
	log.Info().Str("addr", addr).Msg("starting http server")
	//nolint:gosec // request timeout enforced by chi middleware
	return http.ListenAndServe(addr, s.Router())
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "no title provided"})
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "no title provided"})
		return
	}

	result, err := s.svc.Verify(req.Title)
	if err != nil {
		if errors.Is(err, verify.ErrCorpusNotReady) {
			log.Error().Err(err).Msg("verification attempted before corpus build")
		} else {
			log.Error().Err(err).Str("title", req.Title).Msg("verification failed")
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		return
	}

	log.Debug().
		Str("title", req.Title).
		Bool("verified", result.Verified).
		Float64("probability", result.Probability).
		Msg("title verified")
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	resp := HealthResponse{Status: "healthy"}
	if c := s.svc.Snapshot(); c != nil {
		resp.SnapshotID = c.ID.String()
		resp.Records = len(c.Records)
		resp.Vocabulary = c.Vectorizer.Size()
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRebuild(w http.ResponseWriter, _ *http.Request) {
	if s.rebuild == nil {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "rebuild not available"})
		return
	}

	c, err := s.rebuild()
	if err != nil {
		log.Error().Err(err).Msg("corpus rebuild failed")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "rebuild failed"})
		return
	}

	s.svc.Swap(c)
	writeJSON(w, http.StatusOK, RebuildResponse{
		SnapshotID: c.ID.String(),
		Records:    len(c.Records),
		Vocabulary: c.Vectorizer.Size(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response body")
	}
}
