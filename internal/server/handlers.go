package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/culturecoders/culturebot/internal/catalog"
	"github.com/culturecoders/culturebot/internal/model"
)

// maxChatBody bounds POST /chat request bodies
const maxChatBody = 64 << 10

// healthPingTimeout bounds the provider check in GET /health
const healthPingTimeout = 5 * time.Second

type welcomeResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

type healthResponse struct {
	Status   string `json:"status"`
	AIEngine string `json:"ai_engine"`
	Database string `json:"database"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, welcomeResponse{
		Message: "Welcome to CultureBot API",
		Version: s.deps.Version,
		Status:  "active",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	engine := "disabled"
	if s.deps.Chat.EnrichmentEnabled() {
		engine = "operational"

		ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
		defer cancel()
		if err := s.deps.Chat.PingEnricher(ctx); err != nil {
			s.logger.WithContext(r.Context()).Warn().Err(err).Msg("LLM provider unreachable")
			engine = "unreachable"
		}
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:   "healthy",
		AIEngine: engine,
		Database: "connected",
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChatBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "message is required", "")
		return
	}

	resp := s.deps.Chat.Respond(r.Context(), req)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRandomFact(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Catalog.Random(s.deps.Picker))
}

func (s *Server) handleFactsByCountry(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Catalog.ByCountry(chi.URLParam(r, "country")))
}

func (s *Server) handleFactsByCategory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Catalog.ByCategory(chi.URLParam(r, "category")))
}

func (s *Server) handleFacts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, s.deps.Catalog.Filter(q.Get("country"), q.Get("category")))
}

func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Catalog.Countries())
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Catalog.Categories())
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.deps.Catalog.Stats())
}

func (s *Server) handleProfileCountries(w http.ResponseWriter, r *http.Request) {
	if s.deps.Profiles == nil {
		writeJSON(w, http.StatusOK, []string{})
		return
	}
	writeJSON(w, http.StatusOK, s.deps.Profiles.Countries())
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	if s.deps.Profiles == nil {
		writeError(w, http.StatusNotFound, "profile not found", country)
		return
	}

	profile, err := s.deps.Profiles.Profile(country)
	if errors.Is(err, catalog.ErrProfileNotFound) {
		writeError(w, http.StatusNotFound, "profile not found", country)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "error fetching profile", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleFestivals(w http.ResponseWriter, r *http.Request) {
	if s.deps.Profiles == nil {
		writeJSON(w, http.StatusOK, []model.Festival{})
		return
	}
	writeJSON(w, http.StatusOK, s.deps.Profiles.FestivalsBySeason(r.URL.Query().Get("season")))
}

func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	if s.deps.Profiles == nil {
		writeJSON(w, http.StatusOK, []model.Location{})
		return
	}
	writeJSON(w, http.StatusOK, s.deps.Profiles.LocationsByType(r.URL.Query().Get("type")))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorResponse{Error: message, Details: details})
}
