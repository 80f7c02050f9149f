package server

import (
	"log"
	"net/http"
	"strconv"

	"gamedex/internal/ai"
	"gamedex/internal/catalog"
	"gamedex/internal/web"
)

type recommendRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

// handleRecommend asks the provider to pick games from the current catalog.
// The provider is best effort: any failure comes back as an empty list, not
// an error.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}
	if req.Limit < 1 {
		req.Limit = 5
	}

	summaries, err := s.store.List(catalog.Filter{})
	if err != nil {
		log.Printf("catalog snapshot failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load catalog")
		return
	}

	views := []web.RecommendationView{}
	if s.ai != nil {
		snapshot := make([]ai.GameFacts, 0, len(summaries))
		for _, summary := range summaries {
			snapshot = append(snapshot, ai.GameFacts{
				Title:       summary.Game.Title,
				PlayerCount: summary.Game.PlayerCount,
				GameType:    summary.Game.GameType,
				Playtime:    summary.Game.Playtime,
				Complexity:  summary.Game.Complexity,
			})
		}
		recommendations, err := s.ai.FetchRecommendations(r.Context(), req.Query, snapshot, req.Limit)
		if err != nil {
			log.Printf("recommendations fetch failed: %v", err)
		} else {
			for _, rec := range recommendations {
				views = append(views, web.RecommendationView{Title: rec.Title, Reasoning: rec.Reasoning})
			}
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"query":           req.Query,
		"recommendations": views,
	})
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 && value <= 100 {
			limit = value
		}
	}
	events, err := s.store.RecentEvents(limit)
	if err != nil {
		log.Printf("activity list failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list activity")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": eventViews(events)})
}
