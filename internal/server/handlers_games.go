package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"gamedex/internal/catalog"
)

func gameInputFromForm(form url.Values) catalog.GameInput {
	return catalog.GameInput{
		Title:        strings.TrimSpace(form.Get("title")),
		PlayerCount:  strings.TrimSpace(form.Get("player_count")),
		GameType:     strings.TrimSpace(form.Get("game_type")),
		Playtime:     strings.TrimSpace(form.Get("playtime")),
		Complexity:   strings.TrimSpace(form.Get("complexity")),
		SetupTime:    strings.TrimSpace(form.Get("setup_time")),
		GameElements: strings.TrimSpace(form.Get("game_elements")),
		Description:  strings.TrimSpace(form.Get("description")),
	}
}

// ratingsFromForm collects the rating_<member_id> form fields for every
// known family member. Non-numeric values are skipped here; out-of-range
// values are dropped by the store. Either way the enclosing save proceeds.
func (s *Server) ratingsFromForm(form url.Values) map[uint]int {
	members, err := s.store.ListMembers()
	if err != nil {
		log.Printf("failed to load members for rating fields: %v", err)
		return nil
	}
	ratings := make(map[uint]int)
	for _, member := range members {
		raw := strings.TrimSpace(form.Get(fmt.Sprintf("rating_%d", member.ID)))
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		ratings[member.ID] = value
	}
	return ratings
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := catalog.Filter{
		Search:       query.Get("search"),
		GameType:     query.Get("game_type"),
		GameElements: query.Get("game_elements"),
		SetupTime:    query.Get("setup_time"),
		Complexity:   query.Get("complexity"),
		Sort:         query.Get("sort"),
	}
	summaries, err := s.store.List(filter)
	if err != nil {
		log.Printf("game list failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list games")
		return
	}
	views := make([]any, 0, len(summaries))
	for _, summary := range summaries {
		views = append(views, gameView(summary))
	}
	writeJSON(w, http.StatusOK, map[string]any{"games": views})
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form")
		return
	}
	input := gameInputFromForm(r.PostForm)
	game, err := s.store.CreateGame(input, s.ratingsFromForm(r.PostForm))
	if err != nil {
		if errors.Is(err, catalog.ErrTitleRequired) {
			http.Redirect(w, r, "/games/new?error=Title+is+required", http.StatusSeeOther)
			return
		}
		log.Printf("game create failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create game")
		return
	}
	log.Printf("game created game_id=%d title=%q", game.ID, game.Title)
	http.Redirect(w, r, "/?msg=Game+added+successfully", http.StatusSeeOther)
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid game id")
		return
	}
	game, err := s.store.GetGame(id)
	if err != nil {
		if errors.Is(err, catalog.ErrGameNotFound) {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load game")
		return
	}
	summary, err := s.store.Summarize(game)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load game")
		return
	}
	members, err := s.store.ListMembers()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load game")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"game":           gameView(*summary),
		"family_members": memberViews(members),
	})
}

func (s *Server) handleUpdateGame(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid game id")
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form")
		return
	}
	input := gameInputFromForm(r.PostForm)
	game, err := s.store.UpdateGame(id, input, s.ratingsFromForm(r.PostForm))
	if err != nil {
		if errors.Is(err, catalog.ErrGameNotFound) {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}
		log.Printf("game update failed game_id=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to update game")
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/games/%d?msg=Game+updated+successfully", game.ID), http.StatusSeeOther)
}

func (s *Server) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid game id")
		return
	}
	if err := s.store.DeleteGame(id); err != nil {
		if errors.Is(err, catalog.ErrGameNotFound) {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}
		log.Printf("game delete failed game_id=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to delete game")
		return
	}
	log.Printf("game deleted game_id=%d", id)
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleAutofillNewGame creates a title-only game, then enriches it if the
// provider cooperates. Provider trouble leaves the title-only record in
// place and still redirects to it.
func (s *Server) handleAutofillNewGame(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form")
		return
	}
	title := strings.TrimSpace(r.PostFormValue("title"))
	game, err := s.store.CreateGame(catalog.GameInput{Title: title}, nil)
	if err != nil {
		if errors.Is(err, catalog.ErrTitleRequired) {
			http.Redirect(w, r, "/games/new?error=Title+is+required", http.StatusSeeOther)
			return
		}
		log.Printf("autofill create failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create game")
		return
	}
	s.enrichGame(r, game.ID, game.Title)
	http.Redirect(w, r, fmt.Sprintf("/games/%d", game.ID), http.StatusSeeOther)
}

func (s *Server) handleAutofillGame(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid game id")
		return
	}
	game, err := s.store.GetGame(id)
	if err != nil {
		if errors.Is(err, catalog.ErrGameNotFound) {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load game")
		return
	}
	s.enrichGame(r, game.ID, game.Title)
	http.Redirect(w, r, fmt.Sprintf("/games/%d", game.ID), http.StatusSeeOther)
}

// enrichGame runs the best-effort metadata fetch. Failures are logged and
// swallowed; the catalog record is always left valid.
func (s *Server) enrichGame(r *http.Request, gameID uint, title string) {
	if s.ai == nil {
		return
	}
	metadata, err := s.ai.FetchMetadata(r.Context(), title)
	if err != nil {
		log.Printf("metadata fetch failed game_id=%d: %v", gameID, err)
		return
	}
	if len(metadata) == 0 {
		return
	}
	if _, err := s.store.ApplyMetadata(gameID, metadata); err != nil {
		log.Printf("metadata apply failed game_id=%d: %v", gameID, err)
	}
}
