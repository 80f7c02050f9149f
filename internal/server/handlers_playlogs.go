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

func playLogInputFromForm(form url.Values) catalog.PlayLogInput {
	duration, _ := strconv.Atoi(strings.TrimSpace(form.Get("duration_minutes")))
	return catalog.PlayLogInput{
		PlayedAt:        form.Get("played_at"),
		Players:         form.Get("players"),
		Winner:          form.Get("winner"),
		Notes:           form.Get("notes"),
		DurationMinutes: duration,
	}
}

func playLogErrorStatus(err error) (int, string, bool) {
	switch {
	case errors.Is(err, catalog.ErrGameNotFound):
		return http.StatusNotFound, "game not found", true
	case errors.Is(err, catalog.ErrPlayLogNotFound):
		return http.StatusNotFound, "play log not found", true
	case errors.Is(err, catalog.ErrInvalidTimestamp):
		return http.StatusBadRequest, "played_at is not a valid timestamp", true
	case errors.Is(err, catalog.ErrInvalidDuration):
		return http.StatusBadRequest, "duration_minutes must be positive", true
	}
	return 0, "", false
}

// handleRecordPlay logs a play session. The form may also carry
// rating_<member_id> fields, in which case the game's ratings are replaced
// with the submitted set, matching the combined "log play" flow.
func (s *Server) handleRecordPlay(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid game id")
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form")
		return
	}
	entry, err := s.store.RecordPlay(id, playLogInputFromForm(r.PostForm))
	if err != nil {
		if status, message, ok := playLogErrorStatus(err); ok {
			writeError(w, status, message)
			return
		}
		log.Printf("play log create failed game_id=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to record play")
		return
	}
	if ratings := s.ratingsFromForm(r.PostForm); len(ratings) > 0 {
		if err := s.store.ClearAndReplace(id, ratings); err != nil {
			log.Printf("rating replace failed game_id=%d: %v", id, err)
		}
	}
	log.Printf("play logged game_id=%d play_log_id=%d", id, entry.ID)
	http.Redirect(w, r, fmt.Sprintf("/games/%d?msg=Play+logged+successfully", id), http.StatusSeeOther)
}

func (s *Server) handleUpdatePlayLog(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid play log id")
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form")
		return
	}
	entry, err := s.store.UpdatePlayLog(id, playLogInputFromForm(r.PostForm))
	if err != nil {
		if status, message, ok := playLogErrorStatus(err); ok {
			writeError(w, status, message)
			return
		}
		log.Printf("play log update failed play_log_id=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to update play log")
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/games/%d?msg=Play+log+updated", entry.GameID), http.StatusSeeOther)
}

func (s *Server) handleDeletePlayLog(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid play log id")
		return
	}
	if err := s.store.DeletePlayLog(id); err != nil {
		if errors.Is(err, catalog.ErrPlayLogNotFound) {
			writeError(w, http.StatusNotFound, "play log not found")
			return
		}
		log.Printf("play log delete failed play_log_id=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to delete play log")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleListPlayLogs(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r.URL.Query(), 20, 100)
	entries, total, err := s.store.ListPlayLogs(page, perPage)
	if err != nil {
		log.Printf("play log list failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list play logs")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"play_logs":  playLogViews(entries),
		"pagination": buildPaginationData("/api/play-logs", page, perPage, total),
	})
}
