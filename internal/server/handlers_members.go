package server

import (
	"errors"
	"log"
	"net/http"

	"gamedex/internal/catalog"
)

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := s.store.ListMembers()
	if err != nil {
		log.Printf("member list failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list family members")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"family_members": memberViews(members)})
}

func (s *Server) handleAddMember(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form")
		return
	}
	member, err := s.store.CreateMember(r.PostFormValue("name"))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrDuplicateMember):
			http.Redirect(w, r, "/settings?error=Family+member+already+exists", http.StatusSeeOther)
		case errors.Is(err, catalog.ErrNameRequired):
			http.Redirect(w, r, "/settings?error=Name+is+required", http.StatusSeeOther)
		default:
			log.Printf("member create failed: %v", err)
			writeError(w, http.StatusInternalServerError, "failed to add family member")
		}
		return
	}
	log.Printf("member added member_id=%d name=%q", member.ID, member.Name)
	http.Redirect(w, r, "/settings?msg=Family+member+added+successfully", http.StatusSeeOther)
}

func (s *Server) handleDeleteMember(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid member id")
		return
	}
	if err := s.store.DeleteMember(id); err != nil {
		if errors.Is(err, catalog.ErrFamilyMemberNotFound) {
			writeError(w, http.StatusNotFound, "family member not found")
			return
		}
		log.Printf("member delete failed member_id=%d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to delete family member")
		return
	}
	log.Printf("member deleted member_id=%d", id)
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
