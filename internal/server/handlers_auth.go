package server

import (
	"log"
	"net/http"

	"gamedex/internal/auth"
)

func (s *Server) handleLoginStatus(w http.ResponseWriter, r *http.Request) {
	_, ok := s.auth.CurrentIdentity(r)
	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": ok})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.allow(clientKey(r)) {
		log.Printf("login throttled remote=%s", r.RemoteAddr)
		http.Redirect(w, r, "/login?error=Too+many+attempts", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login?error=Invalid+request", http.StatusSeeOther)
		return
	}
	if !s.auth.CheckPassword(r.PostFormValue("password")) {
		log.Printf("login failed remote=%s", r.RemoteAddr)
		http.Redirect(w, r, "/login?error=Incorrect+password", http.StatusSeeOther)
		return
	}
	token, err := s.auth.IssueToken()
	if err != nil {
		log.Printf("token issue failed: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to start session")
		return
	}
	auth.SetSessionCookie(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
