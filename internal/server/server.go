package server

import (
	"net/http"

	"gamedex/internal/ai"
	"gamedex/internal/auth"
	"gamedex/internal/catalog"
	"gamedex/internal/config"

	"gorm.io/gorm"
)

type Server struct {
	store   *catalog.Store
	auth    *auth.Authenticator
	ai      ai.Client
	cfg     config.Config
	limiter *rateLimiter
}

// New wires the server from its collaborators. The AI client is injected so
// tests can substitute a fake; pass nil to run without enrichment.
func New(conn *gorm.DB, cfg config.Config, aiClient ai.Client) *Server {
	return &Server{
		store:   catalog.NewStore(conn),
		auth:    auth.New(cfg.SessionSecretKey, cfg.FamilyPassword),
		ai:      aiClient,
		cfg:     cfg,
		limiter: newRateLimiter(),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /login", s.handleLoginStatus)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /logout", s.handleLogout)

	mux.HandleFunc("GET /api/games", s.requireAuthAPI(s.handleListGames))
	mux.HandleFunc("POST /games", s.requireAuth(s.handleCreateGame))
	mux.HandleFunc("POST /games/autofill", s.requireAuth(s.handleAutofillNewGame))
	mux.HandleFunc("GET /api/games/{id}", s.requireAuthAPI(s.handleGetGame))
	mux.HandleFunc("POST /games/{id}", s.requireAuth(s.handleUpdateGame))
	mux.HandleFunc("DELETE /games/{id}", s.requireAuthAPI(s.handleDeleteGame))
	mux.HandleFunc("POST /games/{id}/autofill", s.requireAuth(s.handleAutofillGame))

	mux.HandleFunc("GET /api/settings/family-members", s.requireAuthAPI(s.handleListMembers))
	mux.HandleFunc("POST /settings/family-members", s.requireAuth(s.handleAddMember))
	mux.HandleFunc("DELETE /settings/family-members/{id}", s.requireAuthAPI(s.handleDeleteMember))

	mux.HandleFunc("POST /games/{id}/play-logs", s.requireAuth(s.handleRecordPlay))
	mux.HandleFunc("POST /play-logs/{id}", s.requireAuth(s.handleUpdatePlayLog))
	mux.HandleFunc("PUT /play-logs/{id}", s.requireAuthAPI(s.handleUpdatePlayLog))
	mux.HandleFunc("DELETE /play-logs/{id}", s.requireAuthAPI(s.handleDeletePlayLog))
	mux.HandleFunc("GET /api/play-logs", s.requireAuthAPI(s.handleListPlayLogs))

	mux.HandleFunc("POST /api/recommend", s.requireAuthAPI(s.handleRecommend))
	mux.HandleFunc("GET /api/activity", s.requireAuthAPI(s.handleActivity))

	return mux
}
