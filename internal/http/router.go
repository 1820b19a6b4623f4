package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/club-studio/internal/http/handlers"
)

// Routes groups the handlers mounted by NewRouter. Nil groups are not mounted.
type Routes struct {
	Catalog *handlers.Handler
	Preview *handlers.PreviewHandler
	Account *handlers.AccountHandler
	Admin   *handlers.AdminHandler
}

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(routes Routes) nethttp.Handler {
	mux := nethttp.NewServeMux()
	if h := routes.Catalog; h != nil {
		mux.HandleFunc("GET /health", h.Health)
		mux.HandleFunc("GET /sports", h.Sports)
		mux.HandleFunc("GET /sports/{sport}/clubs", h.Clubs)
		mux.HandleFunc("GET /sports/{sport}/clubs/{clubId}/teams", h.Teams)
		mux.HandleFunc("GET /sports/{sport}/teams/{teamId}/games", h.Games)
	}
	if h := routes.Preview; h != nil {
		mux.HandleFunc("POST /preview", h.Render)
	}
	if h := routes.Account; h != nil {
		mux.HandleFunc("POST /auth/magic-link", h.MagicLink)
		mux.HandleFunc("POST /auth/verify", h.Verify)
		mux.HandleFunc("GET /profile", h.Profile)
		mux.HandleFunc("PATCH /profile", h.UpdateProfile)
	}
	if h := routes.Admin; h != nil {
		mux.HandleFunc("GET /admin/stats", h.Stats)
	}
	return mux
}
