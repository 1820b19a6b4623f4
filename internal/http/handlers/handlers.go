package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	appclubs "github.com/preston-bernstein/club-studio/internal/app/clubs"
	appgames "github.com/preston-bernstein/club-studio/internal/app/games"
	"github.com/preston-bernstein/club-studio/internal/domain/clubs"
	domaingames "github.com/preston-bernstein/club-studio/internal/domain/games"
	"github.com/preston-bernstein/club-studio/internal/domain/sports"
	"github.com/preston-bernstein/club-studio/internal/domain/teams"
	"github.com/preston-bernstein/club-studio/internal/logging"
)

// ClubLister lists a federation's clubs.
type ClubLister interface {
	ListClubs(ctx context.Context, sport sports.Sport) ([]clubs.Club, error)
}

// TeamLister lists a club's teams.
type TeamLister interface {
	ListTeams(ctx context.Context, sport sports.Sport, clubID string) ([]teams.Team, error)
}

// GameLister lists a team's games.
type GameLister interface {
	ListGames(ctx context.Context, q appgames.Query) (appgames.Listing, error)
}

// Handler serves the read-only catalog: sports, clubs, teams and games.
type Handler struct {
	clubs  ClubLister
	teams  TeamLister
	games  GameLister
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(c ClubLister, t TeamLister, g GameLister, logger *slog.Logger) *Handler {
	return &Handler{
		clubs:  c,
		teams:  t,
		games:  g,
		logger: logger,
	}
}

// SportInfo describes one supported sport.
type SportInfo struct {
	ID      sports.Sport `json:"id"`
	Label   string       `json:"label"`
	APIType string       `json:"apiType"`
}

// ClubsResponse is the payload of the clubs endpoint.
type ClubsResponse struct {
	Sport sports.Sport `json:"sport"`
	Query string       `json:"query,omitempty"`
	Clubs []clubs.Club `json:"clubs"`
}

// TeamsResponse is the payload of the teams endpoint.
type TeamsResponse struct {
	Sport  sports.Sport `json:"sport"`
	ClubID string       `json:"clubId"`
	Teams  []teams.Team `json:"teams"`
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Sports lists the catalog in display order.
func (h *Handler) Sports(w http.ResponseWriter, r *http.Request) {
	all := sports.All()
	out := make([]SportInfo, 0, len(all))
	for _, s := range all {
		out = append(out, SportInfo{ID: s, Label: s.Label(), APIType: s.APIType()})
	}
	writeJSON(w, http.StatusOK, out, h.logger)
}

// Clubs lists the clubs of a sport, optionally filtered by ?q=.
func (h *Handler) Clubs(w http.ResponseWriter, r *http.Request) {
	sport, ok := h.sportParam(w, r)
	if !ok {
		return
	}
	list, err := h.clubs.ListClubs(r.Context(), sport)
	if err != nil {
		h.canceled(w, r, err)
		return
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, ClubsResponse{
		Sport: sport,
		Query: q,
		Clubs: appclubs.Filter(list, q),
	}, h.logger)
}

// Teams lists the teams of a club.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	sport, ok := h.sportParam(w, r)
	if !ok {
		return
	}
	clubID := strings.TrimSpace(r.PathValue("clubId"))
	if clubID == "" {
		writeError(w, r, http.StatusBadRequest, "invalid club id", h.logger)
		return
	}
	list, err := h.teams.ListTeams(r.Context(), sport, clubID)
	if err != nil {
		h.canceled(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, TeamsResponse{Sport: sport, ClubID: clubID, Teams: list}, h.logger)
}

// Games lists a team's games ordered and grouped by date.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	sport, ok := h.sportParam(w, r)
	if !ok {
		return
	}
	teamID := strings.TrimSpace(r.PathValue("teamId"))
	if teamID == "" {
		writeError(w, r, http.StatusBadRequest, "invalid team id", h.logger)
		return
	}
	query := r.URL.Query()
	clubID := strings.TrimSpace(query.Get("clubId"))
	if sport.GamesNeedClub() && clubID == "" {
		writeError(w, r, http.StatusBadRequest, "clubId is required for "+string(sport), h.logger)
		return
	}
	includePast := false
	if raw := query.Get("includePast"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid includePast", h.logger)
			return
		}
		includePast = v
	}

	listing, err := h.games.ListGames(r.Context(), appgames.Query{
		Sport:       sport,
		TeamID:      teamID,
		ClubID:      clubID,
		IncludePast: includePast,
	})
	if err != nil {
		h.canceled(w, r, err)
		return
	}
	games := listing.Games
	if games == nil {
		games = []domaingames.Game{}
	}
	writeJSON(w, http.StatusOK, domaingames.ListResponse{
		Sport:       string(sport),
		TeamID:      teamID,
		IncludePast: includePast,
		Games:       games,
		Groups:      listing.Groups,
	}, h.logger)
}

func (h *Handler) sportParam(w http.ResponseWriter, r *http.Request) (sports.Sport, bool) {
	sport, err := sports.Parse(r.PathValue("sport"))
	if err != nil {
		logging.Warn(loggerFromContext(r, h.logger), "unknown sport requested", slog.String(logging.FieldSport, r.PathValue("sport")))
		writeError(w, r, http.StatusNotFound, "unknown sport", h.logger)
		return "", false
	}
	return sport, true
}

// canceled answers for the only error the resolvers surface: the caller went away.
func (h *Handler) canceled(w http.ResponseWriter, r *http.Request, err error) {
	logging.Warn(loggerFromContext(r, h.logger), "catalog request aborted", slog.Any("err", err))
	writeError(w, r, http.StatusServiceUnavailable, "request canceled", h.logger)
}
