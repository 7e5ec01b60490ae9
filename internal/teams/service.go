package teams

import (
	"errors"
	"net/http"
	"time"

	"github.com/siammpl/arena/internal/httpjson"
	"github.com/siammpl/arena/internal/models"
)

// Service exposes the admin team endpoints over HTTP
type Service struct {
	app *App
}

// NewService creates a new teams HTTP service
func NewService(app *App) *Service {
	return &Service{app: app}
}

// TeamResponse is the wire representation of a team.
type TeamResponse struct {
	ID              int       `json:"id"`
	TeamName        string    `json:"team_name"`
	Points          int       `json:"points"`
	MysteryQuestion *int      `json:"mystery_question"`
	Deadline        time.Time `json:"deadline"`
}

func teamToResponse(t *models.Team) TeamResponse {
	return TeamResponse{
		ID:              t.ID,
		TeamName:        t.Name,
		Points:          t.Points,
		MysteryQuestion: t.MysteryQuestionID,
		Deadline:        t.Deadline,
	}
}

// HandleListTeams handles GET /admin/teams
func (s *Service) HandleListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := s.app.ListTeams(r.Context())
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, "failed to list teams")
		return
	}

	resp := make([]TeamResponse, len(teams))
	for i := range teams {
		resp[i] = teamToResponse(&teams[i])
	}
	httpjson.Write(w, http.StatusOK, resp)
}

// HandleGetTeam handles GET /admin/teams/{team_name}
func (s *Service) HandleGetTeam(w http.ResponseWriter, r *http.Request) {
	team, err := s.app.GetTeamByName(r.Context(), r.PathValue("team_name"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Team not found")
			return
		}
		httpjson.Error(w, http.StatusInternalServerError, "failed to get team")
		return
	}

	httpjson.Write(w, http.StatusOK, teamToResponse(team))
}

// HandleUpdateTeam handles PUT /admin/teams/{team_name}
func (s *Service) HandleUpdateTeam(w http.ResponseWriter, r *http.Request) {
	var req UpdateTeamRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}

	team, err := s.app.UpdateTeam(r.Context(), r.PathValue("team_name"), req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Team not found")
			return
		}
		httpjson.Error(w, http.StatusInternalServerError, "failed to update team")
		return
	}

	httpjson.Write(w, http.StatusOK, teamToResponse(team))
}

// HandleDeleteTeam handles DELETE /admin/teams/{team_name}
func (s *Service) HandleDeleteTeam(w http.ResponseWriter, r *http.Request) {
	if err := s.app.DeleteTeam(r.Context(), r.PathValue("team_name")); err != nil {
		if errors.Is(err, ErrNotFound) {
			httpjson.Error(w, http.StatusNotFound, "Team not found")
			return
		}
		httpjson.Error(w, http.StatusInternalServerError, "failed to delete team")
		return
	}

	httpjson.Write(w, http.StatusOK, map[string]string{"detail": "Team deleted successfully"})
}

// RegisterRoutes registers the admin team routes with an HTTP mux
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /admin/teams", s.HandleListTeams)
	mux.HandleFunc("GET /admin/teams/{team_name}", s.HandleGetTeam)
	mux.HandleFunc("PUT /admin/teams/{team_name}", s.HandleUpdateTeam)
	mux.HandleFunc("DELETE /admin/teams/{team_name}", s.HandleDeleteTeam)
}
