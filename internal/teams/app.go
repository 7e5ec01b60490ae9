package teams

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/siammpl/arena/internal/models"
)

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	CreateTeam(ctx context.Context, name string, points int, deadline time.Time) (*models.Team, error)
	GetTeam(ctx context.Context, id int) (*models.Team, error)
	GetTeamByName(ctx context.Context, name string) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
	UpdateTeam(ctx context.Context, id int, name string, points int) (*models.Team, error)
	ExtendDeadline(ctx context.Context, id int, deadline time.Time) (*models.Team, error)
	DeleteTeam(ctx context.Context, id int) error
}

// Defaults configures the values new teams start with.
type Defaults struct {
	Points         int
	DeadlineOffset time.Duration
}

// App handles team business logic
type App struct {
	repo     TeamsRepository
	defaults Defaults
	clock    clockwork.Clock
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository, defaults Defaults, clock clockwork.Clock) *App {
	return &App{
		repo:     repo,
		defaults: defaults,
		clock:    clock,
	}
}

// CreateTeam registers a new team with the configured starting points and a
// deadline offset from now.
func (a *App) CreateTeam(ctx context.Context, name string) (*models.Team, error) {
	deadline := a.clock.Now().Add(a.defaults.DeadlineOffset)

	team, err := a.repo.CreateTeam(ctx, name, a.defaults.Points, deadline)
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	log.Info().
		Str("team", team.Name).
		Int("points", team.Points).
		Time("deadline", team.Deadline).
		Msg("team created")

	return team, nil
}

// GetTeamByName retrieves a team by its unique name
func (a *App) GetTeamByName(ctx context.Context, name string) (*models.Team, error) {
	return a.repo.GetTeamByName(ctx, name)
}

// ListTeams retrieves all teams
func (a *App) ListTeams(ctx context.Context) ([]models.Team, error) {
	return a.repo.ListTeams(ctx)
}

// UpdateTeam applies the non-nil fields of req to the named team
func (a *App) UpdateTeam(ctx context.Context, name string, req UpdateTeamRequest) (*models.Team, error) {
	team, err := a.repo.GetTeamByName(ctx, name)
	if err != nil {
		return nil, err
	}

	newName := team.Name
	if req.TeamName != nil {
		newName = *req.TeamName
	}
	newPoints := team.Points
	if req.Points != nil {
		newPoints = *req.Points
	}

	return a.repo.UpdateTeam(ctx, team.ID, newName, newPoints)
}

// DeleteTeam removes the named team and its question assignment
func (a *App) DeleteTeam(ctx context.Context, name string) error {
	team, err := a.repo.GetTeamByName(ctx, name)
	if err != nil {
		return err
	}

	return a.repo.DeleteTeam(ctx, team.ID)
}

// ExtendDeadline persists a new deadline for a team
func (a *App) ExtendDeadline(ctx context.Context, id int, deadline time.Time) (*models.Team, error) {
	return a.repo.ExtendDeadline(ctx, id, deadline)
}
