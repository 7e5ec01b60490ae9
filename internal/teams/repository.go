package teams

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/siammpl/arena/internal/models"
	"github.com/siammpl/arena/internal/sqlutil"
	"github.com/siammpl/arena/internal/teams/db"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateTeam(ctx context.Context, arg db.CreateTeamParams) (db.Team, error)
	GetTeam(ctx context.Context, id int32) (db.Team, error)
	GetTeamByName(ctx context.Context, teamName string) (db.Team, error)
	ListTeams(ctx context.Context) ([]db.Team, error)
	UpdateTeam(ctx context.Context, arg db.UpdateTeamParams) (db.Team, error)
	ExtendDeadline(ctx context.Context, arg db.ExtendDeadlineParams) (db.Team, error)
	DeleteTeam(ctx context.Context, id int32) error
	DeleteTeamQuestionByTeam(ctx context.Context, teamID int32) error
}

// Repository implements team data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new teams repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateTeam creates a new team with the given starting points and deadline
func (r *Repository) CreateTeam(ctx context.Context, name string, points int, deadline time.Time) (*models.Team, error) {
	dbTeam, err := r.queries.CreateTeam(ctx, db.CreateTeamParams{
		TeamName: name,
		Points:   int32(points),
		Deadline: deadline,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return dbTeamToModel(dbTeam), nil
}

// GetTeam retrieves a team by ID
func (r *Repository) GetTeam(ctx context.Context, id int) (*models.Team, error) {
	dbTeam, err := r.queries.GetTeam(ctx, int32(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return dbTeamToModel(dbTeam), nil
}

// GetTeamByName retrieves a team by its unique name
func (r *Repository) GetTeamByName(ctx context.Context, name string) (*models.Team, error) {
	dbTeam, err := r.queries.GetTeamByName(ctx, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get team by name: %w", err)
	}

	return dbTeamToModel(dbTeam), nil
}

// ListTeams retrieves all teams
func (r *Repository) ListTeams(ctx context.Context) ([]models.Team, error) {
	dbTeams, err := r.queries.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	teams := make([]models.Team, len(dbTeams))
	for i, dbTeam := range dbTeams {
		teams[i] = *dbTeamToModel(dbTeam)
	}

	return teams, nil
}

// UpdateTeam updates a team's name and points
func (r *Repository) UpdateTeam(ctx context.Context, id int, name string, points int) (*models.Team, error) {
	dbTeam, err := r.queries.UpdateTeam(ctx, db.UpdateTeamParams{
		ID:       int32(id),
		TeamName: name,
		Points:   int32(points),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return dbTeamToModel(dbTeam), nil
}

// ExtendDeadline persists a new deadline for a team
func (r *Repository) ExtendDeadline(ctx context.Context, id int, deadline time.Time) (*models.Team, error) {
	dbTeam, err := r.queries.ExtendDeadline(ctx, db.ExtendDeadlineParams{
		ID:       int32(id),
		Deadline: deadline,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to extend deadline: %w", err)
	}

	return dbTeamToModel(dbTeam), nil
}

// DeleteTeam deletes a team and its question assignment, if any
func (r *Repository) DeleteTeam(ctx context.Context, id int) error {
	if err := r.queries.DeleteTeamQuestionByTeam(ctx, int32(id)); err != nil {
		return fmt.Errorf("failed to delete team question mapping: %w", err)
	}
	if err := r.queries.DeleteTeam(ctx, int32(id)); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	return nil
}

// dbTeamToModel converts a database team to the domain model
func dbTeamToModel(dbTeam db.Team) *models.Team {
	return &models.Team{
		ID:                int(dbTeam.ID),
		Name:              dbTeam.TeamName,
		Points:            int(dbTeam.Points),
		MysteryQuestionID: sqlutil.FromSqlInt32(dbTeam.MysteryQuestion),
		Deadline:          dbTeam.Deadline,
	}
}
