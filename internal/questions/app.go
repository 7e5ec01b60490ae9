package questions

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/siammpl/arena/internal/models"
	"github.com/siammpl/arena/internal/teams"
)

// QuestionsRepository defines what the app layer needs from the repository
type QuestionsRepository interface {
	CreateQuestion(ctx context.Context, id, text string) (*models.Question, error)
	GetQuestion(ctx context.Context, id string) (*models.Question, error)
	ListQuestions(ctx context.Context) ([]models.Question, error)
	CreateAssignment(ctx context.Context, questionID string, teamID int) (*models.TeamQuestion, error)
	GetAssignmentByQuestion(ctx context.Context, questionID string) (*models.TeamQuestion, error)
	DeleteAssignment(ctx context.Context, id int) error
}

// TeamRegistry is what assignment needs from the team layer: resolve an
// existing team or register a new one with event defaults.
type TeamRegistry interface {
	GetTeamByName(ctx context.Context, name string) (*models.Team, error)
	CreateTeam(ctx context.Context, name string) (*models.Team, error)
}

// AssignmentResult reports a completed team registration and assignment.
type AssignmentResult struct {
	Message  string `json:"message"`
	Question string `json:"question"`
	TeamName string `json:"teamname"`
	Points   int    `json:"points"`
}

// App handles regular question and assignment business logic
type App struct {
	repo  QuestionsRepository
	teams TeamRegistry
}

// NewApp creates a new questions App
func NewApp(repo QuestionsRepository, teamRegistry TeamRegistry) *App {
	return &App{
		repo:  repo,
		teams: teamRegistry,
	}
}

// AssignQuestion registers a brand-new team and hands it a regular question.
// A team name that already exists is rejected; so is a question that is
// already mapped to another team.
func (a *App) AssignQuestion(ctx context.Context, teamName, questionCode string) (*AssignmentResult, error) {
	if _, err := a.teams.GetTeamByName(ctx, teamName); err == nil {
		return nil, ErrTeamExists
	} else if !errors.Is(err, teams.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve team: %w", err)
	}

	question, err := a.repo.GetQuestion(ctx, questionCode)
	if err != nil {
		return nil, err
	}

	if _, err := a.repo.GetAssignmentByQuestion(ctx, question.ID); err == nil {
		return nil, ErrQuestionAssigned
	} else if !errors.Is(err, ErrMappingNotFound) {
		return nil, err
	}

	team, err := a.teams.CreateTeam(ctx, teamName)
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	if _, err := a.repo.CreateAssignment(ctx, question.ID, team.ID); err != nil {
		return nil, err
	}

	log.Info().
		Str("team", team.Name).
		Str("question", question.ID).
		Msg("team registered and question assigned")

	return &AssignmentResult{
		Message:  "Team created & question assigned successfully",
		Question: question.Question,
		TeamName: team.Name,
		Points:   team.Points,
	}, nil
}

// CreateQuestion registers a regular question, rejecting duplicate codes
func (a *App) CreateQuestion(ctx context.Context, id, text string) (*models.Question, error) {
	if _, err := a.repo.GetQuestion(ctx, id); err == nil {
		return nil, ErrQuestionExists
	} else if !errors.Is(err, ErrQuestionNotFound) {
		return nil, err
	}

	return a.repo.CreateQuestion(ctx, id, text)
}

// ListQuestions retrieves all regular questions
func (a *App) ListQuestions(ctx context.Context) ([]models.Question, error) {
	return a.repo.ListQuestions(ctx)
}

// DeleteAssignment removes a team-question mapping by its primary id
func (a *App) DeleteAssignment(ctx context.Context, id int) error {
	return a.repo.DeleteAssignment(ctx, id)
}
