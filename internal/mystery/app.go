package mystery

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/siammpl/arena/internal/keylock"
	"github.com/siammpl/arena/internal/models"
	"github.com/siammpl/arena/internal/teams"
)

// AllocationRepository defines what the engine needs from storage.
type AllocationRepository interface {
	PurchaseQuestion(ctx context.Context, teamID int, difficulty string, cost int) (*models.MysteryQuestion, int, error)
	ReleaseQuestion(ctx context.Context, teamID int, questionID int) error
	GetQuestion(ctx context.Context, id int) (*models.MysteryQuestion, error)
	ListQuestions(ctx context.Context) ([]models.MysteryQuestion, error)
	CreateQuestion(ctx context.Context, difficulty, question string, status models.QuestionStatus) (*models.MysteryQuestion, error)
	UpdateQuestion(ctx context.Context, id int, difficulty, question string, status models.QuestionStatus) (*models.MysteryQuestion, error)
	DeleteQuestion(ctx context.Context, id int) error
}

// TeamReader resolves teams by name.
type TeamReader interface {
	GetTeamByName(ctx context.Context, name string) (*models.Team, error)
}

// EventNotifier fans a state change out to the team's live connections.
// Delivery is best-effort; a failed send never unwinds a committed purchase.
type EventNotifier interface {
	PointsUpdated(team string, newPoints int)
}

// App is the mystery allocation engine. Purchases and releases for the same
// team serialize on a per-team lock; different teams never contend.
type App struct {
	repo     AllocationRepository
	teams    TeamReader
	notifier EventNotifier
	locks    *keylock.Keyed
}

// NewApp creates a new allocation engine
func NewApp(repo AllocationRepository, teamReader TeamReader, notifier EventNotifier, locks *keylock.Keyed) *App {
	return &App{
		repo:     repo,
		teams:    teamReader,
		notifier: notifier,
		locks:    locks,
	}
}

// Purchase buys one mystery question of the requested difficulty for the
// named team. The candidate with the lowest id wins the tie-break. On
// success the team's listeners receive a points_updated event.
func (a *App) Purchase(ctx context.Context, req PurchaseRequest) (*PurchaseResult, error) {
	a.locks.Lock(req.TeamName)
	defer a.locks.Unlock(req.TeamName)

	team, err := a.teams.GetTeamByName(ctx, req.TeamName)
	if err != nil {
		if errors.Is(err, teams.ErrNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to resolve team: %w", err)
	}

	if team.HoldsMystery() {
		return nil, ErrAlreadyAllocated
	}
	if team.Points < req.Cost {
		return nil, ErrInsufficientPoints
	}

	question, remaining, err := a.repo.PurchaseQuestion(ctx, team.ID, req.Difficulty, req.Cost)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("team", team.Name).
		Int("mystery_id", question.ID).
		Str("difficulty", question.Difficulty).
		Int("cost", req.Cost).
		Int("remaining_points", remaining).
		Msg("mystery question allocated")

	a.notifier.PointsUpdated(team.Name, remaining)

	return &PurchaseResult{
		TeamName:        team.Name,
		RemainingPoints: remaining,
		MysteryID:       question.ID,
		Difficulty:      question.Difficulty,
		Question:        question.Question,
	}, nil
}

// Release frees the team's held mystery question. Quitting with nothing held
// succeeds and reports a nil question id; no points are refunded either way.
func (a *App) Release(ctx context.Context, teamName string) (*ReleaseResult, error) {
	a.locks.Lock(teamName)
	defer a.locks.Unlock(teamName)

	team, err := a.teams.GetTeamByName(ctx, teamName)
	if err != nil {
		if errors.Is(err, teams.ErrNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to resolve team: %w", err)
	}

	if !team.HoldsMystery() {
		return &ReleaseResult{TeamName: team.Name}, nil
	}

	questionID := *team.MysteryQuestionID
	if err := a.repo.ReleaseQuestion(ctx, team.ID, questionID); err != nil {
		return nil, err
	}

	log.Info().
		Str("team", team.Name).
		Int("mystery_id", questionID).
		Msg("mystery question released")

	return &ReleaseResult{TeamName: team.Name, MysteryID: &questionID}, nil
}

// GetQuestion retrieves a mystery question by id
func (a *App) GetQuestion(ctx context.Context, id int) (*models.MysteryQuestion, error) {
	return a.repo.GetQuestion(ctx, id)
}

// ListQuestions retrieves all mystery questions
func (a *App) ListQuestions(ctx context.Context) ([]models.MysteryQuestion, error) {
	return a.repo.ListQuestions(ctx)
}

// CreateQuestion registers a new mystery question; status defaults to UNALLOCATED
func (a *App) CreateQuestion(ctx context.Context, req CreateQuestionRequest) (*models.MysteryQuestion, error) {
	status := models.QuestionStatusUnallocated
	if req.QuestionStatus != nil {
		status = models.QuestionStatus(*req.QuestionStatus)
	}

	return a.repo.CreateQuestion(ctx, req.Difficulty, req.Question, status)
}

// UpdateQuestion applies the non-nil fields of req to a mystery question
func (a *App) UpdateQuestion(ctx context.Context, id int, req UpdateQuestionRequest) (*models.MysteryQuestion, error) {
	existing, err := a.repo.GetQuestion(ctx, id)
	if err != nil {
		return nil, err
	}

	difficulty := existing.Difficulty
	if req.Difficulty != nil {
		difficulty = *req.Difficulty
	}
	question := existing.Question
	if req.Question != nil {
		question = *req.Question
	}
	status := existing.Status
	if req.QuestionStatus != nil {
		status = models.QuestionStatus(*req.QuestionStatus)
	}

	return a.repo.UpdateQuestion(ctx, id, difficulty, question, status)
}

// DeleteQuestion removes a mystery question
func (a *App) DeleteQuestion(ctx context.Context, id int) error {
	if _, err := a.repo.GetQuestion(ctx, id); err != nil {
		return err
	}

	return a.repo.DeleteQuestion(ctx, id)
}
