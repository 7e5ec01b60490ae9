package questions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/siammpl/arena/internal/models"
	"github.com/siammpl/arena/internal/questions/db"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateQuestion(ctx context.Context, arg db.CreateQuestionParams) (db.Question, error)
	GetQuestion(ctx context.Context, id string) (db.Question, error)
	ListQuestions(ctx context.Context) ([]db.Question, error)
	CreateTeamQuestion(ctx context.Context, arg db.CreateTeamQuestionParams) (db.TeamQuestion, error)
	GetTeamQuestionByQuestion(ctx context.Context, questionID string) (db.TeamQuestion, error)
	GetTeamQuestion(ctx context.Context, id int32) (db.TeamQuestion, error)
	DeleteTeamQuestion(ctx context.Context, id int32) error
}

// Repository implements question and assignment data access
type Repository struct {
	queries Querier
}

// NewRepository creates a new questions repository
func NewRepository(querier Querier) *Repository {
	return &Repository{queries: querier}
}

// CreateQuestion inserts a new regular question
func (r *Repository) CreateQuestion(ctx context.Context, id, text string) (*models.Question, error) {
	q, err := r.queries.CreateQuestion(ctx, db.CreateQuestionParams{ID: id, Question: text})
	if err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	return &models.Question{ID: q.ID, Question: q.Question}, nil
}

// GetQuestion retrieves a question by its code
func (r *Repository) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	q, err := r.queries.GetQuestion(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	return &models.Question{ID: q.ID, Question: q.Question}, nil
}

// ListQuestions retrieves all regular questions
func (r *Repository) ListQuestions(ctx context.Context) ([]models.Question, error) {
	dbQuestions, err := r.queries.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	questions := make([]models.Question, len(dbQuestions))
	for i, q := range dbQuestions {
		questions[i] = models.Question{ID: q.ID, Question: q.Question}
	}
	return questions, nil
}

// CreateAssignment maps a question to a team
func (r *Repository) CreateAssignment(ctx context.Context, questionID string, teamID int) (*models.TeamQuestion, error) {
	tq, err := r.queries.CreateTeamQuestion(ctx, db.CreateTeamQuestionParams{
		QuestionID: questionID,
		TeamID:     int32(teamID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create team question mapping: %w", err)
	}

	return &models.TeamQuestion{ID: int(tq.ID), QuestionID: tq.QuestionID, TeamID: int(tq.TeamID)}, nil
}

// GetAssignmentByQuestion looks up the mapping holding a question, if any
func (r *Repository) GetAssignmentByQuestion(ctx context.Context, questionID string) (*models.TeamQuestion, error) {
	tq, err := r.queries.GetTeamQuestionByQuestion(ctx, questionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMappingNotFound
		}
		return nil, fmt.Errorf("failed to get team question mapping: %w", err)
	}

	return &models.TeamQuestion{ID: int(tq.ID), QuestionID: tq.QuestionID, TeamID: int(tq.TeamID)}, nil
}

// DeleteAssignment removes a team-question mapping by its primary id
func (r *Repository) DeleteAssignment(ctx context.Context, id int) error {
	if _, err := r.queries.GetTeamQuestion(ctx, int32(id)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMappingNotFound
		}
		return fmt.Errorf("failed to get team question mapping: %w", err)
	}

	if err := r.queries.DeleteTeamQuestion(ctx, int32(id)); err != nil {
		return fmt.Errorf("failed to delete team question mapping: %w", err)
	}
	return nil
}
