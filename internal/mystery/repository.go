package mystery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/siammpl/arena/internal/models"
	"github.com/siammpl/arena/internal/mystery/db"
	"github.com/siammpl/arena/internal/sqlutil"
)

// Repository implements mystery question data access. The purchase and
// release paths run inside a transaction because they touch both the
// mystery_question row and the owning team row.
type Repository struct {
	queries *db.Queries
	sqlDB   *sql.DB
}

// NewRepository creates a new mystery repository
func NewRepository(queries *db.Queries, sqlDB *sql.DB) *Repository {
	return &Repository{
		queries: queries,
		sqlDB:   sqlDB,
	}
}

// PurchaseQuestion claims the lowest-id UNALLOCATED question of the given
// difficulty, records it on the team and debits the cost, all in one
// transaction. Returns the allocated question and the team's remaining
// points.
func (r *Repository) PurchaseQuestion(ctx context.Context, teamID int, difficulty string, cost int) (*models.MysteryQuestion, int, error) {
	var (
		claimed   db.MysteryQuestion
		remaining int32
	)

	err := sqlutil.Run(ctx, r.sqlDB,
		func(tx *sql.Tx) *db.Queries { return r.queries.WithTx(tx) },
		func(q *db.Queries) error {
			var err error
			claimed, err = q.ClaimMysteryQuestion(ctx, difficulty)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return ErrNoQuestionAvailable
				}
				return fmt.Errorf("failed to claim mystery question: %w", err)
			}

			remaining, err = q.AllocateTeamMystery(ctx, db.AllocateTeamMysteryParams{
				TeamID:    int32(teamID),
				MysteryID: claimed.ID,
				Cost:      int32(cost),
			})
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					// Guarded update matched no row; re-read the team inside
					// the tx to tell a held question apart from a short
					// balance, then roll the claim back with the tx.
					alloc, lookupErr := q.GetTeamAllocation(ctx, int32(teamID))
					if lookupErr != nil {
						if errors.Is(lookupErr, sql.ErrNoRows) {
							return ErrTeamNotFound
						}
						return fmt.Errorf("failed to inspect team allocation: %w", lookupErr)
					}
					return allocationConflict(alloc)
				}
				return fmt.Errorf("failed to allocate mystery to team: %w", err)
			}

			return nil
		})
	if err != nil {
		return nil, 0, err
	}

	return dbQuestionToModel(claimed), int(remaining), nil
}

// ReleaseQuestion marks the question UNALLOCATED and clears the team's held
// reference in one transaction.
func (r *Repository) ReleaseQuestion(ctx context.Context, teamID int, questionID int) error {
	return sqlutil.Run(ctx, r.sqlDB,
		func(tx *sql.Tx) *db.Queries { return r.queries.WithTx(tx) },
		func(q *db.Queries) error {
			if _, err := q.ReleaseMysteryQuestion(ctx, int32(questionID)); err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return ErrQuestionNotFound
				}
				return fmt.Errorf("failed to release mystery question: %w", err)
			}

			if err := q.ClearTeamMystery(ctx, int32(teamID)); err != nil {
				return fmt.Errorf("failed to clear team mystery reference: %w", err)
			}

			return nil
		})
}

// GetQuestion retrieves a mystery question by id
func (r *Repository) GetQuestion(ctx context.Context, id int) (*models.MysteryQuestion, error) {
	q, err := r.queries.GetMysteryQuestion(ctx, int32(id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to get mystery question: %w", err)
	}

	return dbQuestionToModel(q), nil
}

// ListQuestions retrieves all mystery questions
func (r *Repository) ListQuestions(ctx context.Context) ([]models.MysteryQuestion, error) {
	dbQuestions, err := r.queries.ListMysteryQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mystery questions: %w", err)
	}

	questions := make([]models.MysteryQuestion, len(dbQuestions))
	for i, q := range dbQuestions {
		questions[i] = *dbQuestionToModel(q)
	}

	return questions, nil
}

// CreateQuestion inserts a new mystery question
func (r *Repository) CreateQuestion(ctx context.Context, difficulty, question string, status models.QuestionStatus) (*models.MysteryQuestion, error) {
	q, err := r.queries.CreateMysteryQuestion(ctx, db.CreateMysteryQuestionParams{
		Difficulty:     difficulty,
		Question:       question,
		QuestionStatus: string(status),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create mystery question: %w", err)
	}

	return dbQuestionToModel(q), nil
}

// UpdateQuestion overwrites a mystery question's fields
func (r *Repository) UpdateQuestion(ctx context.Context, id int, difficulty, question string, status models.QuestionStatus) (*models.MysteryQuestion, error) {
	q, err := r.queries.UpdateMysteryQuestion(ctx, db.UpdateMysteryQuestionParams{
		ID:             int32(id),
		Difficulty:     difficulty,
		Question:       question,
		QuestionStatus: string(status),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("failed to update mystery question: %w", err)
	}

	return dbQuestionToModel(q), nil
}

// DeleteQuestion removes a mystery question by id
func (r *Repository) DeleteQuestion(ctx context.Context, id int) error {
	if err := r.queries.DeleteMysteryQuestion(ctx, int32(id)); err != nil {
		return fmt.Errorf("failed to delete mystery question: %w", err)
	}

	return nil
}

// allocationConflict maps a team row that failed the guarded allocation onto
// the engine error the caller should see.
func allocationConflict(alloc db.GetTeamAllocationRow) error {
	if alloc.MysteryQuestion.Valid {
		return ErrAlreadyAllocated
	}
	return ErrInsufficientPoints
}

func dbQuestionToModel(q db.MysteryQuestion) *models.MysteryQuestion {
	return &models.MysteryQuestion{
		ID:         int(q.ID),
		Difficulty: q.Difficulty,
		Question:   q.Question,
		Status:     models.QuestionStatus(q.QuestionStatus),
	}
}
