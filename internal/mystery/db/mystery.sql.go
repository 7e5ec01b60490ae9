package db

import (
	"context"
	"database/sql"
	"time"
)

const createMysteryQuestion = `
INSERT INTO mystery_question (difficulty, question, question_status)
VALUES ($1, $2, $3)
RETURNING id, difficulty, question, question_status
`

type CreateMysteryQuestionParams struct {
	Difficulty     string
	Question       string
	QuestionStatus string
}

func (q *Queries) CreateMysteryQuestion(ctx context.Context, arg CreateMysteryQuestionParams) (MysteryQuestion, error) {
	row := q.db.QueryRowContext(ctx, createMysteryQuestion, arg.Difficulty, arg.Question, arg.QuestionStatus)
	var m MysteryQuestion
	err := row.Scan(&m.ID, &m.Difficulty, &m.Question, &m.QuestionStatus)
	return m, err
}

const getMysteryQuestion = `
SELECT id, difficulty, question, question_status
FROM mystery_question
WHERE id = $1
`

func (q *Queries) GetMysteryQuestion(ctx context.Context, id int32) (MysteryQuestion, error) {
	row := q.db.QueryRowContext(ctx, getMysteryQuestion, id)
	var m MysteryQuestion
	err := row.Scan(&m.ID, &m.Difficulty, &m.Question, &m.QuestionStatus)
	return m, err
}

const listMysteryQuestions = `
SELECT id, difficulty, question, question_status
FROM mystery_question
ORDER BY id
`

func (q *Queries) ListMysteryQuestions(ctx context.Context) ([]MysteryQuestion, error) {
	rows, err := q.db.QueryContext(ctx, listMysteryQuestions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []MysteryQuestion
	for rows.Next() {
		var m MysteryQuestion
		if err := rows.Scan(&m.ID, &m.Difficulty, &m.Question, &m.QuestionStatus); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateMysteryQuestion = `
UPDATE mystery_question
SET difficulty = $2, question = $3, question_status = $4
WHERE id = $1
RETURNING id, difficulty, question, question_status
`

type UpdateMysteryQuestionParams struct {
	ID             int32
	Difficulty     string
	Question       string
	QuestionStatus string
}

func (q *Queries) UpdateMysteryQuestion(ctx context.Context, arg UpdateMysteryQuestionParams) (MysteryQuestion, error) {
	row := q.db.QueryRowContext(ctx, updateMysteryQuestion, arg.ID, arg.Difficulty, arg.Question, arg.QuestionStatus)
	var m MysteryQuestion
	err := row.Scan(&m.ID, &m.Difficulty, &m.Question, &m.QuestionStatus)
	return m, err
}

const deleteMysteryQuestion = `
DELETE FROM mystery_question
WHERE id = $1
`

func (q *Queries) DeleteMysteryQuestion(ctx context.Context, id int32) error {
	_, err := q.db.ExecContext(ctx, deleteMysteryQuestion, id)
	return err
}

// claimMysteryQuestion atomically flips the lowest-id UNALLOCATED question of
// the requested difficulty to ALLOCATED. Returns sql.ErrNoRows when no
// question of that difficulty is available.
const claimMysteryQuestion = `
UPDATE mystery_question
SET question_status = 'ALLOCATED'
WHERE id = (
    SELECT id FROM mystery_question
    WHERE difficulty = $1 AND question_status = 'UNALLOCATED'
    ORDER BY id
    LIMIT 1
    FOR UPDATE SKIP LOCKED
)
RETURNING id, difficulty, question, question_status
`

func (q *Queries) ClaimMysteryQuestion(ctx context.Context, difficulty string) (MysteryQuestion, error) {
	row := q.db.QueryRowContext(ctx, claimMysteryQuestion, difficulty)
	var m MysteryQuestion
	err := row.Scan(&m.ID, &m.Difficulty, &m.Question, &m.QuestionStatus)
	return m, err
}

const releaseMysteryQuestion = `
UPDATE mystery_question
SET question_status = 'UNALLOCATED'
WHERE id = $1
RETURNING id, difficulty, question, question_status
`

func (q *Queries) ReleaseMysteryQuestion(ctx context.Context, id int32) (MysteryQuestion, error) {
	row := q.db.QueryRowContext(ctx, releaseMysteryQuestion, id)
	var m MysteryQuestion
	err := row.Scan(&m.ID, &m.Difficulty, &m.Question, &m.QuestionStatus)
	return m, err
}

// allocateTeamMystery debits the cost and records the held question in one
// guarded statement. Returns sql.ErrNoRows when the team already holds a
// question or cannot afford the cost, so a racing writer loses cleanly.
const allocateTeamMystery = `
UPDATE teams
SET mystery_question = $2, points = points - $3
WHERE id = $1 AND mystery_question IS NULL AND points >= $3
RETURNING id, team_name, points, mystery_question, deadline
`

type AllocateTeamMysteryParams struct {
	TeamID    int32
	MysteryID int32
	Cost      int32
}

// AllocateTeamMystery returns the team's remaining points after the debit.
func (q *Queries) AllocateTeamMystery(ctx context.Context, arg AllocateTeamMysteryParams) (int32, error) {
	row := q.db.QueryRowContext(ctx, allocateTeamMystery, arg.TeamID, arg.MysteryID, arg.Cost)
	var (
		id, points, mysteryQuestion int32
		teamName                    string
		deadline                    time.Time
	)
	err := row.Scan(&id, &teamName, &points, &mysteryQuestion, &deadline)
	return points, err
}

const getTeamAllocation = `
SELECT mystery_question, points
FROM teams
WHERE id = $1
`

type GetTeamAllocationRow struct {
	MysteryQuestion sql.NullInt32
	Points          int32
}

// GetTeamAllocation reads the team's held question and balance; used to
// classify why a guarded allocation matched no row.
func (q *Queries) GetTeamAllocation(ctx context.Context, teamID int32) (GetTeamAllocationRow, error) {
	row := q.db.QueryRowContext(ctx, getTeamAllocation, teamID)
	var r GetTeamAllocationRow
	err := row.Scan(&r.MysteryQuestion, &r.Points)
	return r, err
}

const clearTeamMystery = `
UPDATE teams
SET mystery_question = NULL
WHERE id = $1
`

func (q *Queries) ClearTeamMystery(ctx context.Context, teamID int32) error {
	_, err := q.db.ExecContext(ctx, clearTeamMystery, teamID)
	return err
}
