package db

import "context"

const createQuestion = `
INSERT INTO question (id, question)
VALUES ($1, $2)
RETURNING id, question
`

type CreateQuestionParams struct {
	ID       string
	Question string
}

func (q *Queries) CreateQuestion(ctx context.Context, arg CreateQuestionParams) (Question, error) {
	row := q.db.QueryRowContext(ctx, createQuestion, arg.ID, arg.Question)
	var item Question
	err := row.Scan(&item.ID, &item.Question)
	return item, err
}

const getQuestion = `
SELECT id, question
FROM question
WHERE id = $1
`

func (q *Queries) GetQuestion(ctx context.Context, id string) (Question, error) {
	row := q.db.QueryRowContext(ctx, getQuestion, id)
	var item Question
	err := row.Scan(&item.ID, &item.Question)
	return item, err
}

const listQuestions = `
SELECT id, question
FROM question
ORDER BY id
`

func (q *Queries) ListQuestions(ctx context.Context) ([]Question, error) {
	rows, err := q.db.QueryContext(ctx, listQuestions)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Question
	for rows.Next() {
		var item Question
		if err := rows.Scan(&item.ID, &item.Question); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createTeamQuestion = `
INSERT INTO team_question (question_id, team_id)
VALUES ($1, $2)
RETURNING id, question_id, team_id
`

type CreateTeamQuestionParams struct {
	QuestionID string
	TeamID     int32
}

func (q *Queries) CreateTeamQuestion(ctx context.Context, arg CreateTeamQuestionParams) (TeamQuestion, error) {
	row := q.db.QueryRowContext(ctx, createTeamQuestion, arg.QuestionID, arg.TeamID)
	var item TeamQuestion
	err := row.Scan(&item.ID, &item.QuestionID, &item.TeamID)
	return item, err
}

const getTeamQuestionByQuestion = `
SELECT id, question_id, team_id
FROM team_question
WHERE question_id = $1
`

func (q *Queries) GetTeamQuestionByQuestion(ctx context.Context, questionID string) (TeamQuestion, error) {
	row := q.db.QueryRowContext(ctx, getTeamQuestionByQuestion, questionID)
	var item TeamQuestion
	err := row.Scan(&item.ID, &item.QuestionID, &item.TeamID)
	return item, err
}

const deleteTeamQuestion = `
DELETE FROM team_question
WHERE id = $1
`

func (q *Queries) DeleteTeamQuestion(ctx context.Context, id int32) error {
	_, err := q.db.ExecContext(ctx, deleteTeamQuestion, id)
	return err
}

const getTeamQuestion = `
SELECT id, question_id, team_id
FROM team_question
WHERE id = $1
`

func (q *Queries) GetTeamQuestion(ctx context.Context, id int32) (TeamQuestion, error) {
	row := q.db.QueryRowContext(ctx, getTeamQuestion, id)
	var item TeamQuestion
	err := row.Scan(&item.ID, &item.QuestionID, &item.TeamID)
	return item, err
}
