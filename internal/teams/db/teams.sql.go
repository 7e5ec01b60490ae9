package db

import (
	"context"
	"time"
)

const createTeam = `
INSERT INTO teams (team_name, points, deadline)
VALUES ($1, $2, $3)
RETURNING id, team_name, points, mystery_question, deadline
`

type CreateTeamParams struct {
	TeamName string
	Points   int32
	Deadline time.Time
}

func (q *Queries) CreateTeam(ctx context.Context, arg CreateTeamParams) (Team, error) {
	row := q.db.QueryRowContext(ctx, createTeam, arg.TeamName, arg.Points, arg.Deadline)
	var t Team
	err := row.Scan(&t.ID, &t.TeamName, &t.Points, &t.MysteryQuestion, &t.Deadline)
	return t, err
}

const getTeam = `
SELECT id, team_name, points, mystery_question, deadline
FROM teams
WHERE id = $1
`

func (q *Queries) GetTeam(ctx context.Context, id int32) (Team, error) {
	row := q.db.QueryRowContext(ctx, getTeam, id)
	var t Team
	err := row.Scan(&t.ID, &t.TeamName, &t.Points, &t.MysteryQuestion, &t.Deadline)
	return t, err
}

const getTeamByName = `
SELECT id, team_name, points, mystery_question, deadline
FROM teams
WHERE team_name = $1
`

func (q *Queries) GetTeamByName(ctx context.Context, teamName string) (Team, error) {
	row := q.db.QueryRowContext(ctx, getTeamByName, teamName)
	var t Team
	err := row.Scan(&t.ID, &t.TeamName, &t.Points, &t.MysteryQuestion, &t.Deadline)
	return t, err
}

const listTeams = `
SELECT id, team_name, points, mystery_question, deadline
FROM teams
ORDER BY id
`

func (q *Queries) ListTeams(ctx context.Context) ([]Team, error) {
	rows, err := q.db.QueryContext(ctx, listTeams)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Team
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.ID, &t.TeamName, &t.Points, &t.MysteryQuestion, &t.Deadline); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateTeam = `
UPDATE teams
SET team_name = $2, points = $3
WHERE id = $1
RETURNING id, team_name, points, mystery_question, deadline
`

type UpdateTeamParams struct {
	ID       int32
	TeamName string
	Points   int32
}

func (q *Queries) UpdateTeam(ctx context.Context, arg UpdateTeamParams) (Team, error) {
	row := q.db.QueryRowContext(ctx, updateTeam, arg.ID, arg.TeamName, arg.Points)
	var t Team
	err := row.Scan(&t.ID, &t.TeamName, &t.Points, &t.MysteryQuestion, &t.Deadline)
	return t, err
}

const extendDeadline = `
UPDATE teams
SET deadline = $2
WHERE id = $1
RETURNING id, team_name, points, mystery_question, deadline
`

type ExtendDeadlineParams struct {
	ID       int32
	Deadline time.Time
}

func (q *Queries) ExtendDeadline(ctx context.Context, arg ExtendDeadlineParams) (Team, error) {
	row := q.db.QueryRowContext(ctx, extendDeadline, arg.ID, arg.Deadline)
	var t Team
	err := row.Scan(&t.ID, &t.TeamName, &t.Points, &t.MysteryQuestion, &t.Deadline)
	return t, err
}

const deleteTeam = `
DELETE FROM teams
WHERE id = $1
`

func (q *Queries) DeleteTeam(ctx context.Context, id int32) error {
	_, err := q.db.ExecContext(ctx, deleteTeam, id)
	return err
}

const deleteTeamQuestionByTeam = `
DELETE FROM team_question
WHERE team_id = $1
`

func (q *Queries) DeleteTeamQuestionByTeam(ctx context.Context, teamID int32) error {
	_, err := q.db.ExecContext(ctx, deleteTeamQuestionByTeam, teamID)
	return err
}
