package models

// Question is a regular (non-mystery) challenge question. The ID is a
// human-assigned code rather than a generated number.
type Question struct {
	ID       string
	Question string
}

// TeamQuestion maps a regular question to the team working on it. Both sides
// of the mapping are unique: a question belongs to at most one team.
type TeamQuestion struct {
	ID         int
	QuestionID string
	TeamID     int
}
