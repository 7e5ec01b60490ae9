package db

type Question struct {
	ID       string
	Question string
}

type TeamQuestion struct {
	ID         int32
	QuestionID string
	TeamID     int32
}
