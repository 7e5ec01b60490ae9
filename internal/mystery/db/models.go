package db

type MysteryQuestion struct {
	ID             int32
	Difficulty     string
	Question       string
	QuestionStatus string
}
