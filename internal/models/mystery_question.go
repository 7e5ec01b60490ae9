package models

// QuestionStatus tracks whether a mystery question is currently held by a team.
type QuestionStatus string

const (
	QuestionStatusUnallocated QuestionStatus = "UNALLOCATED"
	QuestionStatusAllocated   QuestionStatus = "ALLOCATED"
)

// MysteryQuestion is a difficulty-tagged question a team can buy with points.
// Status is ALLOCATED exactly while one team's MysteryQuestionID points at it.
type MysteryQuestion struct {
	ID         int
	Difficulty string
	Question   string
	Status     QuestionStatus
}
