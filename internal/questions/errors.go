package questions

import "errors"

var (
	// ErrTeamExists is returned when an assignment names a team that was
	// already registered with a question.
	ErrTeamExists = errors.New("the team is already allocated with a question")

	// ErrQuestionNotFound is returned when the question code does not exist.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrQuestionExists is returned when creating a question with a taken id.
	ErrQuestionExists = errors.New("question id already exists")

	// ErrQuestionAssigned is returned when the question is mapped to a team.
	ErrQuestionAssigned = errors.New("this question is allotted already")

	// ErrMappingNotFound is returned when a team-question mapping id is unknown.
	ErrMappingNotFound = errors.New("team question mapping not found")
)
