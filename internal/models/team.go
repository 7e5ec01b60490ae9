package models

import "time"

// Team is a competing team in the arena. Points start at the configured
// default and are debited by mystery purchases. MysteryQuestionID is the
// at-most-one mystery question the team currently holds. Deadline is the
// absolute end of the team's current challenge window; the proctor console
// can push it forward while a mystery question is active.
type Team struct {
	ID                int
	Name              string
	Points            int
	MysteryQuestionID *int
	Deadline          time.Time
}

// HoldsMystery reports whether the team currently holds a mystery question.
func (t *Team) HoldsMystery() bool {
	return t.MysteryQuestionID != nil
}
