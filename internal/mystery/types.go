package mystery

// PurchaseRequest asks to buy one mystery question of a difficulty for a cost.
type PurchaseRequest struct {
	TeamName   string `json:"team_name"`
	Difficulty string `json:"difficulty"`
	Cost       int    `json:"cost"`
}

// PurchaseResult reports a successful allocation.
type PurchaseResult struct {
	TeamName        string `json:"team_name"`
	RemainingPoints int    `json:"remaining_points"`
	MysteryID       int    `json:"mystery_id"`
	Difficulty      string `json:"difficulty"`
	Question        string `json:"question"`
}

// ReleaseResult reports the question freed by a quit. MysteryID is nil when
// the team held nothing; quitting with nothing held is a permitted no-op.
type ReleaseResult struct {
	TeamName  string
	MysteryID *int
}

// CreateQuestionRequest is the admin payload for a new mystery question.
// Status defaults to UNALLOCATED when omitted.
type CreateQuestionRequest struct {
	Difficulty     string  `json:"difficulty"`
	Question       string  `json:"question"`
	QuestionStatus *string `json:"question_status,omitempty"`
}

// UpdateQuestionRequest carries the fields an admin can change on a question.
type UpdateQuestionRequest struct {
	Difficulty     *string `json:"difficulty,omitempty"`
	Question       *string `json:"question,omitempty"`
	QuestionStatus *string `json:"question_status,omitempty"`
}
