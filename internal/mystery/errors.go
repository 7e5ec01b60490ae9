package mystery

import "errors"

// Failure modes of the allocation engine. The service layer maps these to
// HTTP status codes; the engine itself never retries.
var (
	// ErrTeamNotFound is returned when the named team does not exist.
	ErrTeamNotFound = errors.New("team not found")

	// ErrAlreadyAllocated is returned when a team that already holds a
	// mystery question tries to purchase another one.
	ErrAlreadyAllocated = errors.New("this team already has an allocated mystery question")

	// ErrInsufficientPoints is returned when the purchase cost exceeds the
	// team's balance. The purchase is rejected whole; nothing is debited.
	ErrInsufficientPoints = errors.New("not enough points to purchase this question")

	// ErrNoQuestionAvailable is returned when no UNALLOCATED question of the
	// requested difficulty exists.
	ErrNoQuestionAvailable = errors.New("no available question for this difficulty")

	// ErrQuestionNotFound is returned when a held question reference does not
	// resolve to an existing record.
	ErrQuestionNotFound = errors.New("mystery question not found")
)
