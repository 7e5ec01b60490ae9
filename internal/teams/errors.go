package teams

import "errors"

// ErrNotFound is returned when a team does not exist.
var ErrNotFound = errors.New("team not found")
