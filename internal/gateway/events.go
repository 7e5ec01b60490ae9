package gateway

import "time"

// Kind identifies the type of a broadcast event.
type Kind string

const (
	KindPointsUpdated Kind = "points_updated"
	KindTimeUpdated   Kind = "time_updated"
	KindError         Kind = "error"
)

// Event is the wire payload pushed to team connections. Events are
// ephemeral: produced on a state change, delivered to whoever is connected
// right now, then discarded. There is no replay.
type Event struct {
	Kind             Kind       `json:"event"`
	Team             string     `json:"team,omitempty"`
	NewPoints        *int       `json:"new_points,omitempty"`
	NewEndTime       *time.Time `json:"new_end_time,omitempty"`
	RemainingSeconds *int       `json:"remaining_seconds,omitempty"`
	Detail           string     `json:"detail,omitempty"`
}

// NewPointsUpdated reports a team's balance after a purchase.
func NewPointsUpdated(team string, newPoints int) Event {
	return Event{
		Kind:      KindPointsUpdated,
		Team:      team,
		NewPoints: &newPoints,
	}
}

// NewTimeUpdated reports a team's extended deadline and the seconds left.
func NewTimeUpdated(team string, newEndTime time.Time, remainingSeconds int) Event {
	return Event{
		Kind:             KindTimeUpdated,
		Team:             team,
		NewEndTime:       &newEndTime,
		RemainingSeconds: &remainingSeconds,
	}
}

// NewError wraps a failure detail for delivery to a single connection.
func NewError(detail string) Event {
	return Event{
		Kind:   KindError,
		Detail: detail,
	}
}
