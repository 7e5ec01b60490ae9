package gateway

import "time"

// Notifier translates engine results into wire events and hands them to the
// connection manager. It never mutates state and never retries a failed
// delivery; pruning unreachable connections is the manager's job.
type Notifier struct {
	manager *ConnectionManager
}

// NewNotifier creates a new notifier
func NewNotifier(manager *ConnectionManager) *Notifier {
	return &Notifier{manager: manager}
}

// PointsUpdated broadcasts a team's new balance to its connections.
func (n *Notifier) PointsUpdated(team string, newPoints int) {
	n.manager.Broadcast(team, NewPointsUpdated(team, newPoints))
}

// TimeUpdated broadcasts a team's extended deadline to its connections.
func (n *Notifier) TimeUpdated(team string, newEndTime time.Time, remainingSeconds int) {
	n.manager.Broadcast(team, NewTimeUpdated(team, newEndTime, remainingSeconds))
}
