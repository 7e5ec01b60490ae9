package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/siammpl/arena/internal/keylock"
	"github.com/siammpl/arena/internal/models"
	"github.com/siammpl/arena/internal/teams"
)

// TeamStore is what the timekeeper needs from the team layer.
type TeamStore interface {
	GetTeamByName(ctx context.Context, name string) (*models.Team, error)
	ExtendDeadline(ctx context.Context, id int, deadline time.Time) (*models.Team, error)
}

// TimeNotifier broadcasts deadline changes to a team.
type TimeNotifier interface {
	TimeUpdated(team string, newEndTime time.Time, remainingSeconds int)
}

// EventSender delivers an event to a single connection. Local error replies
// go through it so they never reach the rest of the team.
type EventSender interface {
	SendEvent(event Event)
}

// Timekeeper applies bonus-time events to a team's deadline. Extensions
// accumulate without limit; the handler keeps no state beyond the stored
// deadline. Enforcement of an expired deadline is the caller's concern.
// Extensions take the same per-team lock as purchase and release, so the
// read-add-persist sequence never interleaves with another team mutation.
type Timekeeper struct {
	teams        TeamStore
	notifier     TimeNotifier
	clock        clockwork.Clock
	defaultBonus time.Duration
	locks        *keylock.Keyed
}

// NewTimekeeper creates a new deadline extension handler
func NewTimekeeper(teamStore TeamStore, notifier TimeNotifier, clock clockwork.Clock, defaultBonus time.Duration, locks *keylock.Keyed) *Timekeeper {
	return &Timekeeper{
		teams:        teamStore,
		notifier:     notifier,
		clock:        clock,
		defaultBonus: defaultBonus,
		locks:        locks,
	}
}

// HandleDone processes a proctor "done" signal for a team. Failures are
// replied to the originating connection only; a successful extension is
// broadcast to every connection of the team, the originator included.
func (t *Timekeeper) HandleDone(ctx context.Context, reply EventSender, teamName string, extraTime *int) {
	t.locks.Lock(teamName)
	defer t.locks.Unlock(teamName)

	team, err := t.teams.GetTeamByName(ctx, teamName)
	if err != nil {
		if errors.Is(err, teams.ErrNotFound) {
			reply.SendEvent(NewError("Team not found"))
			return
		}
		log.Error().Err(err).Str("team", teamName).Msg("failed to resolve team for time update")
		reply.SendEvent(NewError("internal error"))
		return
	}

	// Extension only applies while a mystery question is active.
	if !team.HoldsMystery() {
		reply.SendEvent(NewError("No mystery question assigned"))
		return
	}

	bonus := t.defaultBonus
	if extraTime != nil {
		bonus = time.Duration(*extraTime) * time.Second
	}

	newDeadline := team.Deadline.Add(bonus)
	updated, err := t.teams.ExtendDeadline(ctx, team.ID, newDeadline)
	if err != nil {
		log.Error().Err(err).Str("team", teamName).Msg("failed to persist extended deadline")
		reply.SendEvent(NewError("internal error"))
		return
	}

	remaining := int(updated.Deadline.Sub(t.clock.Now()).Seconds())
	if remaining < 0 {
		remaining = 0
	}

	log.Info().
		Str("team", updated.Name).
		Time("new_end_time", updated.Deadline).
		Int("remaining_seconds", remaining).
		Msg("deadline extended")

	t.notifier.TimeUpdated(updated.Name, updated.Deadline, remaining)
}
