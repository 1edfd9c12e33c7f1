package calendar

import (
	"context"
	"time"
)

// Event is the slice of a calendar event that reconciliation cares about.
type Event struct {
	ID       string
	Summary  string
	Location string
	Start    time.Time
	End      time.Time
}

// Service is the query/mutate capability over the target calendar. All three
// operations are single independent round trips; there is no transaction
// spanning a query and a following mutation.
type Service interface {
	// Query lists events starting in [timeMin, timeMax) that carry the given
	// ownership tag, ascending by start time. Events without the tag are
	// invisible by construction.
	Query(ctx context.Context, timeMin, timeMax time.Time, tag string) ([]Event, error)

	// Create inserts an event tagged with the given ownership tag and color,
	// with default reminders disabled, and returns it with its assigned ID.
	Create(ctx context.Context, ev Event, tag, colorID string) (Event, error)

	// Delete removes the event with the given ID.
	Delete(ctx context.Context, eventID string) error
}
