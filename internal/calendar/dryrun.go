package calendar

import (
	"context"
	"fmt"
	"time"
)

// DryRun wraps a Service, passing queries through but printing mutations
// instead of issuing them.
type DryRun struct {
	inner Service
}

// NewDryRun creates a dry-run wrapper around svc.
func NewDryRun(svc Service) *DryRun {
	return &DryRun{inner: svc}
}

func (d *DryRun) Query(ctx context.Context, timeMin, timeMax time.Time, tag string) ([]Event, error) {
	return d.inner.Query(ctx, timeMin, timeMax, tag)
}

func (d *DryRun) Create(_ context.Context, ev Event, tag, colorID string) (Event, error) {
	fmt.Printf("DRY RUN: would create %q at %s (%s, tag %s, color %s)\n",
		ev.Summary, ev.Start.Format(time.RFC3339), ev.Location, tag, colorID)
	return ev, nil
}

func (d *DryRun) Delete(_ context.Context, eventID string) error {
	fmt.Printf("DRY RUN: would delete event %s\n", eventID)
	return nil
}
