// Package syncer drives one full sync pass: fetch entries from each source,
// reconcile each against the calendar, report outcomes.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pfrederiksen/hockey-sync/internal/logger"
	"github.com/pfrederiksen/hockey-sync/internal/reconcile"
	"github.com/pfrederiksen/hockey-sync/internal/schedule"
)

// Source produces normalized schedule entries for one site. Fetch returns
// entries in the order the site lists them; a transport failure is returned
// as an error with no partial retry.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]schedule.Entry, error)
}

// Driver runs sources in order and reconciles their entries sequentially.
type Driver struct {
	sources []Source
	rec     *reconcile.Reconciler
	log     *logger.Logger
}

// New creates a Driver over the given sources, in iteration order.
func New(rec *reconcile.Reconciler, log *logger.Logger, sources ...Source) *Driver {
	return &Driver{sources: sources, rec: rec, log: log}
}

// Run performs one sync pass. A source whose fetch fails, or whose
// reconciliation hits a calendar error, loses its remaining work; the driver
// moves on to the next source and reports all failures joined at the end.
// The calendar is left in a valid, re-runnable state either way.
func (d *Driver) Run(ctx context.Context) error {
	var errs []error
	for _, src := range d.sources {
		if err := d.runSource(ctx, src); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
		}
	}
	return errors.Join(errs...)
}

func (d *Driver) runSource(ctx context.Context, src Source) error {
	fetchStart := time.Now()
	entries, err := src.Fetch(ctx)
	logger.RecordTiming("fetch."+src.Name(), time.Since(fetchStart))
	if err != nil {
		d.log.Error("fetch failed", logger.Fields{"source": src.Name()}, err)
		return err
	}

	d.log.Info("fetched entries", logger.Fields{
		"source": src.Name(),
		"count":  len(entries),
	})

	for _, entry := range entries {
		out, err := d.rec.Reconcile(ctx, entry)
		if err != nil {
			d.log.Error("reconcile failed", logger.Fields{
				"source":  src.Name(),
				"summary": entry.Summary(),
			}, err)
			return err
		}

		logger.IncrCounter("sync." + out.Action.String())
		fields := logger.Fields{
			"source":  src.Name(),
			"summary": entry.Summary(),
			"start":   entry.Start().Format(time.RFC3339),
			"action":  out.Action.String(),
		}
		if out.Reason != "" {
			fields["reason"] = out.Reason
		}
		d.log.Info("reconciled entry", fields)
	}
	return nil
}
