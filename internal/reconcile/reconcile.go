package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/pfrederiksen/hockey-sync/internal/calendar"
	"github.com/pfrederiksen/hockey-sync/internal/logger"
	"github.com/pfrederiksen/hockey-sync/internal/schedule"
)

// Ownership tags marking events this system created, one per source. The
// existence query filters on the tag, so foreign events are never touched.
const (
	TagOfficials = "hockeyref"
	TagInvites   = "hockeyvite"
)

// Calendar color IDs, one per source.
const (
	colorOfficials = "6"
	colorInvites   = "7"
)

// queryWindow bounds the existence query to [start, start+queryWindow).
const queryWindow = 5 * time.Second

// Action is the mutation a reconciliation decision resolved to.
type Action int

const (
	ActionSkipped Action = iota
	ActionCreated
	ActionDeleted
)

func (a Action) String() string {
	switch a {
	case ActionCreated:
		return "created"
	case ActionDeleted:
		return "deleted"
	default:
		return "skipped"
	}
}

// Outcome reports what reconciling one entry did.
type Outcome struct {
	Action Action
	Reason string
}

// Reconciler compares schedule entries against current calendar state.
type Reconciler struct {
	cal      calendar.Service
	subTeams map[string]bool
	log      *logger.Logger
}

// New creates a Reconciler. subTeams is the roster of substitute-only teams
// whose maybe games are not calendar-worthy.
func New(cal calendar.Service, subTeams []string, log *logger.Logger) *Reconciler {
	roster := make(map[string]bool, len(subTeams))
	for _, team := range subTeams {
		roster[team] = true
	}
	return &Reconciler{cal: cal, subTeams: roster, log: log}
}

// Reconcile applies the per-source decision rules to one entry and returns
// the outcome. Calendar errors propagate wrapped; they are the caller's
// signal to stop working on the current source.
func (r *Reconciler) Reconcile(ctx context.Context, entry schedule.Entry) (Outcome, error) {
	switch e := entry.(type) {
	case *schedule.Assignment:
		return r.reconcileAssignment(ctx, e)
	case *schedule.Game:
		return r.reconcileGame(ctx, e)
	default:
		return Outcome{}, fmt.Errorf("unsupported entry type %T", entry)
	}
}

// reconcileAssignment handles officials-site entries: one event per
// assignment slot, created only if no owned event already occupies it.
func (r *Reconciler) reconcileAssignment(ctx context.Context, a *schedule.Assignment) (Outcome, error) {
	existing, err := r.cal.Query(ctx, a.Start(), a.Start().Add(queryWindow), TagOfficials)
	if err != nil {
		return Outcome{}, fmt.Errorf("querying calendar: %w", err)
	}

	if len(existing) > 0 {
		r.log.Info("not creating assignment, already exists", logger.Fields{
			"summary": a.Summary(),
			"start":   a.Start().Format(time.RFC3339),
		})
		return Outcome{Action: ActionSkipped, Reason: "already exists"}, nil
	}

	if _, err := r.cal.Create(ctx, calendar.Event{
		Summary:  a.Summary(),
		Location: a.Location(),
		Start:    a.Start(),
		End:      a.End(),
	}, TagOfficials, colorOfficials); err != nil {
		return Outcome{}, fmt.Errorf("creating event: %w", err)
	}

	r.log.Info("created assignment", logger.Fields{
		"summary": a.Summary(),
		"start":   a.Start().Format(time.RFC3339),
	})
	return Outcome{Action: ActionCreated}, nil
}

// reconcileGame handles invite-site entries. The delete branch for a
// retracted RSVP runs first; the already-represented check is then evaluated
// against the original query result, so a retraction both deletes the stale
// event and ends the decision without creating anything.
func (r *Reconciler) reconcileGame(ctx context.Context, g *schedule.Game) (Outcome, error) {
	existing, err := r.cal.Query(ctx, g.Start(), g.Start().Add(queryWindow), TagInvites)
	if err != nil {
		return Outcome{}, fmt.Errorf("querying calendar: %w", err)
	}

	out := Outcome{Action: ActionSkipped}
	if len(existing) > 0 {
		if g.Rsvp() == schedule.RsvpNo {
			for _, ev := range existing {
				if ev.Summary == g.Summary() && ev.Start.Equal(g.Start()) {
					if err := r.cal.Delete(ctx, ev.ID); err != nil {
						return Outcome{}, fmt.Errorf("deleting event: %w", err)
					}
					r.log.Info("deleted event for no rsvp", logger.Fields{
						"summary": g.Summary(),
						"start":   g.Start().Format(time.RFC3339),
					})
					out = Outcome{Action: ActionDeleted, Reason: "rsvp no"}
				}
			}
		}

		for _, ev := range existing {
			if ev.Summary == g.Summary() {
				if out.Action == ActionDeleted {
					return out, nil
				}
				r.log.Info("not creating game, already exists", logger.Fields{
					"summary": g.Summary(),
					"start":   g.Start().Format(time.RFC3339),
				})
				return Outcome{Action: ActionSkipped, Reason: "already exists"}, nil
			}
		}
	}

	if g.Rsvp() == schedule.RsvpYes || g.Rsvp() == schedule.RsvpMaybe {
		if g.Rsvp() == schedule.RsvpMaybe && (r.subTeams[g.Home()] || r.subTeams[g.Away()]) {
			r.log.Info("not creating game, sub team maybe", logger.Fields{
				"summary": g.Summary(),
				"home":    g.Home(),
				"away":    g.Away(),
			})
			return Outcome{Action: ActionSkipped, Reason: "sub team"}, nil
		}

		if _, err := r.cal.Create(ctx, calendar.Event{
			Summary:  g.Summary(),
			Location: g.Location(),
			Start:    g.Start(),
			End:      g.End(),
		}, TagInvites, colorInvites); err != nil {
			return Outcome{}, fmt.Errorf("creating event: %w", err)
		}

		r.log.Info("created game", logger.Fields{
			"summary": g.Summary(),
			"start":   g.Start().Format(time.RFC3339),
			"rsvp":    g.Rsvp().String(),
		})
		return Outcome{Action: ActionCreated}, nil
	}

	return out, nil
}
