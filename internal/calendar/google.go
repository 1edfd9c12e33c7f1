package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// googleService implements Service against the Google Calendar API.
type googleService struct {
	svc        *gcal.Service
	calendarID string
}

// NewGoogle builds a Service over the Google Calendar API using an already
// authorized HTTP client. An empty calendarID targets the primary calendar.
func NewGoogle(ctx context.Context, client *http.Client, calendarID string) (Service, error) {
	svc, err := gcal.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("creating calendar service: %w", err)
	}
	if calendarID == "" {
		calendarID = "primary"
	}
	return &googleService{svc: svc, calendarID: calendarID}, nil
}

func (g *googleService) Query(ctx context.Context, timeMin, timeMax time.Time, tag string) ([]Event, error) {
	res, err := g.svc.Events.List(g.calendarID).
		Context(ctx).
		SingleEvents(true).
		OrderBy("startTime").
		SharedExtendedProperty(tag + "=true").
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		Do()
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	events := make([]Event, 0, len(res.Items))
	for _, item := range res.Items {
		events = append(events, Event{
			ID:       item.Id,
			Summary:  item.Summary,
			Location: item.Location,
			Start:    parseEventTime(item.Start),
			End:      parseEventTime(item.End),
		})
	}
	return events, nil
}

func (g *googleService) Create(ctx context.Context, ev Event, tag, colorID string) (Event, error) {
	body := &gcal.Event{
		Summary:  ev.Summary,
		Location: ev.Location,
		Start:    &gcal.EventDateTime{DateTime: ev.Start.Format(time.RFC3339)},
		End:      &gcal.EventDateTime{DateTime: ev.End.Format(time.RFC3339)},
		ColorId:  colorID,
		Reminders: &gcal.EventReminders{
			UseDefault:      false,
			ForceSendFields: []string{"UseDefault"},
		},
		ExtendedProperties: &gcal.EventExtendedProperties{
			Shared: map[string]string{tag: "true"},
		},
	}

	created, err := g.svc.Events.Insert(g.calendarID, body).Context(ctx).Do()
	if err != nil {
		return Event{}, fmt.Errorf("inserting event: %w", err)
	}
	ev.ID = created.Id
	return ev, nil
}

func (g *googleService) Delete(ctx context.Context, eventID string) error {
	if err := g.svc.Events.Delete(g.calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("deleting event %s: %w", eventID, err)
	}
	return nil
}

// parseEventTime extracts the timed instant from an API date-time. All-day
// events carry only a date and come back as the zero time; reconciliation
// never creates those, so they never match an entry exactly.
func parseEventTime(edt *gcal.EventDateTime) time.Time {
	if edt == nil || edt.DateTime == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, edt.DateTime)
	if err != nil {
		return time.Time{}
	}
	return t
}
