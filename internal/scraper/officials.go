package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/hockey-sync/internal/logger"
	"github.com/pfrederiksen/hockey-sync/internal/schedule"
)

// Officials scrapes refereeing and linesman assignments from the officials
// site, day by day over a configured span.
type Officials struct {
	client   *http.Client
	baseURL  string
	username string
	password string
	span     int
	loc      *time.Location
	log      *logger.Logger
	now      func() time.Time
}

// NewOfficials creates an Officials scraper. span is the number of days to
// fetch starting from today.
func NewOfficials(baseURL, username, password string, span int, loc *time.Location, log *logger.Logger) (*Officials, error) {
	client, err := newClient()
	if err != nil {
		return nil, err
	}
	return &Officials{
		client:   client,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		username: username,
		password: password,
		span:     span,
		loc:      loc,
		log:      log,
		now:      time.Now,
	}, nil
}

// Name identifies the source in logs and outcomes.
func (o *Officials) Name() string { return "officials" }

// Fetch logs in and collects all schedule-worthy assignments across the
// span. A transport failure aborts the remaining days.
func (o *Officials) Fetch(ctx context.Context) ([]schedule.Entry, error) {
	if err := o.login(ctx); err != nil {
		return nil, fmt.Errorf("officials login: %w", err)
	}

	now := o.now().In(o.loc)
	var entries []schedule.Entry
	for day := 0; day < o.span; day++ {
		date := now.AddDate(0, 0, day)
		doc, err := o.dayView(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("fetching day %s: %w", date.Format("2006-01-02"), err)
		}
		entries = append(entries, o.parseDay(doc, now)...)
	}
	return entries, nil
}

func (o *Officials) login(ctx context.Context) error {
	return postForm(ctx, o.client, o.baseURL+"/members/index.cgi", url.Values{
		"login_username": {o.username},
		"login_password": {o.password},
	})
}

func (o *Officials) dayView(ctx context.Context, date time.Time) (*goquery.Document, error) {
	return get(ctx, o.client, fmt.Sprintf("%s/members/dayview.cgi?date=%s",
		o.baseURL, date.Format("2006-01-02")))
}

// parseDay extracts assignments from one day-view page. Rows live in the
// first form, one per checkbox input; the cells after the first two are
// date, time, a filler column, kind, location, and league.
func (o *Officials) parseDay(doc *goquery.Document, now time.Time) []schedule.Entry {
	form := doc.Find("form").First()
	if form.Length() == 0 {
		return nil
	}

	var entries []schedule.Entry
	form.Find(`input[type="checkbox"]`).Each(func(_ int, box *goquery.Selection) {
		cells := cellTexts(box.Closest("tr").Find("td"))
		if len(cells) < 6 {
			o.dropRow(cells, fmt.Errorf("expected at least 6 cells, got %d", len(cells)))
			return
		}
		row := cells[2:]

		kind, err := schedule.ParseKind(row[3])
		if err != nil {
			o.dropRow(row, err)
			return
		}
		if !kind.ScheduleWorthy() {
			return
		}

		start, err := schedule.ResolveStart(row[0], expandMeridiem(row[1]), now, o.loc)
		if err != nil {
			o.dropRow(row, err)
			return
		}

		// Cells between kind and league can be blank filler.
		var rest []string
		for _, cell := range row[4:] {
			if cell != "" {
				rest = append(rest, cell)
			}
		}
		var location, league string
		if len(rest) > 0 {
			location = rest[0]
		}
		if len(rest) > 1 {
			league = rest[1]
		}

		entries = append(entries, schedule.NewAssignment(start, kind, location, league))
	})
	return entries
}

func (o *Officials) dropRow(row []string, err error) {
	logger.IncrCounter("scrape.officials.dropped")
	o.log.Warn("dropping officials row", logger.Fields{
		"row":   strings.Join(row, "|"),
		"error": err.Error(),
	})
}

// expandMeridiem rewrites the officials site's bare meridiem suffix, as in
// "6:15p", into the AM/PM form the resolver parses.
func expandMeridiem(timeText string) string {
	timeText = strings.ReplaceAll(timeText, "a", "AM")
	return strings.ReplaceAll(timeText, "p", "PM")
}
