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

// Invites scrapes team games and their RSVP state from the invite site. The
// feed lists whatever games the site currently shows; there is no window
// parameter.
type Invites struct {
	client   *http.Client
	baseURL  string
	username string
	password string
	loc      *time.Location
	log      *logger.Logger
	now      func() time.Time
}

// NewInvites creates an Invites scraper.
func NewInvites(baseURL, username, password string, loc *time.Location, log *logger.Logger) (*Invites, error) {
	client, err := newClient()
	if err != nil {
		return nil, err
	}
	return &Invites{
		client:   client,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		username: username,
		password: password,
		loc:      loc,
		log:      log,
		now:      time.Now,
	}, nil
}

// Name identifies the source in logs and outcomes.
func (i *Invites) Name() string { return "invites" }

// Fetch logs in and collects all listed games.
func (i *Invites) Fetch(ctx context.Context) ([]schedule.Entry, error) {
	if err := i.login(ctx); err != nil {
		return nil, fmt.Errorf("invites login: %w", err)
	}

	doc, err := get(ctx, i.client, i.baseURL+"/games")
	if err != nil {
		return nil, fmt.Errorf("fetching games: %w", err)
	}
	return i.parseGames(doc, i.now().In(i.loc)), nil
}

// login fetches the login form, carries its first two hidden inputs (the
// CSRF pair) into the credential POST, and submits it.
func (i *Invites) login(ctx context.Context) error {
	doc, err := get(ctx, i.client, i.baseURL+"/session/new")
	if err != nil {
		return fmt.Errorf("fetching login form: %w", err)
	}

	values := loginValues(doc, i.username, i.password)
	if err := postForm(ctx, i.client, i.baseURL+"/session", values); err != nil {
		return fmt.Errorf("submitting login: %w", err)
	}
	return nil
}

// loginValues builds the login POST body from the form's leading hidden
// inputs plus the credentials.
func loginValues(doc *goquery.Document, username, password string) url.Values {
	values := url.Values{
		"login":    {username},
		"password": {password},
	}
	doc.Find("form").First().Find("input").EachWithBreak(func(n int, input *goquery.Selection) bool {
		if n >= 2 {
			return false
		}
		name, ok := input.Attr("name")
		if !ok {
			return true
		}
		value, _ := input.Attr("value")
		values.Set(name, value)
		return true
	})
	return values
}

// parseGames extracts games from the listing page. Each game is a tr.txt11
// row with cells: datetime, rink, home, away, rsvp.
func (i *Invites) parseGames(doc *goquery.Document, now time.Time) []schedule.Entry {
	var entries []schedule.Entry
	doc.Find("table tr.txt11").Each(func(_ int, tr *goquery.Selection) {
		row := cellTexts(tr.Find("td"))
		if len(row) < 5 {
			i.dropRow(row, fmt.Errorf("expected 5 cells, got %d", len(row)))
			return
		}

		rsvp, err := schedule.ParseRsvp(row[4])
		if err != nil {
			i.dropRow(row, err)
			return
		}

		dateText, timeText, err := splitWhen(row[0])
		if err != nil {
			i.dropRow(row, err)
			return
		}
		start, err := schedule.ResolveStart(dateText, timeText, now, i.loc)
		if err != nil {
			i.dropRow(row, err)
			return
		}

		entries = append(entries, schedule.NewGame(start, row[1], row[2], row[3], rsvp))
	})
	return entries
}

// splitWhen separates "Sat Mar 15 6:30 PM" into its date and time tokens.
// The date is always the first three fields.
func splitWhen(when string) (string, string, error) {
	fields := strings.Fields(when)
	if len(fields) < 4 {
		return "", "", fmt.Errorf("malformed datetime %q", when)
	}
	return strings.Join(fields[:3], " "), strings.Join(fields[3:], " "), nil
}

func (i *Invites) dropRow(row []string, err error) {
	logger.IncrCounter("scrape.invites.dropped")
	i.log.Warn("dropping invites row", logger.Fields{
		"row":   strings.Join(row, "|"),
		"error": err.Error(),
	})
}
