package schedule

import (
	"fmt"
	"time"
)

// Fixed slot lengths per source.
const (
	AssignmentDuration = 75 * time.Minute
	GameDuration       = 90 * time.Minute
)

// Entry is one normalized schedule record, built once per scraped row and
// consumed by a single reconciliation decision.
type Entry interface {
	// Summary is the calendar event title for this record.
	Summary() string
	// Location is the free-text venue.
	Location() string
	// Start is the absolute, timezone-aware start instant.
	Start() time.Time
	// End is Start plus the source's fixed duration.
	End() time.Time
}

// Assignment is an officiating assignment from the officials site.
type Assignment struct {
	start    time.Time
	kind     EventKind
	location string
	league   string
}

// NewAssignment builds an immutable Assignment.
func NewAssignment(start time.Time, kind EventKind, location, league string) *Assignment {
	return &Assignment{start: start, kind: kind, location: location, league: league}
}

func (a *Assignment) Summary() string {
	return fmt.Sprintf("%s %s", a.kind.Title(), a.league)
}

func (a *Assignment) Location() string { return a.location }
func (a *Assignment) Start() time.Time { return a.start }
func (a *Assignment) End() time.Time   { return a.start.Add(AssignmentDuration) }
func (a *Assignment) Kind() EventKind  { return a.kind }
func (a *Assignment) League() string   { return a.league }

func (a *Assignment) String() string {
	return fmt.Sprintf("%s %s %s @ %s",
		a.start.Format(time.RFC3339), a.kind, a.league, a.location)
}

// Game is a team game with an RSVP from the invite site.
type Game struct {
	start time.Time
	rink  string
	home  string
	away  string
	rsvp  RsvpStatus
}

// NewGame builds an immutable Game. The rink doubles as the location.
func NewGame(start time.Time, rink, home, away string, rsvp RsvpStatus) *Game {
	return &Game{start: start, rink: rink, home: home, away: away, rsvp: rsvp}
}

func (g *Game) Summary() string {
	return fmt.Sprintf("%s @ %s", g.away, g.home)
}

func (g *Game) Location() string { return g.rink }
func (g *Game) Start() time.Time { return g.start }
func (g *Game) End() time.Time   { return g.start.Add(GameDuration) }
func (g *Game) Home() string     { return g.home }
func (g *Game) Away() string     { return g.away }
func (g *Game) Rsvp() RsvpStatus { return g.rsvp }

func (g *Game) String() string {
	return fmt.Sprintf("%s @ %s %s %s %s",
		g.home, g.away, g.start.Format(time.RFC3339), g.rink, g.rsvp)
}
