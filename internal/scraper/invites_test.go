package scraper

import (
	"io"
	"testing"
	"time"

	"github.com/pfrederiksen/hockey-sync/internal/logger"
	"github.com/pfrederiksen/hockey-sync/internal/schedule"
)

func newTestInvites(t *testing.T) *Invites {
	t.Helper()
	i, err := NewInvites("http://example.com", "user", "pass", testLoc(t),
		logger.New(logger.LevelError, io.Discard))
	if err != nil {
		t.Fatalf("NewInvites error = %v", err)
	}
	return i
}

func TestInvitesParseGames(t *testing.T) {
	loc := testLoc(t)
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, loc)

	entries := newTestInvites(t).parseGames(loadFixture(t, "games.html"), now)

	// Five listed games: one with an unknown reply token and one with a
	// malformed datetime are dropped, the rest survive.
	if len(entries) != 3 {
		t.Fatalf("parsed %d entries, want 3", len(entries))
	}

	first, ok := entries[0].(*schedule.Game)
	if !ok {
		t.Fatalf("entry 0 is %T, want *schedule.Game", entries[0])
	}
	if got := first.Summary(); got != "Sharks @ Jets" {
		t.Errorf("Summary() = %q, want %q", got, "Sharks @ Jets")
	}
	if got := first.Location(); got != "Dublin Iceland" {
		t.Errorf("Location() = %q, want %q", got, "Dublin Iceland")
	}
	if first.Rsvp() != schedule.RsvpYes {
		t.Errorf("Rsvp() = %v, want %v", first.Rsvp(), schedule.RsvpYes)
	}
	want := time.Date(2026, time.March, 15, 19, 30, 0, 0, loc)
	if !first.Start().Equal(want) {
		t.Errorf("Start() = %v, want %v", first.Start(), want)
	}

	second := entries[1].(*schedule.Game)
	if second.Rsvp() != schedule.RsvpUnknown {
		t.Errorf("entry 1 Rsvp() = %v, want %v", second.Rsvp(), schedule.RsvpUnknown)
	}

	third := entries[2].(*schedule.Game)
	if third.Rsvp() != schedule.RsvpNo {
		t.Errorf("entry 2 Rsvp() = %v, want %v", third.Rsvp(), schedule.RsvpNo)
	}
	if got := third.Summary(); got != "Ice Dogs @ Jets" {
		t.Errorf("entry 2 Summary() = %q, want %q", got, "Ice Dogs @ Jets")
	}
}

func TestLoginValues(t *testing.T) {
	values := loginValues(loadFixture(t, "login.html"), "skater", "secret")

	if got := values.Get("login"); got != "skater" {
		t.Errorf("login = %q, want %q", got, "skater")
	}
	if got := values.Get("password"); got != "secret" {
		t.Errorf("password = %q, want %q", got, "secret")
	}
	// The first two form inputs are the hidden CSRF pair; both must be
	// carried into the POST.
	if got := values.Get("authenticity_token"); got != "abc123token" {
		t.Errorf("authenticity_token = %q, want %q", got, "abc123token")
	}
	if !values.Has("utf8") {
		t.Error("expected utf8 hidden field to be carried over")
	}
}

func TestSplitWhen(t *testing.T) {
	tests := []struct {
		in       string
		wantDate string
		wantTime string
		wantErr  bool
	}{
		{in: "Sat Mar 15 7:30 PM", wantDate: "Sat Mar 15", wantTime: "7:30 PM"},
		{in: "Mon Jan 08 6:00PM", wantDate: "Mon Jan 08", wantTime: "6:00PM"},
		{in: "sometime soon", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			date, clock, err := splitWhen(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("splitWhen(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("splitWhen(%q) error = %v", tt.in, err)
			}
			if date != tt.wantDate || clock != tt.wantTime {
				t.Errorf("splitWhen(%q) = %q, %q, want %q, %q",
					tt.in, date, clock, tt.wantDate, tt.wantTime)
			}
		})
	}
}
