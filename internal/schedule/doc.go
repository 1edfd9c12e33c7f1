// Package schedule provides the normalized in-memory model of scraped games.
//
// The schedule package turns the raw text rows produced by the site scrapers
// into typed entries: it classifies type and RSVP tokens against closed
// enumerations, resolves partial weekday/month/day/time text into absolute
// timezone-aware instants, and exposes the resulting Assignment and Game
// records behind a common Entry interface consumed by the reconciler.
package schedule
