// Package calendar provides the calendar capability the reconciler runs
// against.
//
// The calendar package defines the minimal Event model and the Service
// query/mutate interface, plus two implementations: a Google Calendar API
// adapter scoped to events carrying this system's shared extended-property
// ownership tags, and a dry-run wrapper that answers queries but suppresses
// mutations.
package calendar
