// Package reconcile decides, per schedule entry, how the calendar must
// change.
//
// For each entry the reconciler queries the calendar for events it owns in
// the entry's start slot and issues the minimal mutation: create the event,
// delete a retracted one, or nothing. Entries are reconciled independently
// and every decision branch is idempotent, so re-running against an
// unchanged calendar issues no further mutations.
package reconcile
