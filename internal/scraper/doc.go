// Package scraper fetches and parses game schedules from the two source
// sites.
//
// Both scrapers log in with a form POST over a cookie-jar session, parse the
// returned HTML with goquery, and produce normalized schedule entries. Rows
// that fail classification or date resolution are dropped with a diagnostic
// log line; they never abort a fetch.
package scraper
