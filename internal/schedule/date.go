package schedule

import (
	"strings"
	"time"
)

// DefaultTimezone is the named zone all schedule entries are resolved in.
const DefaultTimezone = "America/Los_Angeles"

// startLayouts covers both sites: the officials site spells the meridiem
// without a space ("6:15PM"), the invite site with one ("6:15 PM").
var startLayouts = []string{
	"Mon Jan 2 3:04PM",
	"Mon Jan 2 3:04 PM",
}

// ResolveStart turns weekday/month/day text plus 12-hour clock text, neither
// carrying a year, into an absolute instant in loc.
//
// The current year (taken from now) is assigned first. If the resulting
// instant is not strictly after now, the year is advanced by exactly one and
// the wall clock re-localized, so the result is always the nearest future
// occurrence under a binary this-year/next-year policy. A row naming today
// with an earlier clock time therefore rolls forward a full year, and a row
// resolving to exactly now is treated as past.
//
// Malformed text fails with *DateParseError.
func ResolveStart(dateText, timeText string, now time.Time, loc *time.Location) (time.Time, error) {
	text := strings.TrimSpace(dateText) + " " + strings.ToUpper(strings.TrimSpace(timeText))

	var parsed time.Time
	var err error
	for _, layout := range startLayouts {
		parsed, err = time.Parse(layout, text)
		if err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, &DateParseError{Text: text, Err: err}
	}

	start := time.Date(now.Year(), parsed.Month(), parsed.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, loc)
	if !start.After(now) {
		// Re-localizing in the new year picks up that date's DST offset.
		start = time.Date(now.Year()+1, parsed.Month(), parsed.Day(),
			parsed.Hour(), parsed.Minute(), 0, 0, loc)
	}
	return start, nil
}
