package schedule

import "strings"

// EventKind classifies a row from the officials site.
type EventKind int

const (
	KindRef EventKind = iota
	KindLine
	KindPlay
	KindAvailability
	KindEvent
)

// kindTokens maps each EventKind to the token the officials site uses for it.
var kindTokens = map[EventKind]string{
	KindRef:          "ref",
	KindLine:         "line",
	KindPlay:         "play",
	KindAvailability: "avail",
	KindEvent:        "event",
}

// ParseKind matches a raw type token against the closed EventKind set,
// case-insensitively. Unmatched tokens fail with *UnknownKindError.
func ParseKind(token string) (EventKind, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	for kind, name := range kindTokens {
		if name == t {
			return kind, nil
		}
	}
	return 0, &UnknownKindError{Token: token}
}

func (k EventKind) String() string {
	return kindTokens[k]
}

// Title returns the kind token with its first letter upper-cased, as used in
// calendar event summaries.
func (k EventKind) Title() string {
	s := kindTokens[k]
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ScheduleWorthy reports whether the kind is one the system creates calendar
// entries for. Only refereeing and linesman assignments qualify.
func (k EventKind) ScheduleWorthy() bool {
	return k == KindRef || k == KindLine
}

// RsvpStatus is a reply status scraped from the invite site.
type RsvpStatus int

const (
	RsvpYes RsvpStatus = iota
	RsvpMaybe
	RsvpNo
	// RsvpUnknown is the site's "reply here" placeholder, meaning no reply yet.
	RsvpUnknown
)

var rsvpTokens = map[RsvpStatus]string{
	RsvpYes:     "yes",
	RsvpMaybe:   "maybe",
	RsvpNo:      "no",
	RsvpUnknown: "reply here",
}

// ParseRsvp matches a raw reply token against the closed RsvpStatus set,
// case-insensitively. Unmatched tokens fail with *UnknownRsvpError.
func ParseRsvp(token string) (RsvpStatus, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	for status, name := range rsvpTokens {
		if name == t {
			return status, nil
		}
	}
	return 0, &UnknownRsvpError{Token: token}
}

func (s RsvpStatus) String() string {
	return rsvpTokens[s]
}
