package schedule

import "fmt"

// UnknownKindError reports an officials-site type token that matches no
// EventKind member.
type UnknownKindError struct {
	Token string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("no such game type known %q", e.Token)
}

// UnknownRsvpError reports an invite-site reply token that matches no
// RsvpStatus member.
type UnknownRsvpError struct {
	Token string
}

func (e *UnknownRsvpError) Error() string {
	return fmt.Sprintf("no such reply known %q", e.Token)
}

// DateParseError reports date/time text that could not be resolved into an
// instant.
type DateParseError struct {
	Text string
	Err  error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("parsing date %q: %v", e.Text, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}
