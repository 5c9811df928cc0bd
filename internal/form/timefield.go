// Package form holds the view-local state of the employee editor: the field
// set under edit, the weekly-schedule form, and the time-of-day input
// formatter. Nothing in this package talks to the network.
package form

import (
	"strings"

	"github.com/cetler74/linkuupapp-sub002/internal/domain/entity"
)

// TimeField turns raw keystrokes into a valid HH:MM string without losing
// in-progress input. The live value tracks whatever the user is typing (up
// to five characters); the committed value only ever changes when the input
// is a fully valid time of day.
type TimeField struct {
	live      string
	committed string
}

// NewTimeField starts a field from a previously committed value. An invalid
// initial value is shown live but not treated as committed.
func NewTimeField(initial string) TimeField {
	field := TimeField{live: initial}
	if entity.ValidTimeOfDay(initial) {
		field.committed = initial
	}

	return field
}

// Type feeds the current raw text of the input into the field. Everything
// except digits and the colon is stripped; a colon is inserted automatically
// once the hour part is complete. Only a valid five-character result is
// committed, but any shorter prefix stays visible so mid-typing states are
// never blocked.
func (f *TimeField) Type(raw string) {
	cleaned := cleanTimeInput(raw)

	if len(cleaned) == 2 && !strings.Contains(cleaned, ":") {
		cleaned += ":"
	}
	if len(cleaned) == 4 && !strings.Contains(cleaned, ":") {
		cleaned = cleaned[:2] + ":" + cleaned[2:]
	}
	if len(cleaned) > 5 {
		cleaned = cleaned[:5]
	}

	f.live = cleaned

	if len(cleaned) == 5 && entity.ValidTimeOfDay(cleaned) {
		f.committed = cleaned
	}
}

// Live returns the in-progress display value.
func (f *TimeField) Live() string {
	return f.live
}

// Committed returns the last fully valid value, or "" when none was entered.
func (f *TimeField) Committed() string {
	return f.committed
}

// Valid reports whether the live value is a committed, fully valid time.
func (f *TimeField) Valid() bool {
	return f.live != "" && f.live == f.committed
}

// Reset replaces both the live and committed value. The value must already
// be valid or empty; it is not re-formatted.
func (f *TimeField) Reset(value string) {
	f.live = value
	f.committed = ""
	if entity.ValidTimeOfDay(value) {
		f.committed = value
	}
}

func cleanTimeInput(raw string) string {
	var cleaned strings.Builder
	cleaned.Grow(len(raw))
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == ':' {
			cleaned.WriteRune(r)
		}
	}

	return cleaned.String()
}
