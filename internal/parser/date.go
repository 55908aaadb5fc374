package parser

import (
	"strings"
	"time"
)

// Candidate layouts in priority order. The day-first form is tried
// before the month-first one, so ambiguous tokens like "03/04/2024"
// resolve to 3 April, not March 4.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2006/01/02",
}

// ParseDate normalizes a date token to midnight UTC. It returns false
// when no candidate layout yields a valid calendar date.
func ParseDate(token string) (time.Time, bool) {
	token = strings.TrimSpace(token)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, token)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
