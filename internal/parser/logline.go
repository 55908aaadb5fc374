package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/luispabloln/control-biometrico/internal/models"
)

var (
	dateRe = regexp.MustCompile(`\d{4}[-/]\d{2}[-/]\d{2}|\d{2}[-/]\d{2}[-/]\d{4}`)
	timeRe = regexp.MustCompile(`\d{1,2}:\d{2}:\d{2}`)
	idRe   = regexp.MustCompile(`\b\d{1,10}\b`)
)

// ExtractEvent recovers an (id, date, time) triple from one raw log
// line. The rules run in a fixed order: find a date-shaped substring,
// find a time-shaped substring, strip both from the line, then take the
// first run of 1-10 digits in the remainder as the employee id. A line
// missing any piece, or whose date token does not parse, yields false
// with no error; noisy exports are expected and dropped silently.
func ExtractEvent(line string) (models.AttendanceEvent, bool) {
	dateStr := dateRe.FindString(line)
	if dateStr == "" {
		return models.AttendanceEvent{}, false
	}
	timeStr := timeRe.FindString(line)
	if timeStr == "" {
		return models.AttendanceEvent{}, false
	}

	remainder := strings.Replace(line, dateStr, "", 1)
	remainder = strings.Replace(remainder, timeStr, "", 1)
	id := idRe.FindString(remainder)
	if id == "" {
		return models.AttendanceEvent{}, false
	}

	date, ok := ParseDate(dateStr)
	if !ok {
		return models.AttendanceEvent{}, false
	}
	clock, ok := models.ParseClockTime(timeStr)
	if !ok {
		return models.AttendanceEvent{}, false
	}

	return models.AttendanceEvent{
		EmployeeID: id,
		Date:       models.DateKey(date),
		Month:      models.MonthKey(date),
		Clock:      clock,
	}, true
}

// ExtractEvents runs the extractor over every line of the raw log text.
// It also collects the distinct year-months seen, newest first, so the
// caller can default its report period to the most recent one.
func ExtractEvents(text string) ([]models.AttendanceEvent, []string) {
	var events []models.AttendanceEvent
	monthSet := map[string]struct{}{}

	for _, line := range strings.Split(text, "\n") {
		ev, ok := ExtractEvent(line)
		if !ok {
			continue
		}
		events = append(events, ev)
		monthSet[ev.Month] = struct{}{}
	}

	months := make([]string, 0, len(monthSet))
	for m := range monthSet {
		months = append(months, m)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return events, months
}
