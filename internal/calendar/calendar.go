package calendar

import (
	"time"

	"github.com/luispabloln/control-biometrico/internal/models"
)

// Workdays returns the expected working dates of a month ("2006-01"),
// ascending: every day that is neither Saturday, Sunday, nor a declared
// holiday. An unparseable month yields nil.
func Workdays(month string, holidays models.HolidaySet) []string {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil
	}

	year, m := start.Year(), start.Month()
	days := time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()

	var workdays []string
	for d := 1; d <= days; d++ {
		date := time.Date(year, m, d, 0, 0, 0, 0, time.UTC)
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			continue
		}
		key := models.DateKey(date)
		if holidays.Contains(key) {
			continue
		}
		workdays = append(workdays, key)
	}
	return workdays
}
