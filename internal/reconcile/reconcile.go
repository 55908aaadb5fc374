package reconcile

import (
	"sort"
	"strings"
	"time"

	"github.com/luispabloln/control-biometrico/internal/calendar"
	"github.com/luispabloln/control-biometrico/internal/models"
)

// AreaAll matches every area when used as the area filter.
const AreaAll = "ALL"

// AbsentMarker is the clock column value of an absence row.
const AbsentMarker = "-"

// DefaultCutoff is the 08:00 daily cutoff after which a punch is late.
const DefaultCutoff = models.ClockTime(8 * 3600)

type Filters struct {
	Month    string `json:"month"`
	Area     string `json:"area"`
	Query    string `json:"query"`
	LateOnly bool   `json:"lateOnly"`
}

// Totals are the aggregate dashboard figures folded over the summary rows.
type Totals struct {
	LateCount        int `json:"lateCount"`
	LateMinutesTotal int `json:"lateMinutesTotal"`
	AbsenceCount     int `json:"absenceCount"`
}

type Report struct {
	Filters Filters                  `json:"filters"`
	Totals  Totals                   `json:"totals"`
	Summary []models.EmployeeSummary `json:"summary"`
	Detail  []models.DailyRecord     `json:"detail"`
}

// canonicalLog deduplicates the month's events: per (employee, date) the
// earliest punch wins.
func canonicalLog(events []models.AttendanceEvent, month string) map[string]map[string]models.ClockTime {
	byEmployee := map[string]map[string]models.ClockTime{}
	for _, ev := range events {
		if ev.Month != month {
			continue
		}
		dates, ok := byEmployee[ev.EmployeeID]
		if !ok {
			dates = map[string]models.ClockTime{}
			byEmployee[ev.EmployeeID] = dates
		}
		if existing, ok := dates[ev.Date]; !ok || ev.Clock < existing {
			dates[ev.Date] = ev.Clock
		}
	}
	return byEmployee
}

// BuildReport runs one reconciliation pass: dedupe the selected month's
// events into the canonical log, classify every attended day against
// the cutoff, mark unattended past workdays absent, and fold summaries
// per employee. today is injected so absence classification stays
// deterministic under test.
func BuildReport(
	employees []models.Employee,
	events []models.AttendanceEvent,
	holidays models.HolidaySet,
	filters Filters,
	cutoff models.ClockTime,
	today time.Time,
) Report {
	canonical := canonicalLog(events, filters.Month)
	workdays := calendar.Workdays(filters.Month, holidays)
	todayKey := models.DateKey(today)
	query := strings.ToLower(strings.TrimSpace(filters.Query))

	var summary []models.EmployeeSummary
	var detail []models.DailyRecord

	for _, emp := range employees {
		if filters.Area != "" && filters.Area != AreaAll && emp.Area != filters.Area {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(emp.Name), query) {
			continue
		}

		row := models.EmployeeSummary{EmployeeID: emp.ID, Name: emp.Name, Area: emp.Area}
		attended := canonical[emp.ID]

		dates := make([]string, 0, len(attended))
		for date := range attended {
			dates = append(dates, date)
		}
		sort.Strings(dates)

		for _, date := range dates {
			clock := attended[date]
			late := clock.MinutesAfter(cutoff)
			status := models.StatusOnTime
			if late > 0 {
				status = models.StatusLate
				row.LateCount++
				row.LateMinutesTotal += late
			} else {
				late = 0
			}
			detail = append(detail, models.DailyRecord{
				Date:         date,
				EmployeeID:   emp.ID,
				EmployeeName: emp.Name,
				Area:         emp.Area,
				Clock:        clock.String(),
				LateMinutes:  late,
				Status:       status,
				Holiday:      holidays.Contains(date),
			})
		}

		for _, day := range workdays {
			if day > todayKey {
				continue
			}
			if _, ok := attended[day]; ok {
				continue
			}
			row.AbsenceCount++
			detail = append(detail, models.DailyRecord{
				Date:         day,
				EmployeeID:   emp.ID,
				EmployeeName: emp.Name,
				Area:         emp.Area,
				Clock:        AbsentMarker,
				Status:       models.StatusAbsent,
			})
		}

		// The late-only filter acts on summary rows only; the detail
		// rows emitted above stay in the output.
		if filters.LateOnly && row.LateCount == 0 {
			continue
		}
		summary = append(summary, row)
	}

	sort.SliceStable(detail, func(i, j int) bool {
		return detail[i].Date > detail[j].Date
	})

	var totals Totals
	for _, row := range summary {
		totals.LateCount += row.LateCount
		totals.LateMinutesTotal += row.LateMinutesTotal
		totals.AbsenceCount += row.AbsenceCount
	}

	return Report{Filters: filters, Totals: totals, Summary: summary, Detail: detail}
}
