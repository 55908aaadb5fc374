package models

import "time"

const dateLayout = "2006-01-02"

// AreaDefault is assigned to roster rows that resolve no area column.
const AreaDefault = "GENERAL"

type Status string

const (
	StatusOnTime Status = "ON_TIME"
	StatusLate   Status = "LATE"
	StatusAbsent Status = "ABSENT"
)

// Employee is one normalized roster record. The ID is an opaque token
// taken verbatim from the source text, not necessarily numeric.
type Employee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Area string `json:"area"`
}

// AttendanceEvent is a single recognized clock-in punch. Several events
// may share the same (EmployeeID, Date); deduplication happens later.
type AttendanceEvent struct {
	EmployeeID string
	Date       string // yyyy-mm-dd
	Month      string // yyyy-mm
	Clock      ClockTime
}

// DailyRecord is one detail row of the report.
type DailyRecord struct {
	Date         string `json:"date"`
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Area         string `json:"area"`
	Clock        string `json:"clock"` // "-" when absent
	LateMinutes  int    `json:"lateMinutes"`
	Status       Status `json:"status"`
	Holiday      bool   `json:"holiday"`
}

// EmployeeSummary is one summary row, folded from the employee's daily records.
type EmployeeSummary struct {
	EmployeeID       string `json:"employeeId"`
	Name             string `json:"name"`
	Area             string `json:"area"`
	LateCount        int    `json:"lateCount"`
	LateMinutesTotal int    `json:"lateMinutesTotal"`
	AbsenceCount     int    `json:"absenceCount"`
}

// HolidaySet holds declared holidays keyed by canonical date string.
type HolidaySet map[string]struct{}

func (h HolidaySet) Contains(date string) bool {
	_, ok := h[date]
	return ok
}

func (h HolidaySet) Add(date string) {
	h[date] = struct{}{}
}

// DateKey formats a date in the canonical yyyy-mm-dd form used as map
// key and wire value throughout the report.
func DateKey(t time.Time) string {
	return t.Format(dateLayout)
}

// MonthKey formats a date in the canonical yyyy-mm form.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}
