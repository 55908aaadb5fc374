package reconcile_test

import (
	"testing"
	"time"

	"github.com/luispabloln/control-biometrico/internal/models"
	"github.com/luispabloln/control-biometrico/internal/reconcile"
)

func mustClock(t *testing.T, s string) models.ClockTime {
	t.Helper()
	clock, ok := models.ParseClockTime(s)
	if !ok {
		t.Fatalf("bad clock %q", s)
	}
	return clock
}

func event(t *testing.T, id, date, clock string) models.AttendanceEvent {
	t.Helper()
	return models.AttendanceEvent{
		EmployeeID: id,
		Date:       date,
		Month:      date[:7],
		Clock:      mustClock(t, clock),
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}

func findDetail(report reconcile.Report, id, date string) (models.DailyRecord, bool) {
	for _, rec := range report.Detail {
		if rec.EmployeeID == id && rec.Date == date {
			return rec, true
		}
	}
	return models.DailyRecord{}, false
}

var roster = []models.Employee{
	{ID: "1", Name: "Ana Torres", Area: "IT"},
	{ID: "2", Name: "Luis Mendoza", Area: "OPERACIONES"},
}

func TestBuildReport_EarliestPunchWins(t *testing.T) {
	events := []models.AttendanceEvent{
		event(t, "1", "2024-03-04", "09:15:00"),
		event(t, "1", "2024-03-04", "08:05:00"),
	}

	report := reconcile.BuildReport(roster, events, models.HolidaySet{},
		reconcile.Filters{Month: "2024-03", Area: reconcile.AreaAll},
		reconcile.DefaultCutoff, mustDate(t, "2024-03-04"))

	rec, ok := findDetail(report, "1", "2024-03-04")
	if !ok {
		t.Fatalf("no detail row for the punch day")
	}
	if rec.Clock != "08:05:00" {
		t.Fatalf("canonical clock got=%s want=%s", rec.Clock, "08:05:00")
	}
	if rec.Status != models.StatusLate || rec.LateMinutes != 5 {
		t.Fatalf("classification got=%s/%d want=LATE/5", rec.Status, rec.LateMinutes)
	}
}

func TestBuildReport_CutoffBoundary(t *testing.T) {
	events := []models.AttendanceEvent{
		event(t, "1", "2024-03-04", "07:59:59"),
		event(t, "2", "2024-03-05", "08:05:00"),
	}

	report := reconcile.BuildReport(roster, events, models.HolidaySet{},
		reconcile.Filters{Month: "2024-03", Area: reconcile.AreaAll},
		reconcile.DefaultCutoff, mustDate(t, "2024-03-01"))

	onTime, _ := findDetail(report, "1", "2024-03-04")
	if onTime.Status != models.StatusOnTime || onTime.LateMinutes != 0 {
		t.Fatalf("07:59:59 got=%s/%d want=ON_TIME/0", onTime.Status, onTime.LateMinutes)
	}
	late, _ := findDetail(report, "2", "2024-03-05")
	if late.Status != models.StatusLate || late.LateMinutes != 5 {
		t.Fatalf("08:05:00 got=%s/%d want=LATE/5", late.Status, late.LateMinutes)
	}
}

func TestBuildReport_AbsencesAndHolidays(t *testing.T) {
	holidays := models.HolidaySet{}
	holidays.Add("2024-03-05") // Tuesday

	report := reconcile.BuildReport(roster, nil, holidays,
		reconcile.Filters{Month: "2024-03", Area: reconcile.AreaAll},
		reconcile.DefaultCutoff, mustDate(t, "2024-03-06"))

	// March 4 and 6 are past workdays with no punch; March 5 is a
	// holiday and produces no record at all.
	if _, ok := findDetail(report, "1", "2024-03-05"); ok {
		t.Fatalf("holiday produced a record")
	}
	absent, ok := findDetail(report, "1", "2024-03-04")
	if !ok {
		t.Fatalf("missing absence record")
	}
	if absent.Status != models.StatusAbsent || absent.Clock != reconcile.AbsentMarker || absent.LateMinutes != 0 {
		t.Fatalf("absence row unexpected: %+v", absent)
	}
	// Workdays 2024-03-01, 04, 06 are past; 05 is holiday.
	if report.Summary[0].AbsenceCount != 3 {
		t.Fatalf("absences got=%d want=%d", report.Summary[0].AbsenceCount, 3)
	}
}

func TestBuildReport_FutureWorkdaysNotAbsent(t *testing.T) {
	report := reconcile.BuildReport(roster, nil, models.HolidaySet{},
		reconcile.Filters{Month: "2024-03", Area: reconcile.AreaAll},
		reconcile.DefaultCutoff, mustDate(t, "2024-03-01"))

	// Only March 1 itself counts.
	if report.Summary[0].AbsenceCount != 1 {
		t.Fatalf("absences got=%d want=%d", report.Summary[0].AbsenceCount, 1)
	}
	if _, ok := findDetail(report, "1", "2024-03-04"); ok {
		t.Fatalf("future workday classified absent")
	}
}

func TestBuildReport_HolidayPunchKeepsClassification(t *testing.T) {
	holidays := models.HolidaySet{}
	holidays.Add("2024-03-04")

	events := []models.AttendanceEvent{
		event(t, "1", "2024-03-04", "08:10:00"),
	}
	report := reconcile.BuildReport(roster, events, holidays,
		reconcile.Filters{Month: "2024-03", Area: reconcile.AreaAll},
		reconcile.DefaultCutoff, mustDate(t, "2024-03-04"))

	rec, ok := findDetail(report, "1", "2024-03-04")
	if !ok {
		t.Fatalf("punch on holiday dropped")
	}
	if rec.Status != models.StatusLate || rec.LateMinutes != 10 {
		t.Fatalf("holiday altered classification: %+v", rec)
	}
	if !rec.Holiday {
		t.Fatalf("holiday flag not set")
	}
}

func TestBuildReport_LateOnlyAsymmetry(t *testing.T) {
	events := []models.AttendanceEvent{
		event(t, "1", "2024-03-04", "08:10:00"), // late
		event(t, "2", "2024-03-04", "07:50:00"), // on time
	}
	report := reconcile.BuildReport(roster, events, models.HolidaySet{},
		reconcile.Filters{Month: "2024-03", Area: reconcile.AreaAll, LateOnly: true},
		reconcile.DefaultCutoff, mustDate(t, "2024-03-04"))

	if len(report.Summary) != 1 || report.Summary[0].EmployeeID != "1" {
		t.Fatalf("lateOnly summary got=%+v", report.Summary)
	}
	// Employee 2's detail rows survive the summary-level filter.
	if _, ok := findDetail(report, "2", "2024-03-04"); !ok {
		t.Fatalf("lateOnly removed detail rows")
	}
}

func TestBuildReport_AreaAndQueryFilters(t *testing.T) {
	events := []models.AttendanceEvent{
		event(t, "1", "2024-03-04", "08:10:00"),
		event(t, "2", "2024-03-04", "08:10:00"),
	}

	byArea := reconcile.BuildReport(roster, events, models.HolidaySet{},
		reconcile.Filters{Month: "2024-03", Area: "IT"},
		reconcile.DefaultCutoff, mustDate(t, "2024-03-04"))
	if len(byArea.Summary) != 1 || byArea.Summary[0].EmployeeID != "1" {
		t.Fatalf("area filter summary got=%+v", byArea.Summary)
	}
	if _, ok := findDetail(byArea, "2", "2024-03-04"); ok {
		t.Fatalf("area filter leaked detail rows")
	}

	byName := reconcile.BuildReport(roster, events, models.HolidaySet{},
		reconcile.Filters{Month: "2024-03", Area: reconcile.AreaAll, Query: "mendo"},
		reconcile.DefaultCutoff, mustDate(t, "2024-03-04"))
	if len(byName.Summary) != 1 || byName.Summary[0].EmployeeID != "2" {
		t.Fatalf("name filter summary got=%+v", byName.Summary)
	}
}

func TestBuildReport_DetailSortedDescending(t *testing.T) {
	events := []models.AttendanceEvent{
		event(t, "1", "2024-03-04", "08:10:00"),
		event(t, "1", "2024-03-06", "07:45:00"),
		event(t, "2", "2024-03-05", "08:20:00"),
	}
	report := reconcile.BuildReport(roster, events, models.HolidaySet{},
		reconcile.Filters{Month: "2024-03", Area: reconcile.AreaAll},
		reconcile.DefaultCutoff, mustDate(t, "2024-03-06"))

	for i := 1; i < len(report.Detail); i++ {
		if report.Detail[i-1].Date < report.Detail[i].Date {
			t.Fatalf("detail not descending at %d: %s < %s",
				i, report.Detail[i-1].Date, report.Detail[i].Date)
		}
	}
}

func TestBuildReport_OtherMonthsIgnored(t *testing.T) {
	events := []models.AttendanceEvent{
		event(t, "1", "2024-02-15", "08:30:00"),
		event(t, "1", "2024-03-04", "08:10:00"),
	}
	report := reconcile.BuildReport(roster, events, models.HolidaySet{},
		reconcile.Filters{Month: "2024-03", Area: reconcile.AreaAll},
		reconcile.DefaultCutoff, mustDate(t, "2024-03-04"))

	if _, ok := findDetail(report, "1", "2024-02-15"); ok {
		t.Fatalf("event outside the selected month leaked in")
	}
	if report.Summary[0].LateCount != 1 {
		t.Fatalf("lateCount got=%d want=%d", report.Summary[0].LateCount, 1)
	}
}

func TestBuildReport_SingleLogScenario(t *testing.T) {
	// One late punch in March 2024, viewed from month end: 21 workdays,
	// one attended.
	employees := []models.Employee{{ID: "1", Name: "Ana", Area: "IT"}}
	events := []models.AttendanceEvent{
		event(t, "1", "2024-03-04", "08:10:00"),
	}

	report := reconcile.BuildReport(employees, events, models.HolidaySet{},
		reconcile.Filters{Month: "2024-03", Area: reconcile.AreaAll},
		reconcile.DefaultCutoff, mustDate(t, "2024-03-31"))

	if len(report.Summary) != 1 {
		t.Fatalf("summary rows got=%d want=1", len(report.Summary))
	}
	row := report.Summary[0]
	if row.LateCount != 1 {
		t.Fatalf("lateCount got=%d want=%d", row.LateCount, 1)
	}
	if row.LateMinutesTotal != 10 {
		t.Fatalf("lateMinutesTotal got=%d want=%d", row.LateMinutesTotal, 10)
	}
	if row.AbsenceCount != 20 {
		t.Fatalf("absenceCount got=%d want=%d", row.AbsenceCount, 20)
	}
	if report.Totals.LateCount != 1 || report.Totals.LateMinutesTotal != 10 || report.Totals.AbsenceCount != 20 {
		t.Fatalf("totals got=%+v", report.Totals)
	}
}
