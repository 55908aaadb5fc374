package parser

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/luispabloln/control-biometrico/internal/models"
)

// ParseHolidays reads delimited holiday text whose first column is a
// date token in any accepted format. Rows with an unparseable date are
// dropped.
func ParseHolidays(text string) models.HolidaySet {
	r := csv.NewReader(strings.NewReader(text))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	set := models.HolidaySet{}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if len(rec) == 0 || strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if date, ok := ParseDate(rec[0]); ok {
			set.Add(models.DateKey(date))
		}
	}
	return set
}
