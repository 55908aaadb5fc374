package parser

import (
	"encoding/csv"
	"io"
	"sort"
	"strings"

	"github.com/luispabloln/control-biometrico/internal/models"
)

// ParseRoster normalizes delimited roster text with arbitrary column
// names into employee records. Header resolution is a case-insensitive
// substring match: "nombre"/"name" map to the name column, "id"/"codigo"
// to the id column, "area"/"depto" to the area column. When several
// headers match the same field the last one wins. Rows without a
// resolved id or name are dropped; duplicate ids overwrite earlier rows
// in place. Returns the employees plus the sorted distinct area list.
func ParseRoster(text string) ([]models.Employee, []string) {
	r := csv.NewReader(strings.NewReader(text))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	headers, err := r.Read()
	if err != nil {
		return nil, nil
	}

	idCol, nameCol, areaCol := -1, -1, -1
	for i, h := range headers {
		clean := strings.ToLower(strings.TrimSpace(h))
		if strings.Contains(clean, "nombre") || strings.Contains(clean, "name") {
			nameCol = i
		}
		if strings.Contains(clean, "id") || strings.Contains(clean, "codigo") {
			idCol = i
		}
		if strings.Contains(clean, "area") || strings.Contains(clean, "depto") {
			areaCol = i
		}
	}

	var employees []models.Employee
	byID := map[string]int{}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		emp := models.Employee{
			ID:   field(rec, idCol),
			Name: field(rec, nameCol),
			Area: field(rec, areaCol),
		}
		if emp.ID == "" || emp.Name == "" {
			continue
		}
		if emp.Area == "" {
			emp.Area = models.AreaDefault
		}
		if pos, ok := byID[emp.ID]; ok {
			employees[pos] = emp
			continue
		}
		byID[emp.ID] = len(employees)
		employees = append(employees, emp)
	}

	areaSet := map[string]struct{}{}
	for _, emp := range employees {
		areaSet[emp.Area] = struct{}{}
	}
	areas := make([]string, 0, len(areaSet))
	for a := range areaSet {
		areas = append(areas, a)
	}
	sort.Strings(areas)
	return employees, areas
}

func field(rec []string, col int) string {
	if col < 0 || col >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[col])
}
