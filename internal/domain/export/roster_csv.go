package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/gocarina/gocsv"

	"paie/internal/domain/payroll"
	"paie/internal/domain/roster"
)

type inputRow struct {
	LastName          string  `csv:"last_name"`
	FirstName         string  `csv:"first_name"`
	GrossSalary       float64 `csv:"gross_salary"`
	MaritalStatus     string  `csv:"marital_status"`
	DependentChildren int     `csv:"dependent_children"`
	Category          string  `csv:"category"`
}

// ReadRoster parses a roster CSV with the columns last_name, first_name,
// gross_salary, marital_status, dependent_children and category. A leading
// byte order mark is tolerated. Rows are returned unvalidated.
func ReadRoster(r io.Reader) ([]roster.Input, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := strings.TrimPrefix(string(raw), bom)

	var rows []inputRow
	if err := gocsv.UnmarshalString(text, &rows); err != nil {
		return nil, fmt.Errorf("parse roster csv: %w", err)
	}
	out := make([]roster.Input, 0, len(rows))
	for _, row := range rows {
		out = append(out, roster.Input{
			LastName:  row.LastName,
			FirstName: row.FirstName,
			Employee: payroll.Employee{
				GrossSalary:       row.GrossSalary,
				MaritalStatus:     payroll.MaritalStatus(row.MaritalStatus),
				DependentChildren: row.DependentChildren,
				Category:          payroll.Category(row.Category),
			},
		})
	}
	return out, nil
}
