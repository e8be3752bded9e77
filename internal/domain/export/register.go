package export

import (
	"errors"
	"io"
	"strconv"
	"time"

	"github.com/gocarina/gocsv"

	"paie/internal/domain/roster"
)

var ErrNothingToExport = errors.New("roster is empty, nothing to export")

const bom = "\ufeff"

// Money renders an amount with exactly two decimals. Rounding happens here
// and nowhere upstream.
func Money(v float64) string {
	if v == 0 {
		v = 0 // drops the sign of -0
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Filename names a register exported on day.
func Filename(day time.Time) string {
	return "paie_" + day.Format("2006-01-02") + ".csv"
}

type registerRow struct {
	LastName              string `csv:"Nom"`
	FirstName             string `csv:"Prénom"`
	Gross                 string `csv:"Salaire Brut"`
	EmployeeContributions string `csv:"Cotisations"`
	IncomeTax             string `csv:"IRG"`
	NetPay                string `csv:"Salaire Net"`
	EmployerContributions string `csv:"Charges Patronales"`
	TotalEmployerCost     string `csv:"Coût Total"`
}

// WriteRegister writes the roster register as UTF-8 CSV with a byte order
// mark, a header row, then one row per entry in the order given.
func WriteRegister(w io.Writer, entries []roster.Entry) error {
	if len(entries) == 0 {
		return ErrNothingToExport
	}
	rows := make([]registerRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, registerRow{
			LastName:              e.LastName,
			FirstName:             e.FirstName,
			Gross:                 Money(e.Result.GrossSalary),
			EmployeeContributions: Money(e.Result.EmployeeContributions.Total),
			IncomeTax:             Money(e.Result.IncomeTax),
			NetPay:                Money(e.Result.NetPay),
			EmployerContributions: Money(e.Result.EmployerContributions.Total),
			TotalEmployerCost:     Money(e.Result.TotalEmployerCost),
		})
	}
	if _, err := io.WriteString(w, bom); err != nil {
		return err
	}
	return gocsv.Marshal(rows, w)
}
