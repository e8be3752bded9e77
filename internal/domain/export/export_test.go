package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paie/internal/domain/payroll"
	"paie/internal/domain/roster"
)

func entry(last, first string, emp payroll.Employee) roster.Entry {
	return roster.Entry{
		Record: roster.Record{ID: last + "-" + first, LastName: last, FirstName: first, Employee: emp},
		Result: payroll.Compute(emp),
	}
}

func TestMoney(t *testing.T) {
	cases := map[float64]string{
		0:          "0.00",
		38500:      "38500.00",
		1234.5:     "1234.50",
		0.004:      "0.00",
		106187.499: "106187.50",
	}
	for in, want := range cases {
		if got := Money(in); got != want {
			t.Fatalf("Money(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFilename(t *testing.T) {
	day := time.Date(2026, 10, 4, 23, 59, 0, 0, time.UTC)
	if got := Filename(day); got != "paie_2026-10-04.csv" {
		t.Fatalf("unexpected filename %q", got)
	}
}

func TestWriteRegister(t *testing.T) {
	entries := []roster.Entry{
		entry("Saadi", "Karim", payroll.Employee{GrossSalary: 50000, MaritalStatus: payroll.MaritalSingle}),
		entry("Saadi", "Nadia", payroll.Employee{GrossSalary: 50000, MaritalStatus: payroll.MaritalMarried, DependentChildren: 2}),
	}
	var buf bytes.Buffer
	require.NoError(t, WriteRegister(&buf, entries))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "\ufeff"), "register must start with a byte order mark")

	lines := strings.Split(strings.TrimRight(strings.TrimPrefix(out, "\ufeff"), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Nom,Prénom,Salaire Brut,Cotisations,IRG,Salaire Net,Charges Patronales,Coût Total", lines[0])
	assert.Equal(t, "Saadi,Karim,50000.00,9375.00,2125.00,38500.00,11875.00,61875.00", lines[1])
	assert.Equal(t, "Saadi,Nadia,50000.00,9375.00,1725.00,38900.00,11875.00,61875.00", lines[2])
}

func TestWriteRegisterQuotesNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRegister(&buf, []roster.Entry{
		entry("Ait Ali, fils", "Yacine", payroll.Employee{GrossSalary: 20000}),
	}))
	assert.Contains(t, buf.String(), `"Ait Ali, fils",Yacine,20000.00`)
}

func TestWriteRegisterEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRegister(&buf, nil)
	if !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("expected ErrNothingToExport, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("nothing should be written for an empty roster, got %q", buf.String())
	}
}

func TestReadRoster(t *testing.T) {
	src := "\ufefflast_name,first_name,gross_salary,marital_status,dependent_children,category\n" +
		"Benali,Amine,50000,married,2,executive\n" +
		"Haddad,Lina,32000.50,single,0,employee\n"

	inputs, err := ReadRoster(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, inputs, 2)

	assert.Equal(t, "Benali", inputs[0].LastName)
	assert.Equal(t, payroll.MaritalMarried, inputs[0].MaritalStatus)
	assert.Equal(t, 2, inputs[0].DependentChildren)
	assert.Equal(t, payroll.CategoryExecutive, inputs[0].Category)
	assert.InDelta(t, 32000.50, inputs[1].GrossSalary, 1e-9)
}

func TestReadRosterBadNumber(t *testing.T) {
	src := "last_name,first_name,gross_salary,marital_status,dependent_children,category\n" +
		"Benali,Amine,lots,single,0,employee\n"
	_, err := ReadRoster(strings.NewReader(src))
	assert.Error(t, err)
}

func TestWritePayslip(t *testing.T) {
	e := entry("Benali", "Amine", payroll.Employee{GrossSalary: 500000, MaritalStatus: payroll.MaritalMarried, DependentChildren: 1})
	var buf bytes.Buffer
	err := WritePayslip(&buf, e, payroll.DefaultSchedule(), time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 1000)
}
