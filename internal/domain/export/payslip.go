package export

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"paie/internal/domain/payroll"
	"paie/internal/domain/roster"
)

var maritalLabels = map[payroll.MaritalStatus]string{
	payroll.MaritalSingle:   "Célibataire",
	payroll.MaritalMarried:  "Marié(e)",
	payroll.MaritalDivorced: "Divorcé(e)",
	payroll.MaritalWidowed:  "Veuf/Veuve",
}

type payslipLine struct {
	label  string
	rate   string
	amount float64
	bold   bool
}

// WritePayslip renders a one-page A4 bulletin de paie for entry.
func WritePayslip(w io.Writer, entry roster.Entry, schedule payroll.Schedule, issued time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Bulletin de paie", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Bulletin de paie"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Salarié : %s %s", entry.LastName, entry.FirstName)))
	pdf.Ln(6)
	status := maritalLabels[entry.MaritalStatus]
	pdf.Cell(0, 7, tr(fmt.Sprintf("Situation familiale : %s, %d enfant(s) à charge", status, entry.DependentChildren)))
	pdf.Ln(6)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Barème : %s    Édité le %s", schedule.Name, issued.Format("02/01/2006"))))
	pdf.Ln(10)

	res := entry.Result
	emp, er := schedule.EmployeeRates, schedule.EmployerRates
	lines := []payslipLine{
		{label: "Salaire brut", amount: res.GrossSalary, bold: true},
		{label: "Sécurité sociale", rate: percent(emp[payroll.ContributionSocialSecurity]), amount: res.EmployeeContributions.SocialSecurity},
		{label: "Retraite", rate: percent(emp[payroll.ContributionPension]), amount: res.EmployeeContributions.Pension},
		{label: "Assurance chômage", rate: percent(emp[payroll.ContributionUnemployment]), amount: res.EmployeeContributions.Unemployment},
		{label: "Total cotisations salariales", rate: percent(emp.TotalRate()), amount: res.EmployeeContributions.Total, bold: true},
		{label: "Salaire imposable", amount: res.TaxableIncome},
		{label: "Base IRG après abattements", amount: res.TaxBase},
		{label: "IRG", amount: res.IncomeTax},
		{label: "Salaire net", amount: res.NetPay, bold: true},
	}
	employer := []payslipLine{
		{label: "Sécurité sociale", rate: percent(er[payroll.ContributionSocialSecurity]), amount: res.EmployerContributions.SocialSecurity},
		{label: "Retraite", rate: percent(er[payroll.ContributionPension]), amount: res.EmployerContributions.Pension},
		{label: "Assurance chômage", rate: percent(er[payroll.ContributionUnemployment]), amount: res.EmployerContributions.Unemployment},
		{label: "Total charges patronales", rate: percent(er.TotalRate()), amount: res.EmployerContributions.Total, bold: true},
		{label: "Coût total employeur", amount: res.TotalEmployerCost, bold: true},
	}

	table := func(title string, rows []payslipLine) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(110, 8, tr(title), "1", 0, "L", true, 0, "")
		pdf.CellFormat(25, 8, "Taux", "1", 0, "R", true, 0, "")
		pdf.CellFormat(45, 8, tr("Montant ("+payroll.Currency+")"), "1", 1, "R", true, 0, "")
		for _, l := range rows {
			style := ""
			if l.bold {
				style = "B"
			}
			pdf.SetFont("Helvetica", style, 10)
			pdf.CellFormat(110, 7, tr(l.label), "1", 0, "L", false, 0, "")
			pdf.CellFormat(25, 7, l.rate, "1", 0, "R", false, 0, "")
			pdf.CellFormat(45, 7, Money(l.amount), "1", 1, "R", false, 0, "")
		}
	}

	table("Rubrique", lines)
	pdf.Ln(6)
	table("Charges patronales", employer)

	return pdf.Output(w)
}

func percent(rate float64) string {
	return fmt.Sprintf("%.2f %%", rate*100)
}
