package payroll

// Engine computes payroll results for a fixed schedule. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	schedule Schedule
}

func NewEngine(schedule Schedule) *Engine {
	return &Engine{schedule: schedule}
}

func (e *Engine) Schedule() Schedule {
	return e.schedule
}

// Compute assumes emp satisfies Validate; it does not check its input.
func (e *Engine) Compute(emp Employee) Result {
	gross := emp.GrossSalary

	employee := contributions(gross, e.schedule.EmployeeRates)
	taxable := gross - employee.Total

	base := taxable
	if emp.MaritalStatus == MaritalMarried {
		base -= e.schedule.SpouseAbatement
	}
	base -= float64(emp.DependentChildren) * e.schedule.ChildAbatement
	tax := e.schedule.Tax(base)

	employer := contributions(gross, e.schedule.EmployerRates)

	return Result{
		GrossSalary:           gross,
		EmployeeContributions: employee,
		TaxableIncome:         taxable,
		TaxBase:               base,
		IncomeTax:             tax,
		NetPay:                taxable - tax,
		EmployerContributions: employer,
		TotalEmployerCost:     gross + employer.Total,
	}
}

func contributions(gross float64, rates Rates) Contributions {
	c := Contributions{
		SocialSecurity: gross * rates[ContributionSocialSecurity],
		Pension:        gross * rates[ContributionPension],
		Unemployment:   gross * rates[ContributionUnemployment],
	}
	c.Total = c.SocialSecurity + c.Pension + c.Unemployment
	return c
}

var defaultEngine = NewEngine(DefaultSchedule())

// Compute runs the default schedule.
func Compute(emp Employee) Result {
	return defaultEngine.Compute(emp)
}
