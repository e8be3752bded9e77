package payroll

type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "single"
	MaritalMarried  MaritalStatus = "married"
	MaritalDivorced MaritalStatus = "divorced"
	MaritalWidowed  MaritalStatus = "widowed"
)

// Category is accepted and carried through but does not alter the computation.
type Category string

const (
	CategoryEmployee  Category = "employee"
	CategoryExecutive Category = "executive"
)

// Employee is the engine input. GrossSalary and DependentChildren must be
// non-negative; see Validate.
type Employee struct {
	GrossSalary       float64       `json:"grossSalary"`
	MaritalStatus     MaritalStatus `json:"maritalStatus"`
	DependentChildren int           `json:"dependentChildren"`
	Category          Category      `json:"category"`
}

// Contributions holds one side's withholdings, each a fixed share of gross.
type Contributions struct {
	SocialSecurity float64 `json:"socialSecurity"`
	Pension        float64 `json:"pension"`
	Unemployment   float64 `json:"unemployment"`
	Total          float64 `json:"total"`
}

// Result is the full breakdown for one employee. Amounts are kept at full
// precision; rounding happens only when they are formatted for display.
type Result struct {
	GrossSalary           float64       `json:"grossSalary"`
	EmployeeContributions Contributions `json:"employeeContributions"`
	TaxableIncome         float64       `json:"taxableIncome"`
	TaxBase               float64       `json:"taxBase"`
	IncomeTax             float64       `json:"incomeTax"`
	NetPay                float64       `json:"netPay"`
	EmployerContributions Contributions `json:"employerContributions"`
	TotalEmployerCost     float64       `json:"totalEmployerCost"`
}
