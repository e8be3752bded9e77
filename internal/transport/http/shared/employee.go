package shared

import (
	"paie/internal/domain/payroll"
	"paie/internal/domain/roster"
)

// EmployeeFields maps domain validation errors onto request fields.
var EmployeeFields = []fieldError{
	{payroll.ErrNegativeGrossSalary, "grossSalary", "must be zero or positive"},
	{roster.ErrNonPositiveSalary, "grossSalary", "must be positive"},
	{payroll.ErrNegativeDependents, "dependentChildren", "must be zero or positive"},
	{payroll.ErrUnknownMaritalStatus, "maritalStatus", "must be one of single, married, divorced, widowed"},
	{payroll.ErrUnknownCategory, "category", "must be one of employee, executive"},
	{roster.ErrMissingLastName, "lastName", "is required"},
	{roster.ErrMissingFirstName, "firstName", "is required"},
}

// EmployeeRequest is the JSON shape shared by the compute and roster routes.
type EmployeeRequest struct {
	GrossSalary       *float64 `json:"grossSalary"`
	MaritalStatus     string   `json:"maritalStatus"`
	DependentChildren int      `json:"dependentChildren"`
	Category          string   `json:"category"`
}

func (req EmployeeRequest) Employee() payroll.Employee {
	emp := payroll.Employee{
		MaritalStatus:     payroll.MaritalStatus(req.MaritalStatus),
		DependentChildren: req.DependentChildren,
		Category:          payroll.Category(req.Category),
	}
	if req.GrossSalary != nil {
		emp.GrossSalary = *req.GrossSalary
	}
	return emp.Normalize()
}
