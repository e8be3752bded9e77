package roster

import (
	"time"

	"paie/internal/domain/payroll"
)

type Record struct {
	ID        string `json:"id"`
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	payroll.Employee
	CreatedAt time.Time `json:"createdAt"`
}

type Input struct {
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	payroll.Employee
}

// Entry pairs a record with its freshly computed result.
type Entry struct {
	Record
	Result payroll.Result `json:"result"`
}

type Summary struct {
	EmployeeCount              int     `json:"employeeCount"`
	TotalGross                 float64 `json:"totalGross"`
	TotalEmployeeContributions float64 `json:"totalEmployeeContributions"`
	TotalIncomeTax             float64 `json:"totalIncomeTax"`
	TotalNet                   float64 `json:"totalNet"`
	TotalEmployerContributions float64 `json:"totalEmployerContributions"`
	TotalEmployerCost          float64 `json:"totalEmployerCost"`
}
