package payroll

import (
	"errors"
	"strings"
)

// Normalize lower-cases the enum fields and fills the defaults the
// calculator form starts with: single, employee.
func (e Employee) Normalize() Employee {
	e.MaritalStatus = MaritalStatus(strings.ToLower(strings.TrimSpace(string(e.MaritalStatus))))
	if e.MaritalStatus == "" {
		e.MaritalStatus = MaritalSingle
	}
	e.Category = Category(strings.ToLower(strings.TrimSpace(string(e.Category))))
	if e.Category == "" {
		e.Category = CategoryEmployee
	}
	return e
}

// Validate checks the engine precondition and the enum fields. All
// violations are joined so callers can report them together.
func (e Employee) Validate() error {
	var errs []error
	if e.GrossSalary < 0 {
		errs = append(errs, ErrNegativeGrossSalary)
	}
	if e.DependentChildren < 0 {
		errs = append(errs, ErrNegativeDependents)
	}
	if !e.MaritalStatus.Valid() {
		errs = append(errs, ErrUnknownMaritalStatus)
	}
	if !e.Category.Valid() {
		errs = append(errs, ErrUnknownCategory)
	}
	return errors.Join(errs...)
}

func (m MaritalStatus) Valid() bool {
	for _, s := range MaritalStatuses {
		if m == s {
			return true
		}
	}
	return false
}

func (c Category) Valid() bool {
	for _, s := range Categories {
		if c == s {
			return true
		}
	}
	return false
}
