package roster

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrDuplicateID       = errors.New("employee id already exists")
	ErrMissingLastName   = errors.New("last name is required")
	ErrMissingFirstName  = errors.New("first name is required")
	ErrNonPositiveSalary = errors.New("gross salary must be positive")
)
