package payroll

import "errors"

var (
	ErrNegativeGrossSalary  = errors.New("gross salary must not be negative")
	ErrNegativeDependents   = errors.New("dependent children must not be negative")
	ErrUnknownMaritalStatus = errors.New("unknown marital status")
	ErrUnknownCategory      = errors.New("unknown employee category")
	ErrInvalidSchedule      = errors.New("invalid rate schedule")
)
