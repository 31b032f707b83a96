package salary

import "errors"

var (
	ErrSalaryNotFound = errors.New("salary record not found")
	ErrInvalidMonth   = errors.New("month must be in YYYY-MM format")
	ErrNotOwnSalary   = errors.New("you can only view your own salary")
)
