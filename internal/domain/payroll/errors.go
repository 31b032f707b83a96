package payroll

import "errors"

var (
	ErrDistributorRequired = errors.New("distributedBy parameter is required")
	ErrNoSalariesForMonth  = errors.New("no salary records found for the specified month")
	ErrAlreadyDistributed  = errors.New("all selected salaries have already been distributed")
	ErrInvalidMonth        = errors.New("month must be in YYYY-MM format")
)
