package payroll

import "errors"

var (
	ErrInvalidPeriod       = errors.New("invalid payroll period")
	ErrDuplicatePeriod     = errors.New("payroll for this period has already been processed")
	ErrNoEligibleEmployees = errors.New("no active employees to pay")
	ErrDuplicateAdjustment = errors.New("multiple adjustments for the same employee")
	ErrPayrollRunNotFound  = errors.New("payroll run not found")
)
