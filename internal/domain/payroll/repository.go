package payroll

import "context"

// PayrollRunRepository defines storage access for payroll runs.
// All methods include organizationID to prevent cross-tenant data access.
type PayrollRunRepository interface {
	// CreateRun persists a run together with its line items in one atomic
	// write. A uniqueness violation on the idempotency key is reported as
	// ErrDuplicatePeriod, not as a generic storage error.
	CreateRun(ctx context.Context, run PayrollRun) (PayrollRun, error)

	// FindCompletedRunInPeriod returns the COMPLETED run whose periodStart
	// falls within the given period, or ErrPayrollRunNotFound.
	FindCompletedRunInPeriod(ctx context.Context, organizationID string, period Period) (PayrollRun, error)

	// ListRuns returns runs for the organization ordered by period descending.
	ListRuns(ctx context.Context, organizationID string, limit int) ([]PayrollRun, error)

	// FindRunsContainingEmployee returns COMPLETED runs that carry a line item
	// for the employee, ordered by period descending.
	FindRunsContainingEmployee(ctx context.Context, organizationID, employeeID string, limit int) ([]PayrollRun, error)
}
