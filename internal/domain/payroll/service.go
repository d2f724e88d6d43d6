package payroll

import "context"

// PayrollService is the surface the HTTP layer consumes. The organization and
// actor are explicit parameters on every call; the service holds no ambient
// request state.
type PayrollService interface {
	// Preview computes base pay for all active employees with no adjustments
	// and no side effects. Callable any number of times.
	Preview(ctx context.Context, organizationID string) ([]PayrollLineItemResponse, error)

	// Run executes payroll for the requested period: duplicate check, employee
	// snapshot fetch, calculation, atomic persistence, schedule advance and
	// audit emission. At most one COMPLETED run per organization per period.
	Run(ctx context.Context, organizationID string, actor Actor, req RunPayrollRequest) (PayrollRunResponse, error)

	// ListRuns returns recent runs for the organization, newest period first.
	ListRuns(ctx context.Context, organizationID string) ([]PayrollRunResponse, error)

	// ListMyPayslips filters persisted runs down to the single employee's line
	// item per run, exposing only that employee's amount and period dates.
	ListMyPayslips(ctx context.Context, organizationID, employeeID string) ([]PayslipResponse, error)
}
