package employee

import "context"

// EmployeeRepository is the directory the payroll engine reads from.
// All methods include organizationID to prevent cross-tenant data access.
type EmployeeRepository interface {
	GetByID(ctx context.Context, organizationID, id string) (Employee, error)
	GetActiveByOrganizationID(ctx context.Context, organizationID string) ([]Employee, error)
}
