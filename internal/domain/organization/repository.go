package organization

import (
	"context"
	"time"
)

type OrganizationRepository interface {
	GetByID(ctx context.Context, id string) (Organization, error)
	GetSchedule(ctx context.Context, id string) (PayrollSchedule, error)

	// UpdateSchedule sets both schedule fields in a single statement so
	// concurrent writers cannot interleave a partial update.
	UpdateSchedule(ctx context.Context, id string, lastPayrollDate, nextPayrollDate time.Time) error
}
