package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/centrahq/hr-backend-go/internal/domain/organization"
	"github.com/centrahq/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type organizationRepositoryImpl struct {
	db *database.DB
}

func NewOrganizationRepository(db *database.DB) organization.OrganizationRepository {
	return &organizationRepositoryImpl{db: db}
}

func (o *organizationRepositoryImpl) GetByID(ctx context.Context, id string) (organization.Organization, error) {
	query := `
		SELECT id, name, domain, timezone, pay_frequency,
			   last_payroll_date, next_payroll_date, created_at, updated_at
		FROM organizations
		WHERE id = $1
	`

	var org organization.Organization
	err := o.db.QueryRow(ctx, query, id).Scan(
		&org.ID, &org.Name, &org.Domain, &org.Timezone, &org.PayFrequency,
		&org.LastPayrollDate, &org.NextPayrollDate, &org.CreatedAt, &org.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}
		return organization.Organization{}, fmt.Errorf("failed to get organization: %w", err)
	}

	return org, nil
}

func (o *organizationRepositoryImpl) GetSchedule(ctx context.Context, id string) (organization.PayrollSchedule, error) {
	query := `
		SELECT last_payroll_date, next_payroll_date
		FROM organizations
		WHERE id = $1
	`

	var schedule organization.PayrollSchedule
	err := o.db.QueryRow(ctx, query, id).Scan(&schedule.LastPayrollDate, &schedule.NextPayrollDate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return organization.PayrollSchedule{}, organization.ErrOrganizationNotFound
		}
		return organization.PayrollSchedule{}, fmt.Errorf("failed to get payroll schedule: %w", err)
	}

	return schedule, nil
}

// UpdateSchedule writes both fields in one statement; there is no
// read-modify-write window for concurrent runs to interleave.
func (o *organizationRepositoryImpl) UpdateSchedule(ctx context.Context, id string, lastPayrollDate, nextPayrollDate time.Time) error {
	query := `
		UPDATE organizations
		SET last_payroll_date = $2, next_payroll_date = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := o.db.QueryRow(ctx, query, id, lastPayrollDate, nextPayrollDate).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return organization.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to update payroll schedule: %w", err)
	}

	return nil
}
