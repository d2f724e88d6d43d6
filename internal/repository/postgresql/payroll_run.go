package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/centrahq/hr-backend-go/internal/domain/payroll"
	"github.com/centrahq/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRunRepository struct {
	db *database.DB
}

func NewPayrollRunRepository(db *database.DB) payroll.PayrollRunRepository {
	return &payrollRunRepository{db: db}
}

// CreateRun inserts the run and all of its line items in one transaction.
// The uk_payroll_runs_idempotency_key constraint is the cross-instance guard
// against concurrent settlement of the same (organization, period).
func (r *payrollRunRepository) CreateRun(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	created := run

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO payroll_runs (
				id, organization_id, period_start, period_end, status,
				total_amount, employee_count, created_by, idempotency_key, failure_reason
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING created_at
		`

		err := tx.QueryRow(ctx, query,
			run.ID, run.OrganizationID, run.PeriodStart, run.PeriodEnd, run.Status,
			run.TotalAmount, run.EmployeeCount, run.CreatedBy, run.IdempotencyKey, run.FailureReason,
		).Scan(&created.CreatedAt)
		if err != nil {
			return err
		}

		itemQuery := `
			INSERT INTO payroll_run_items (
				payroll_run_id, employee_id, employee_name, base_amount,
				bonus, deduction, net_amount, salary_snapshot, note
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`
		for _, item := range run.Items {
			if _, err := tx.Exec(ctx, itemQuery,
				run.ID, item.EmployeeID, item.EmployeeName, item.BaseAmount,
				item.Bonus, item.Deduction, item.NetAmount, item.SalarySnapshot, item.Note,
			); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if strings.Contains(err.Error(), "uk_payroll_runs_idempotency_key") {
			return payroll.PayrollRun{}, payroll.ErrDuplicatePeriod
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to create payroll run: %w", err)
	}

	return created, nil
}

func (r *payrollRunRepository) FindCompletedRunInPeriod(ctx context.Context, organizationID string, period payroll.Period) (payroll.PayrollRun, error) {
	query := `
		SELECT id, organization_id, period_start, period_end, status,
			   total_amount, employee_count, created_by, idempotency_key, failure_reason, created_at
		FROM payroll_runs
		WHERE organization_id = $1 AND status = $2
		  AND period_start >= $3 AND period_start <= $4
	`

	row := r.db.QueryRow(ctx, query, organizationID, payroll.RunStatusCompleted, period.Start, period.End)
	run, err := scanRun(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRun{}, payroll.ErrPayrollRunNotFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to find payroll run in period: %w", err)
	}

	run.Items, err = r.loadItems(ctx, run.ID)
	if err != nil {
		return payroll.PayrollRun{}, err
	}

	return run, nil
}

func (r *payrollRunRepository) ListRuns(ctx context.Context, organizationID string, limit int) ([]payroll.PayrollRun, error) {
	query := `
		SELECT id, organization_id, period_start, period_end, status,
			   total_amount, employee_count, created_by, idempotency_key, failure_reason, created_at
		FROM payroll_runs
		WHERE organization_id = $1
		ORDER BY period_start DESC
		LIMIT $2
	`

	return r.queryRuns(ctx, query, organizationID, limit)
}

func (r *payrollRunRepository) FindRunsContainingEmployee(ctx context.Context, organizationID, employeeID string, limit int) ([]payroll.PayrollRun, error) {
	query := `
		SELECT DISTINCT r.id, r.organization_id, r.period_start, r.period_end, r.status,
			   r.total_amount, r.employee_count, r.created_by, r.idempotency_key, r.failure_reason, r.created_at
		FROM payroll_runs r
		JOIN payroll_run_items i ON i.payroll_run_id = r.id
		WHERE r.organization_id = $1 AND i.employee_id = $2 AND r.status = $3
		ORDER BY r.period_start DESC
		LIMIT $4
	`

	return r.queryRuns(ctx, query, organizationID, employeeID, payroll.RunStatusCompleted, limit)
}

func (r *payrollRunRepository) queryRuns(ctx context.Context, query string, args ...interface{}) ([]payroll.PayrollRun, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []payroll.PayrollRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range runs {
		runs[i].Items, err = r.loadItems(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return runs, nil
}

func (r *payrollRunRepository) loadItems(ctx context.Context, runID string) ([]payroll.PayrollLineItem, error) {
	query := `
		SELECT employee_id, employee_name, base_amount, bonus, deduction,
			   net_amount, salary_snapshot, note
		FROM payroll_run_items
		WHERE payroll_run_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payroll run items: %w", err)
	}
	defer rows.Close()

	var items []payroll.PayrollLineItem
	for rows.Next() {
		var item payroll.PayrollLineItem
		if err := rows.Scan(
			&item.EmployeeID, &item.EmployeeName, &item.BaseAmount, &item.Bonus,
			&item.Deduction, &item.NetAmount, &item.SalarySnapshot, &item.Note,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payroll run item: %w", err)
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func scanRun(row pgx.Row) (payroll.PayrollRun, error) {
	var run payroll.PayrollRun
	err := row.Scan(
		&run.ID, &run.OrganizationID, &run.PeriodStart, &run.PeriodEnd, &run.Status,
		&run.TotalAmount, &run.EmployeeCount, &run.CreatedBy, &run.IdempotencyKey,
		&run.FailureReason, &run.CreatedAt,
	)
	return run, err
}
