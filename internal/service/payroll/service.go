package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/centrahq/hr-backend-go/internal/domain/audit"
	"github.com/centrahq/hr-backend-go/internal/domain/employee"
	"github.com/centrahq/hr-backend-go/internal/domain/organization"
	"github.com/centrahq/hr-backend-go/internal/domain/payroll"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxRunsPerList     = 12
	maxPayslipsPerList = 24
)

type PayrollServiceImpl struct {
	logger       *slog.Logger
	calculator   *Calculator
	payrollRepo  payroll.PayrollRunRepository
	employeeRepo employee.EmployeeRepository
	orgRepo      organization.OrganizationRepository
	auditRepo    audit.AuditRepository
}

func NewPayrollService(
	logger *slog.Logger,
	calculator *Calculator,
	payrollRepo payroll.PayrollRunRepository,
	employeeRepo employee.EmployeeRepository,
	orgRepo organization.OrganizationRepository,
	auditRepo audit.AuditRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		logger:       logger,
		calculator:   calculator,
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		orgRepo:      orgRepo,
		auditRepo:    auditRepo,
	}
}

// Preview computes base pay for every active employee with zero adjustments.
// Read-only: an empty organization yields an empty preview, not an error.
func (s *PayrollServiceImpl) Preview(ctx context.Context, organizationID string) ([]payroll.PayrollLineItemResponse, error) {
	employees, err := s.employeeRepo.GetActiveByOrganizationID(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active employees: %w", err)
	}

	calc, err := s.calculator.Calculate(snapshotEmployees(employees), nil)
	if err != nil {
		return nil, err
	}

	return mapToLineItemResponses(calc.Items), nil
}

// Run settles payroll for one (organization, period). The run record plus its
// items is the only atomic unit; schedule advance and audit are best-effort
// once the run is committed.
func (s *PayrollServiceImpl) Run(ctx context.Context, organizationID string, actor payroll.Actor, req payroll.RunPayrollRequest) (payroll.PayrollRunResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	period, err := payroll.ResolvePeriod(req.PeriodMonth, req.PeriodYear)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	// 1. Duplicate check: at most one COMPLETED run per organization per period.
	_, err = s.payrollRepo.FindCompletedRunInPeriod(ctx, organizationID, period)
	if err == nil {
		return payroll.PayrollRunResponse{}, payroll.ErrDuplicatePeriod
	}
	if !errors.Is(err, payroll.ErrPayrollRunNotFound) {
		return payroll.PayrollRunResponse{}, fmt.Errorf("failed to check existing payroll run: %w", err)
	}

	// 2. Employee snapshot fetch. Salaries as of this read are authoritative.
	employees, err := s.employeeRepo.GetActiveByOrganizationID(ctx, organizationID)
	if err != nil {
		return payroll.PayrollRunResponse{}, fmt.Errorf("failed to get active employees: %w", err)
	}
	if len(employees) == 0 {
		return payroll.PayrollRunResponse{}, payroll.ErrNoEligibleEmployees
	}

	// 3. Calculate.
	calc, err := s.calculator.Calculate(snapshotEmployees(employees), adjustmentsFromRequest(req.Adjustments))
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	// 4. Persist run + items atomically. A concurrent identical request loses
	// the race on the idempotency key and surfaces as ErrDuplicatePeriod.
	run := payroll.PayrollRun{
		ID:             uuid.NewString(),
		OrganizationID: organizationID,
		PeriodStart:    period.Start,
		PeriodEnd:      period.End,
		Status:         payroll.RunStatusCompleted,
		TotalAmount:    calc.Total,
		EmployeeCount:  len(employees),
		Items:          calc.Items,
		CreatedBy:      actor.ID,
		IdempotencyKey: payroll.IdempotencyKey(organizationID, req.PeriodMonth, req.PeriodYear),
	}

	created, err := s.payrollRepo.CreateRun(ctx, run)
	if err != nil {
		if errors.Is(err, payroll.ErrDuplicatePeriod) {
			return payroll.PayrollRunResponse{}, payroll.ErrDuplicatePeriod
		}
		return payroll.PayrollRunResponse{}, fmt.Errorf("failed to create payroll run: %w", err)
	}

	// 5. Advance the organization's schedule. The run record is the source of
	// truth for "was this period paid"; a failure here is reported, not rolled
	// back.
	if err := s.orgRepo.UpdateSchedule(ctx, organizationID, time.Now().UTC(), period.NextPayrollDate()); err != nil {
		s.logger.Warn("payroll run committed but schedule update failed",
			slog.String("organization_id", organizationID),
			slog.String("run_id", created.ID),
			slog.Any("error", err),
		)
	}

	// 6. Audit. Side channel, never on the critical path.
	entry := audit.Entry{
		ID:             uuid.NewString(),
		OrganizationID: organizationID,
		Action:         "Payroll executed",
		Actor:          actor.Name,
		ActorID:        actor.ID,
		Target:         "Payroll Run",
		TargetID:       created.ID,
		Details:        fmt.Sprintf("Processed %d employees for %s", len(created.Items), period.Start.Format("2006-01-02")),
		Metadata: map[string]any{
			"total_amount": calc.Total,
			"month":        req.PeriodMonth,
			"year":         req.PeriodYear,
		},
	}
	if err := s.auditRepo.Record(ctx, entry); err != nil {
		s.logger.Warn("payroll run committed but audit record failed",
			slog.String("organization_id", organizationID),
			slog.String("run_id", created.ID),
			slog.Any("error", err),
		)
	}

	return mapToRunResponse(created), nil
}

func (s *PayrollServiceImpl) ListRuns(ctx context.Context, organizationID string) ([]payroll.PayrollRunResponse, error) {
	runs, err := s.payrollRepo.ListRuns(ctx, organizationID, maxRunsPerList)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll runs: %w", err)
	}

	result := make([]payroll.PayrollRunResponse, 0, len(runs))
	for _, run := range runs {
		result = append(result, mapToRunResponse(run))
	}
	return result, nil
}

func (s *PayrollServiceImpl) ListMyPayslips(ctx context.Context, organizationID, employeeID string) ([]payroll.PayslipResponse, error) {
	runs, err := s.payrollRepo.FindRunsContainingEmployee(ctx, organizationID, employeeID, maxPayslipsPerList)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}

	slips := make([]payroll.PayslipResponse, 0, len(runs))
	for _, run := range runs {
		amount := decimal.Zero
		for _, item := range run.Items {
			if item.EmployeeID == employeeID {
				amount = item.NetAmount
				break
			}
		}
		slips = append(slips, payroll.PayslipResponse{
			RunID:       run.ID,
			PeriodStart: run.PeriodStart.Format("2006-01-02"),
			PeriodEnd:   run.PeriodEnd.Format("2006-01-02"),
			PaidDate:    run.CreatedAt.Format(time.RFC3339),
			Amount:      amount,
			Status:      "Paid",
		})
	}
	return slips, nil
}

// ========== HELPERS ==========

func snapshotEmployees(employees []employee.Employee) []payroll.EmployeeSnapshot {
	snapshots := make([]payroll.EmployeeSnapshot, 0, len(employees))
	for _, emp := range employees {
		salary := decimal.Zero
		if emp.AnnualSalary != nil && !emp.AnnualSalary.IsNegative() {
			salary = *emp.AnnualSalary
		}
		snapshots = append(snapshots, payroll.EmployeeSnapshot{
			EmployeeID:   emp.ID,
			DisplayName:  emp.FullName(),
			Role:         emp.Role,
			AnnualSalary: salary,
		})
	}
	return snapshots
}

func adjustmentsFromRequest(reqs []payroll.AdjustmentRequest) []payroll.Adjustment {
	adjustments := make([]payroll.Adjustment, 0, len(reqs))
	for _, r := range reqs {
		adjustments = append(adjustments, payroll.Adjustment{
			EmployeeID: r.EmployeeID,
			Bonus:      r.Bonus,
			Deduction:  r.Deduction,
			Note:       r.Note,
		})
	}
	return adjustments
}

func mapToLineItemResponses(items []payroll.PayrollLineItem) []payroll.PayrollLineItemResponse {
	result := make([]payroll.PayrollLineItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, payroll.PayrollLineItemResponse{
			EmployeeID:     item.EmployeeID,
			EmployeeName:   item.EmployeeName,
			BaseAmount:     item.BaseAmount,
			Bonus:          item.Bonus,
			Deduction:      item.Deduction,
			NetAmount:      item.NetAmount,
			SalarySnapshot: item.SalarySnapshot,
			Note:           item.Note,
		})
	}
	return result
}

func mapToRunResponse(run payroll.PayrollRun) payroll.PayrollRunResponse {
	return payroll.PayrollRunResponse{
		ID:             run.ID,
		OrganizationID: run.OrganizationID,
		PeriodStart:    run.PeriodStart.Format("2006-01-02"),
		PeriodEnd:      run.PeriodEnd.Format("2006-01-02"),
		Status:         string(run.Status),
		TotalAmount:    run.TotalAmount,
		EmployeeCount:  run.EmployeeCount,
		Items:          mapToLineItemResponses(run.Items),
		CreatedBy:      run.CreatedBy,
		CreatedAt:      run.CreatedAt.Format(time.RFC3339),
	}
}
