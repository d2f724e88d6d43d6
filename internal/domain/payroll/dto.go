package payroll

import (
	"github.com/centrahq/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== RUN DTOs ==========

type AdjustmentRequest struct {
	EmployeeID string          `json:"employee_id"`
	Bonus      decimal.Decimal `json:"bonus"`
	Deduction  decimal.Decimal `json:"deduction"`
	Note       *string         `json:"note,omitempty"`
}

type RunPayrollRequest struct {
	PeriodMonth int                 `json:"period_month"`
	PeriodYear  int                 `json:"period_year"`
	Adjustments []AdjustmentRequest `json:"adjustments,omitempty"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if r.PeriodYear < minPeriodYear || r.PeriodYear > maxPeriodYear {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be between 2000 and 2100"})
	}
	for _, adj := range r.Adjustments {
		if adj.EmployeeID == "" {
			errs = append(errs, validator.ValidationError{Field: "adjustments.employee_id", Message: "is required"})
		}
		if adj.Bonus.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "adjustments.bonus", Message: "must be non-negative"})
		}
		if adj.Deduction.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "adjustments.deduction", Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollLineItemResponse struct {
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name"`
	BaseAmount     decimal.Decimal `json:"base_amount"`
	Bonus          decimal.Decimal `json:"bonus"`
	Deduction      decimal.Decimal `json:"deduction"`
	NetAmount      decimal.Decimal `json:"net_amount"`
	SalarySnapshot decimal.Decimal `json:"salary_snapshot"`
	Note           *string         `json:"note,omitempty"`
}

type PayrollRunResponse struct {
	ID             string                    `json:"id"`
	OrganizationID string                    `json:"organization_id"`
	PeriodStart    string                    `json:"period_start"`
	PeriodEnd      string                    `json:"period_end"`
	Status         string                    `json:"status"`
	TotalAmount    decimal.Decimal           `json:"total_amount"`
	EmployeeCount  int                       `json:"employee_count"`
	Items          []PayrollLineItemResponse `json:"items"`
	CreatedBy      string                    `json:"created_by"`
	CreatedAt      string                    `json:"created_at"`
}

// PayslipResponse is one run reduced to a single employee's view: their own
// amount and the period dates, nothing about anyone else.
type PayslipResponse struct {
	RunID       string          `json:"run_id"`
	PeriodStart string          `json:"period_start"`
	PeriodEnd   string          `json:"period_end"`
	PaidDate    string          `json:"paid_date"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
}
