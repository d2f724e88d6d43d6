package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RunStatus enum
type RunStatus string

const (
	RunStatusProcessing RunStatus = "PROCESSING"
	RunStatusCompleted  RunStatus = "COMPLETED"
	RunStatusFailed     RunStatus = "FAILED"
)

// EmployeeSnapshot is the read-only view of an employee taken at calculation
// time. The salary captured here is authoritative for the run; later edits to
// the employee record never recompute a committed run.
type EmployeeSnapshot struct {
	EmployeeID   string
	DisplayName  string
	Role         string
	AnnualSalary decimal.Decimal
}

// Adjustment is a caller-supplied bonus/deduction for one employee in one run.
type Adjustment struct {
	EmployeeID string
	Bonus      decimal.Decimal
	Deduction  decimal.Decimal
	Note       *string
}

// PayrollLineItem is one employee's computed pay within a run.
type PayrollLineItem struct {
	EmployeeID     string
	EmployeeName   string
	BaseAmount     decimal.Decimal
	Bonus          decimal.Decimal
	Deduction      decimal.Decimal
	NetAmount      decimal.Decimal
	SalarySnapshot decimal.Decimal
	Note           *string
}

// PayrollRun is one immutable settlement record for one organization and one
// period. It is created atomically with its items at COMPLETED status and
// never mutated afterward; a bad run is a new run, not a patch.
type PayrollRun struct {
	ID             string
	OrganizationID string
	PeriodStart    time.Time
	PeriodEnd      time.Time
	Status         RunStatus
	TotalAmount    decimal.Decimal
	EmployeeCount  int
	Items          []PayrollLineItem
	CreatedBy      string
	IdempotencyKey string
	FailureReason  *string
	CreatedAt      time.Time
}

// Actor identifies who triggered a run, for the run record and the audit trail.
type Actor struct {
	ID   string
	Name string
}

// Calculation is the result of the pure calculator: line items in employee
// input order plus the exact sum of their net amounts.
type Calculation struct {
	Items []PayrollLineItem
	Total decimal.Decimal
}

// IdempotencyKey derives the unique settlement key for (organization, period).
// The key is deterministic so concurrent identical requests collide on the
// storage uniqueness constraint instead of double-paying.
func IdempotencyKey(organizationID string, month, year int) string {
	return fmt.Sprintf("run-%s-%d-%d", organizationID, month, year)
}
