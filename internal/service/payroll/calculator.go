package payroll

import (
	"fmt"

	"github.com/centrahq/hr-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// Calculator computes per-employee pay for one period. Pure: no I/O, no
// clock, deterministic for the same inputs, items in employee input order.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate produces one line item per employee snapshot plus the grand
// total. Amounts are rounded to cents (half away from zero) per item; the
// total is the exact sum of the already-rounded net amounts and is never
// re-rounded. Net pay is clamped at zero regardless of deduction size.
//
// Two adjustment entries for the same employee are rejected: a duplicate
// almost always means the caller merged two requests by mistake, and
// silently applying only one of them would mask that.
func (c *Calculator) Calculate(employees []payroll.EmployeeSnapshot, adjustments []payroll.Adjustment) (payroll.Calculation, error) {
	adjustmentByEmployee := make(map[string]payroll.Adjustment, len(adjustments))
	for _, adj := range adjustments {
		if _, exists := adjustmentByEmployee[adj.EmployeeID]; exists {
			return payroll.Calculation{}, fmt.Errorf("employee %s: %w", adj.EmployeeID, payroll.ErrDuplicateAdjustment)
		}
		adjustmentByEmployee[adj.EmployeeID] = adj
	}

	items := make([]payroll.PayrollLineItem, 0, len(employees))
	total := decimal.Zero

	for _, emp := range employees {
		salary := emp.AnnualSalary
		if salary.IsNegative() {
			salary = decimal.Zero
		}
		baseAmount := salary.Div(monthsPerYear).Round(2)

		adj := adjustmentByEmployee[emp.EmployeeID]

		netAmount := baseAmount.Add(adj.Bonus).Sub(adj.Deduction)
		if netAmount.IsNegative() {
			netAmount = decimal.Zero
		}
		total = total.Add(netAmount)

		items = append(items, payroll.PayrollLineItem{
			EmployeeID:     emp.EmployeeID,
			EmployeeName:   emp.DisplayName,
			BaseAmount:     baseAmount,
			Bonus:          adj.Bonus,
			Deduction:      adj.Deduction,
			NetAmount:      netAmount,
			SalarySnapshot: salary,
			Note:           adj.Note,
		})
	}

	return payroll.Calculation{Items: items, Total: total}, nil
}
