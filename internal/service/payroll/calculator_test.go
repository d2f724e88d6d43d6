package payroll

import (
	"testing"

	"github.com/centrahq/hr-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func snapshot(id, name, salary string) payroll.EmployeeSnapshot {
	return payroll.EmployeeSnapshot{
		EmployeeID:   id,
		DisplayName:  name,
		AnnualSalary: dec(salary),
	}
}

func TestCalculator_BaseAmounts(t *testing.T) {
	tests := []struct {
		name     string
		salary   string
		wantBase string
	}{
		{"divides evenly", "120000", "10000.00"},
		{"sixty thousand", "60000", "5000.00"},
		{"ninety thousand", "90000", "7500.00"},
		{"rounds repeating fraction", "100001", "8333.42"},
		{"rounds half cent away from zero", "120000.90", "10000.08"},
		{"zero salary", "0", "0.00"},
	}

	calculator := NewCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc, err := calculator.Calculate([]payroll.EmployeeSnapshot{snapshot("emp-1", "Ada Lovelace", tt.salary)}, nil)
			require.NoError(t, err)
			require.Len(t, calc.Items, 1)

			item := calc.Items[0]
			assert.True(t, item.BaseAmount.Equal(dec(tt.wantBase)), "base = %s, want %s", item.BaseAmount, tt.wantBase)
			assert.True(t, item.NetAmount.Equal(item.BaseAmount), "no adjustments: net must equal base")
		})
	}
}

func TestCalculator_AppliesAdjustments(t *testing.T) {
	calculator := NewCalculator()

	calc, err := calculator.Calculate(
		[]payroll.EmployeeSnapshot{snapshot("emp-1", "Ada Lovelace", "120000")},
		[]payroll.Adjustment{{EmployeeID: "emp-1", Bonus: dec("500"), Deduction: dec("200")}},
	)
	require.NoError(t, err)
	require.Len(t, calc.Items, 1)

	item := calc.Items[0]
	assert.True(t, item.BaseAmount.Equal(dec("10000.00")))
	assert.True(t, item.NetAmount.Equal(dec("10300.00")), "net = %s", item.NetAmount)
	assert.True(t, calc.Total.Equal(dec("10300.00")))
}

func TestCalculator_NetClampedAtZero(t *testing.T) {
	calculator := NewCalculator()

	calc, err := calculator.Calculate(
		[]payroll.EmployeeSnapshot{snapshot("emp-1", "Ada Lovelace", "120000")},
		[]payroll.Adjustment{{EmployeeID: "emp-1", Deduction: dec("15000")}},
	)
	require.NoError(t, err)
	require.Len(t, calc.Items, 1)

	assert.True(t, calc.Items[0].NetAmount.IsZero(), "net = %s, want 0", calc.Items[0].NetAmount)
	assert.True(t, calc.Total.IsZero())
}

func TestCalculator_TotalIsExactSumOfItems(t *testing.T) {
	calculator := NewCalculator()

	employees := []payroll.EmployeeSnapshot{
		snapshot("emp-1", "Ada Lovelace", "60000"),
		snapshot("emp-2", "Grace Hopper", "90000"),
		snapshot("emp-3", "Alan Turing", "100001"),
		snapshot("emp-4", "Edsger Dijkstra", "73333.33"),
	}

	calc, err := calculator.Calculate(employees, []payroll.Adjustment{
		{EmployeeID: "emp-2", Bonus: dec("123.45")},
		{EmployeeID: "emp-4", Deduction: dec("0.01")},
	})
	require.NoError(t, err)
	require.Len(t, calc.Items, len(employees))

	sum := decimal.Zero
	for _, item := range calc.Items {
		sum = sum.Add(item.NetAmount)
	}
	assert.True(t, calc.Total.Equal(sum), "total = %s, sum of items = %s", calc.Total, sum)
}

func TestCalculator_TwoEmployeesNoAdjustments(t *testing.T) {
	calculator := NewCalculator()

	calc, err := calculator.Calculate([]payroll.EmployeeSnapshot{
		snapshot("emp-1", "Ada Lovelace", "60000"),
		snapshot("emp-2", "Grace Hopper", "90000"),
	}, nil)
	require.NoError(t, err)

	assert.True(t, calc.Total.Equal(dec("12500.00")), "total = %s", calc.Total)
}

func TestCalculator_PreservesEmployeeOrder(t *testing.T) {
	calculator := NewCalculator()

	employees := []payroll.EmployeeSnapshot{
		snapshot("emp-3", "Alan Turing", "30000"),
		snapshot("emp-1", "Ada Lovelace", "60000"),
		snapshot("emp-2", "Grace Hopper", "90000"),
	}

	calc, err := calculator.Calculate(employees, nil)
	require.NoError(t, err)
	require.Len(t, calc.Items, 3)

	for i, emp := range employees {
		assert.Equal(t, emp.EmployeeID, calc.Items[i].EmployeeID)
	}
}

func TestCalculator_Deterministic(t *testing.T) {
	calculator := NewCalculator()

	employees := []payroll.EmployeeSnapshot{
		snapshot("emp-1", "Ada Lovelace", "60000"),
		snapshot("emp-2", "Grace Hopper", "90000"),
	}
	adjustments := []payroll.Adjustment{{EmployeeID: "emp-1", Bonus: dec("250")}}

	first, err := calculator.Calculate(employees, adjustments)
	require.NoError(t, err)
	second, err := calculator.Calculate(employees, adjustments)
	require.NoError(t, err)

	require.Len(t, second.Items, len(first.Items))
	for i := range first.Items {
		assert.Equal(t, first.Items[i].EmployeeID, second.Items[i].EmployeeID)
		assert.True(t, first.Items[i].NetAmount.Equal(second.Items[i].NetAmount))
	}
	assert.True(t, first.Total.Equal(second.Total))
}

func TestCalculator_RejectsDuplicateAdjustments(t *testing.T) {
	calculator := NewCalculator()

	_, err := calculator.Calculate(
		[]payroll.EmployeeSnapshot{snapshot("emp-1", "Ada Lovelace", "120000")},
		[]payroll.Adjustment{
			{EmployeeID: "emp-1", Bonus: dec("100")},
			{EmployeeID: "emp-1", Deduction: dec("50")},
		},
	)
	assert.ErrorIs(t, err, payroll.ErrDuplicateAdjustment)
}

func TestCalculator_IgnoresAdjustmentForUnknownEmployee(t *testing.T) {
	calculator := NewCalculator()

	calc, err := calculator.Calculate(
		[]payroll.EmployeeSnapshot{snapshot("emp-1", "Ada Lovelace", "120000")},
		[]payroll.Adjustment{{EmployeeID: "emp-999", Bonus: dec("500")}},
	)
	require.NoError(t, err)
	require.Len(t, calc.Items, 1)

	assert.True(t, calc.Items[0].NetAmount.Equal(dec("10000.00")))
}

func TestCalculator_NegativeSalaryTreatedAsZero(t *testing.T) {
	calculator := NewCalculator()

	calc, err := calculator.Calculate([]payroll.EmployeeSnapshot{snapshot("emp-1", "Ada Lovelace", "-5000")}, nil)
	require.NoError(t, err)
	require.Len(t, calc.Items, 1)

	assert.True(t, calc.Items[0].BaseAmount.IsZero())
	assert.True(t, calc.Items[0].SalarySnapshot.IsZero())
}

func TestCalculator_ZeroEmployees(t *testing.T) {
	calculator := NewCalculator()

	calc, err := calculator.Calculate(nil, nil)
	require.NoError(t, err)

	assert.Empty(t, calc.Items)
	assert.True(t, calc.Total.IsZero())
}
