package organization

import "time"

type Organization struct {
	ID           string
	Name         string
	Domain       *string
	Timezone     string
	PayFrequency PayFrequency
	PayrollSchedule
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PayFrequency string

const (
	PayFrequencyMonthly  PayFrequency = "MONTHLY"
	PayFrequencyBiweekly PayFrequency = "BIWEEKLY"
)

// PayrollSchedule tracks when payroll last ran and when the next period opens.
// Advanced by the run committer after each successful settlement.
type PayrollSchedule struct {
	LastPayrollDate *time.Time
	NextPayrollDate *time.Time
}
