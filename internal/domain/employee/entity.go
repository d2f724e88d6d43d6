package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID             string
	OrganizationID string
	UserID         *string
	FirstName      string
	LastName       string
	Email          string
	Role           string
	Department     string
	Status         Status
	AnnualSalary   *decimal.Decimal
	JoinDate       time.Time
	AvatarURL      *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

type Status string

const (
	StatusActive     Status = "Active"
	StatusOnLeave    Status = "On Leave"
	StatusTerminated Status = "Terminated"
)

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// IsActive reports payroll eligibility: current employment and not soft-deleted.
func (e Employee) IsActive() bool {
	return e.Status == StatusActive && e.DeletedAt == nil
}
