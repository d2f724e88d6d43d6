package response

import (
	"errors"
	"net/http"

	"github.com/centrahq/hr-backend-go/internal/domain/employee"
	"github.com/centrahq/hr-backend-go/internal/domain/organization"
	"github.com/centrahq/hr-backend-go/internal/domain/payroll"
	"github.com/centrahq/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Payroll domain errors
	case errors.Is(err, payroll.ErrInvalidPeriod):
		ValidationError(w, map[string]string{"period": "month/year out of accepted range"})
	case errors.Is(err, payroll.ErrDuplicatePeriod):
		Conflict(w, "Payroll for this period has already been processed")
	case errors.Is(err, payroll.ErrNoEligibleEmployees):
		BadRequest(w, "No active employees to pay", nil)
	case errors.Is(err, payroll.ErrDuplicateAdjustment):
		ValidationError(w, map[string]string{"adjustments": "multiple adjustments for the same employee"})
	case errors.Is(err, payroll.ErrPayrollRunNotFound):
		NotFound(w, "Payroll run not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Organization domain errors
	case errors.Is(err, organization.ErrOrganizationNotFound):
		NotFound(w, "Organization not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
