package http

import (
	"encoding/json"
	"net/http"

	"github.com/centrahq/hr-backend-go/internal/domain/payroll"
	"github.com/centrahq/hr-backend-go/internal/handler/http/middleware"
	"github.com/centrahq/hr-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Preview(w http.ResponseWriter, r *http.Request)
	Run(w http.ResponseWriter, r *http.Request)
	ListRuns(w http.ResponseWriter, r *http.Request)
	ListMyPayslips(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "No organization associated with this account")
		return
	}

	items, err := h.payrollService.Preview(r.Context(), identity.OrganizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

func (h *payrollHandlerImpl) Run(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "No organization associated with this account")
		return
	}

	var req payroll.RunPayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	actor := payroll.Actor{ID: identity.UserID, Name: identity.Name}
	result, err := h.payrollService.Run(r.Context(), identity.OrganizationID, actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll executed", result)
}

func (h *payrollHandlerImpl) ListRuns(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "No organization associated with this account")
		return
	}

	runs, err := h.payrollService.ListRuns(r.Context(), identity.OrganizationID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, runs)
}

func (h *payrollHandlerImpl) ListMyPayslips(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "No organization associated with this account")
		return
	}
	if identity.EmployeeID == "" {
		response.BadRequest(w, "No employee record linked to this account", nil)
		return
	}

	slips, err := h.payrollService.ListMyPayslips(r.Context(), identity.OrganizationID, identity.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, slips)
}
