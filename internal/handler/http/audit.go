package http

import (
	"net/http"
	"strconv"

	"github.com/centrahq/hr-backend-go/internal/domain/audit"
	"github.com/centrahq/hr-backend-go/internal/handler/http/middleware"
	"github.com/centrahq/hr-backend-go/internal/handler/http/response"
)

const defaultAuditLimit = 50

type AuditHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type auditHandlerImpl struct {
	auditRepo audit.AuditRepository
}

func NewAuditHandler(auditRepo audit.AuditRepository) AuditHandler {
	return &auditHandlerImpl{auditRepo: auditRepo}
}

func (h *auditHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "No organization associated with this account")
		return
	}

	limit := defaultAuditLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 200 {
			limit = parsed
		}
	}

	entries, err := h.auditRepo.ListByOrganization(r.Context(), identity.OrganizationID, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
