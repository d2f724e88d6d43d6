package middleware

import (
	"context"
	"net/http"

	"github.com/centrahq/hr-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// Identity is the verified request identity handed to handlers. The payroll
// services take organization and actor as explicit parameters; this is the
// only place they are read from the token.
type Identity struct {
	UserID         string
	Name           string
	OrganizationID string
	EmployeeID     string
}

type contextKey string

const identityKey contextKey = "identity"

// AuthRequired rejects requests without a valid verified token.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.Unauthorized(w, "Invalid token")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// OrganizationRequired extracts the tenant identity from the token claims and
// attaches it to the request context. Requests without an organization claim
// never reach an org-scoped handler.
func OrganizationRequired(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		orgID, ok := claims["org_id"].(string)
		if !ok || orgID == "" {
			response.Unauthorized(w, "No organization associated with this account")
			return
		}

		identity := Identity{OrganizationID: orgID}
		identity.UserID, _ = claims["user_id"].(string)
		identity.Name, _ = claims["name"].(string)
		identity.EmployeeID, _ = claims["employee_id"].(string)

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	}
	return http.HandlerFunc(hfn)
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}
