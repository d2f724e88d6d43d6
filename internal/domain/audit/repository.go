package audit

import "context"

// AuditRepository is a fire-and-forget sink from the caller's perspective:
// a failed Record is surfaced to operators but never fails the operation
// that produced the entry.
type AuditRepository interface {
	Record(ctx context.Context, entry Entry) error
	ListByOrganization(ctx context.Context, organizationID string, limit int) ([]Entry, error)
}
