package audit

import "time"

// Entry is one write-only audit record. The payroll engine emits exactly one
// per successful run.
type Entry struct {
	ID             string
	OrganizationID string
	Action         string
	Actor          string
	ActorID        string
	Target         string
	TargetID       string
	Details        string
	Metadata       map[string]any
	Timestamp      time.Time
}
