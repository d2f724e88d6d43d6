package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/centrahq/hr-backend-go/internal/domain/audit"
	"github.com/centrahq/hr-backend-go/internal/pkg/database"
)

type auditRepositoryImpl struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepositoryImpl{db: db}
}

func (a *auditRepositoryImpl) Record(ctx context.Context, entry audit.Entry) error {
	metadata, err := json.Marshal(entry.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal audit metadata: %w", err)
	}

	query := `
		INSERT INTO audit_logs (id, organization_id, action, actor, actor_id, target, target_id, details, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	if _, err := a.db.Exec(ctx, query,
		entry.ID, entry.OrganizationID, entry.Action, entry.Actor, entry.ActorID,
		entry.Target, entry.TargetID, entry.Details, metadata,
	); err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}

	return nil
}

func (a *auditRepositoryImpl) ListByOrganization(ctx context.Context, organizationID string, limit int) ([]audit.Entry, error) {
	query := `
		SELECT id, organization_id, action, actor, actor_id, target, target_id, details, metadata, created_at
		FROM audit_logs
		WHERE organization_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := a.db.Query(ctx, query, organizationID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		var entry audit.Entry
		var metadata []byte
		if err := rows.Scan(
			&entry.ID, &entry.OrganizationID, &entry.Action, &entry.Actor, &entry.ActorID,
			&entry.Target, &entry.TargetID, &entry.Details, &metadata, &entry.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &entry.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal audit metadata: %w", err)
			}
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
