package outbound

import (
	"context"
	"time"

	"github.com/pradera/pradera/domain/entity"
)

// AuditFilter narrows audit queries. Empty fields are ignored.
type AuditFilter struct {
	EntityKind string
	EntityID   string
	ActorID    string
	ProjectID  string
	Action     entity.AuditAction
	Since      *time.Time
	Limit      int
}

type AuditRepository interface {
	Append(ctx context.Context, record *entity.AuditRecord) error
	// Find returns matching records, newest first.
	Find(ctx context.Context, filter AuditFilter) ([]*entity.AuditRecord, error)
	CountByAction(ctx context.Context, projectID string, since time.Time) (map[entity.AuditAction]int, error)
}
