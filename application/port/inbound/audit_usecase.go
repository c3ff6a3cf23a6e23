package inbound

import (
	"context"

	"github.com/pradera/pradera/domain/entity"
)

// AuditQuery mirrors the query string of GET /api/audit. Days of zero means
// no time bound; Limit of zero selects the default.
type AuditQuery struct {
	EntityKind string
	EntityID   string
	ActorID    string
	ProjectID  string
	Action     string
	Days       int
	Limit      int
}

type AuditUseCase interface {
	Record(ctx context.Context, record *entity.AuditRecord) error
	Search(ctx context.Context, q AuditQuery) ([]*entity.AuditRecord, error)
	ByEntity(ctx context.Context, entityKind, entityID string) ([]*entity.AuditRecord, error)
	// Statistics counts records per action over the last days, always
	// reporting CREATE, UPDATE and DELETE.
	Statistics(ctx context.Context, projectID string, days int) (map[entity.AuditAction]int, error)
}
