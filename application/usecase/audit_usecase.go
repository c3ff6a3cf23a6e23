package usecase

import (
	"context"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
	domainerr "github.com/pradera/pradera/domain/error"
)

const (
	DefaultAuditLimit     = 100
	MaxAuditLimit         = 500
	DefaultStatisticsDays = 30
)

type AuditUseCase struct {
	audit outbound.AuditRepository
	opts  Options
}

func NewAuditUseCase(audit outbound.AuditRepository, opts Options) *AuditUseCase {
	return &AuditUseCase{audit: audit, opts: opts.withDefaults()}
}

var _ inbound.AuditUseCase = (*AuditUseCase)(nil)

// Record appends record, filling its id and timestamp when unset.
func (uc *AuditUseCase) Record(ctx context.Context, record *entity.AuditRecord) error {
	if record.ID == "" {
		record.ID = uc.opts.NewID()
	}
	if record.RecordedAt.IsZero() {
		record.RecordedAt = uc.opts.Now()
	}
	return uc.audit.Append(ctx, record)
}

func (uc *AuditUseCase) Search(ctx context.Context, q inbound.AuditQuery) ([]*entity.AuditRecord, error) {
	filter := outbound.AuditFilter{
		EntityKind: q.EntityKind,
		EntityID:   q.EntityID,
		ActorID:    q.ActorID,
		ProjectID:  q.ProjectID,
		Limit:      clampLimit(q.Limit),
	}
	if q.Action != "" {
		action := entity.AuditAction(q.Action)
		if !action.Valid() {
			return nil, domainerr.ErrInvalidValue("action", q.Action)
		}
		filter.Action = action
	}
	if q.Days < 0 {
		return nil, domainerr.ErrOutOfRange("days", 0, 0)
	}
	if q.Days > 0 {
		since := uc.opts.Now().AddDate(0, 0, -q.Days)
		filter.Since = &since
	}

	records, err := uc.audit.Find(ctx, filter)
	return records, mapRepoError("audit record", "", "search audit", err)
}

func (uc *AuditUseCase) ByEntity(ctx context.Context, entityKind, entityID string) ([]*entity.AuditRecord, error) {
	if err := requireFields(field{"entity", entityKind}, field{"entityId", entityID}); err != nil {
		return nil, err
	}
	records, err := uc.audit.Find(ctx, outbound.AuditFilter{
		EntityKind: entityKind,
		EntityID:   entityID,
		Limit:      MaxAuditLimit,
	})
	return records, mapRepoError("audit record", "", "audit by entity", err)
}

func (uc *AuditUseCase) Statistics(ctx context.Context, projectID string, days int) (map[entity.AuditAction]int, error) {
	if days <= 0 {
		days = DefaultStatisticsDays
	}
	counts, err := uc.audit.CountByAction(ctx, projectID, uc.opts.Now().AddDate(0, 0, -days))
	if err != nil {
		return nil, mapRepoError("audit record", "", "audit statistics", err)
	}

	stats := make(map[entity.AuditAction]int, len(entity.AuditActions))
	for _, action := range entity.AuditActions {
		stats[action] = 0
	}
	for action, n := range counts {
		stats[action] = n
	}
	return stats, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultAuditLimit
	case limit > MaxAuditLimit:
		return MaxAuditLimit
	}
	return limit
}
