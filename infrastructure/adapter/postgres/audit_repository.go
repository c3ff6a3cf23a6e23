package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
)

// AuditRepository is the append-only audit store.
type AuditRepository struct{ db *sqlx.DB }

func NewAuditRepository(db *sqlx.DB) outbound.AuditRepository {
	return &AuditRepository{db: db}
}

type auditRow struct {
	ID         string         `db:"id"`
	ActorID    string         `db:"user_id"`
	Action     string         `db:"action"`
	EntityKind string         `db:"entity"`
	EntityID   sql.NullString `db:"entity_id"`
	ProjectID  sql.NullString `db:"project_id"`
	Changes    []byte         `db:"changes"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (row auditRow) toEntity() *entity.AuditRecord {
	record := &entity.AuditRecord{
		ID:         row.ID,
		ActorID:    row.ActorID,
		Action:     entity.AuditAction(row.Action),
		EntityKind: row.EntityKind,
		RecordedAt: row.CreatedAt,
	}
	if row.EntityID.Valid {
		record.EntityID = &row.EntityID.String
	}
	if row.ProjectID.Valid {
		record.ProjectID = &row.ProjectID.String
	}
	if len(row.Changes) > 0 {
		record.Payload = json.RawMessage(row.Changes)
	}
	return record
}

func (r *AuditRepository) Append(ctx context.Context, record *entity.AuditRecord) error {
	var changes any
	if len(record.Payload) > 0 {
		changes = string(record.Payload)
	}
	query := `
		INSERT INTO audit_logs (id, user_id, action, entity, entity_id, project_id, changes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		record.ID,
		record.ActorID,
		string(record.Action),
		record.EntityKind,
		record.EntityID,
		record.ProjectID,
		changes,
		record.RecordedAt,
	)
	return mapError("append audit record", err)
}

func (r *AuditRepository) Find(ctx context.Context, filter outbound.AuditFilter) ([]*entity.AuditRecord, error) {
	var c conditions
	c.addIf(filter.EntityKind != "", "entity = $%d", filter.EntityKind)
	c.addIf(filter.EntityID != "", "entity_id = $%d", filter.EntityID)
	c.addIf(filter.ActorID != "", "user_id = $%d", filter.ActorID)
	c.addIf(filter.ProjectID != "", "project_id = $%d", filter.ProjectID)
	c.addIf(filter.Action != "", "action = $%d", string(filter.Action))
	if filter.Since != nil {
		c.add("created_at >= $%d", *filter.Since)
	}
	query := `SELECT id, user_id, action, entity, entity_id, project_id, changes, created_at FROM audit_logs` +
		c.where() + ` ORDER BY created_at DESC`
	query += c.limit(filter.Limit)

	var rows []auditRow
	if err := r.db.SelectContext(ctx, &rows, query, c.args...); err != nil {
		return nil, fmt.Errorf("failed to search audit records: %w", err)
	}

	records := make([]*entity.AuditRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toEntity())
	}
	return records, nil
}

func (r *AuditRepository) CountByAction(ctx context.Context, projectID string, since time.Time) (map[entity.AuditAction]int, error) {
	var c conditions
	c.add("created_at >= $%d", since)
	c.addIf(projectID != "", "project_id = $%d", projectID)
	query := `SELECT action, COUNT(*) AS total FROM audit_logs` + c.where() + ` GROUP BY action`

	var rows []struct {
		Action string `db:"action"`
		Total  int    `db:"total"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, c.args...); err != nil {
		return nil, fmt.Errorf("failed to count audit records: %w", err)
	}

	counts := make(map[entity.AuditAction]int, len(rows))
	for _, row := range rows {
		counts[entity.AuditAction(row.Action)] = row.Total
	}
	return counts, nil
}
