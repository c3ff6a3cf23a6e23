package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
)

type SiteLogRepository struct{ db *sql.DB }

func NewSiteLogRepository(db *sql.DB) outbound.SiteLogRepository {
	return &SiteLogRepository{db: db}
}

const siteLogColumns = `id, crew_id, project_id, fecha, actividades, incidentes, materiales, tiempos,
	observaciones, estado_herramientas, responsable_id, created_at, updated_at`

func scanSiteLog(row interface{ Scan(...any) error }) (*entity.SiteLog, error) {
	var l entity.SiteLog
	err := row.Scan(
		&l.ID,
		&l.CrewID,
		&l.ProjectID,
		&l.Date,
		&l.Activities,
		&l.Incidents,
		&l.Materials,
		&l.WorkTimes,
		&l.Observations,
		&l.ToolCondition,
		&l.ResponsibleID,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *SiteLogRepository) Create(ctx context.Context, l *entity.SiteLog) error {
	query := `
		INSERT INTO site_logs (id, crew_id, project_id, fecha, actividades, incidentes, materiales, tiempos,
			observaciones, estado_herramientas, responsable_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.db.ExecContext(ctx, query,
		l.ID, l.CrewID, l.ProjectID, l.Date, l.Activities, l.Incidents, l.Materials, l.WorkTimes,
		l.Observations, l.ToolCondition, l.ResponsibleID, l.CreatedAt, l.UpdatedAt,
	)
	return mapError("create site log", err)
}

func (r *SiteLogRepository) FindByID(ctx context.Context, id string) (*entity.SiteLog, error) {
	query := `SELECT ` + siteLogColumns + ` FROM site_logs WHERE id = $1`
	l, err := scanSiteLog(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError("find site log", err)
	}
	return l, nil
}

func (r *SiteLogRepository) FindAll(ctx context.Context, filter outbound.SiteLogFilter) ([]*entity.SiteLog, error) {
	var c conditions
	c.addIf(filter.CrewID != "", "crew_id = $%d", filter.CrewID)
	c.addIf(filter.ProjectID != "", "project_id = $%d", filter.ProjectID)
	query := `SELECT ` + siteLogColumns + ` FROM site_logs` + c.where() + ` ORDER BY fecha DESC, created_at DESC`
	query += c.limit(filter.Limit)

	rows, err := r.db.QueryContext(ctx, query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list site logs: %w", err)
	}
	defer rows.Close()

	logs := []*entity.SiteLog{}
	for rows.Next() {
		l, err := scanSiteLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan site log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (r *SiteLogRepository) Update(ctx context.Context, l *entity.SiteLog) error {
	query := `
		UPDATE site_logs
		SET actividades = $2, incidentes = $3, materiales = $4, tiempos = $5, observaciones = $6,
			estado_herramientas = $7, updated_at = $8
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		l.ID, l.Activities, l.Incidents, l.Materials, l.WorkTimes, l.Observations, l.ToolCondition, l.UpdatedAt,
	)
	if err != nil {
		return mapError("update site log", err)
	}
	return expectRow(result)
}

func (r *SiteLogRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM site_logs WHERE id = $1`, id)
	if err != nil {
		return mapError("delete site log", err)
	}
	return expectRow(result)
}
