package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
)

// ReportRepository serves the aggregate queries behind the report endpoints.
type ReportRepository struct{ db *sqlx.DB }

func NewReportRepository(db *sqlx.DB) outbound.ReportRepository {
	return &ReportRepository{db: db}
}

const projectStatsQuery = `
	SELECT p.id, p.name, p.tipo_obra, p.zona_trabajo, p.estado,
		(SELECT COUNT(*) FROM crews c WHERE c.project_id = p.id) AS crews,
		(SELECT COUNT(DISTINCT cw.worker_id) FROM crew_workers cw
			JOIN crews c ON c.id = cw.crew_id WHERE c.project_id = p.id) AS workers,
		(SELECT COUNT(*) FROM site_logs l WHERE l.project_id = p.id) AS logs,
		(SELECT COUNT(*) FROM material_requests mr
			WHERE mr.project_id = p.id AND mr.estado = $1) AS pending_requests
	FROM projects p
`

func (r *ReportRepository) ProjectStats(ctx context.Context) ([]outbound.ProjectStats, error) {
	stats := []outbound.ProjectStats{}
	err := r.db.SelectContext(ctx, &stats, projectStatsQuery+` ORDER BY p.created_at DESC`, entity.RequestStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to load project stats: %w", err)
	}
	return stats, nil
}

func (r *ReportRepository) ProjectStatsByID(ctx context.Context, projectID string) (*outbound.ProjectStats, error) {
	var stats outbound.ProjectStats
	err := r.db.GetContext(ctx, &stats, projectStatsQuery+` WHERE p.id = $2`, entity.RequestStatusPending, projectID)
	if err != nil {
		return nil, mapError("load project stats", err)
	}
	return &stats, nil
}

func (r *ReportRepository) CrewStatsByProject(ctx context.Context, projectID string) ([]outbound.CrewStats, error) {
	query := `
		SELECT c.id, c.name, c.estado, COUNT(cw.id) AS workers
		FROM crews c
		LEFT JOIN crew_workers cw ON cw.crew_id = c.id
		WHERE c.project_id = $1
		GROUP BY c.id
		ORDER BY c.name
	`
	crews := []outbound.CrewStats{}
	if err := r.db.SelectContext(ctx, &crews, query, projectID); err != nil {
		return nil, fmt.Errorf("failed to load crew stats: %w", err)
	}
	return crews, nil
}

func (r *ReportRepository) WorkerAssignments(ctx context.Context, workerID string) ([]outbound.WorkerAssignment, error) {
	query := `
		SELECT p.name AS project_name, c.name AS crew_name, cw.role, cw.fecha_asignacion
		FROM crew_workers cw
		JOIN crews c ON c.id = cw.crew_id
		LEFT JOIN projects p ON p.id = c.project_id
		WHERE cw.worker_id = $1
		ORDER BY cw.fecha_asignacion DESC
	`
	assignments := []outbound.WorkerAssignment{}
	if err := r.db.SelectContext(ctx, &assignments, query, workerID); err != nil {
		return nil, fmt.Errorf("failed to load worker assignments: %w", err)
	}
	return assignments, nil
}

func (r *ReportRepository) MaterialStock(ctx context.Context) ([]outbound.MaterialStock, error) {
	query := `
		SELECT m.id, m.name, m.unidad, m.stock, m.precio,
			COUNT(mr.id) FILTER (WHERE mr.estado = $1) AS pending_requests
		FROM materials m
		LEFT JOIN material_requests mr ON mr.material_id = m.id
		GROUP BY m.id
		ORDER BY m.stock, m.name
	`
	stock := []outbound.MaterialStock{}
	if err := r.db.SelectContext(ctx, &stock, query, entity.RequestStatusPending); err != nil {
		return nil, fmt.Errorf("failed to load material stock: %w", err)
	}
	return stock, nil
}
