package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
)

type ProjectRepository struct{ db *sql.DB }

func NewProjectRepository(db *sql.DB) outbound.ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, name, tipo_obra, complejidad, duracion_estimada, fecha_inicio, fecha_termino,
	zona_trabajo, estado, presupuesto, supervisor, descripcion_tecnica, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (*entity.Project, error) {
	var p entity.Project
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.WorkType,
		&p.Complexity,
		&p.EstimatedDays,
		&p.StartDate,
		&p.EndDate,
		&p.WorkZone,
		&p.Status,
		&p.Budget,
		&p.Supervisor,
		&p.TechnicalDescription,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts the project and its milestones in one transaction.
func (r *ProjectRepository) Create(ctx context.Context, p *entity.Project, milestones []*entity.Milestone) error {
	return withTx(ctx, r.db, "create project", func(tx *sql.Tx) error {
		query := `
			INSERT INTO projects (id, name, tipo_obra, complejidad, duracion_estimada, fecha_inicio, fecha_termino,
				zona_trabajo, estado, presupuesto, supervisor, descripcion_tecnica, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		`
		_, err := tx.ExecContext(ctx, query,
			p.ID, p.Name, p.WorkType, p.Complexity, p.EstimatedDays, p.StartDate, p.EndDate,
			p.WorkZone, p.Status, p.Budget, p.Supervisor, p.TechnicalDescription, p.CreatedAt, p.UpdatedAt,
		)
		if err != nil {
			return mapError("create project", err)
		}
		for _, m := range milestones {
			if err := insertMilestone(ctx, tx, m); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	p, err := scanProject(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError("find project", err)
	}
	return p, nil
}

func (r *ProjectRepository) FindAll(ctx context.Context) ([]*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []*entity.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, p *entity.Project) error {
	query := `
		UPDATE projects
		SET name = $2, tipo_obra = $3, complejidad = $4, duracion_estimada = $5, fecha_inicio = $6,
			fecha_termino = $7, zona_trabajo = $8, estado = $9, presupuesto = $10, supervisor = $11,
			descripcion_tecnica = $12, updated_at = $13
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.WorkType, p.Complexity, p.EstimatedDays, p.StartDate, p.EndDate,
		p.WorkZone, p.Status, p.Budget, p.Supervisor, p.TechnicalDescription, p.UpdatedAt,
	)
	if err != nil {
		return mapError("update project", err)
	}
	return expectRow(result)
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return mapError("delete project", err)
	}
	return expectRow(result)
}
