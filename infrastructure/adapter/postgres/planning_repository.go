package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
)

type PlanningRepository struct{ db *sql.DB }

func NewPlanningRepository(db *sql.DB) outbound.PlanningRepository {
	return &PlanningRepository{db: db}
}

const (
	taskColumns      = `id, crew_id, title, description, prioridad, estado, fecha_vencimiento, created_at, updated_at`
	milestoneColumns = `id, project_id, title, description, target_date, estado, created_at, updated_at`
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func scanTask(row interface{ Scan(...any) error }) (*entity.Task, error) {
	var t entity.Task
	err := row.Scan(&t.ID, &t.CrewID, &t.Title, &t.Description, &t.Priority, &t.Status, &t.DueDate, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanMilestone(row interface{ Scan(...any) error }) (*entity.Milestone, error) {
	var m entity.Milestone
	err := row.Scan(&m.ID, &m.ProjectID, &m.Title, &m.Description, &m.TargetDate, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PlanningRepository) CreateTask(ctx context.Context, t *entity.Task) error {
	query := `
		INSERT INTO tasks (id, crew_id, title, description, prioridad, estado, fecha_vencimiento, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.CrewID, t.Title, t.Description, t.Priority, t.Status, t.DueDate, t.CreatedAt, t.UpdatedAt,
	)
	return mapError("create task", err)
}

func (r *PlanningRepository) FindTaskByID(ctx context.Context, id string) (*entity.Task, error) {
	t, err := scanTask(r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id))
	if err != nil {
		return nil, mapError("find task", err)
	}
	return t, nil
}

func (r *PlanningRepository) FindTasks(ctx context.Context, filter outbound.TaskFilter) ([]*entity.Task, error) {
	var c conditions
	c.addIf(filter.CrewID != "", "crew_id = $%d", filter.CrewID)
	c.addIf(filter.Status != "", "estado = $%d", filter.Status)
	query := `SELECT ` + taskColumns + ` FROM tasks` + c.where() + ` ORDER BY fecha_vencimiento NULLS LAST, created_at`

	rows, err := r.db.QueryContext(ctx, query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*entity.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *PlanningRepository) UpdateTask(ctx context.Context, t *entity.Task) error {
	query := `
		UPDATE tasks
		SET title = $2, description = $3, prioridad = $4, estado = $5, fecha_vencimiento = $6, updated_at = $7
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, t.ID, t.Title, t.Description, t.Priority, t.Status, t.DueDate, t.UpdatedAt)
	if err != nil {
		return mapError("update task", err)
	}
	return expectRow(result)
}

func (r *PlanningRepository) DeleteTask(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return mapError("delete task", err)
	}
	return expectRow(result)
}

func insertMilestone(ctx context.Context, db execer, m *entity.Milestone) error {
	query := `
		INSERT INTO milestones (id, project_id, title, description, target_date, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := db.ExecContext(ctx, query, m.ID, m.ProjectID, m.Title, m.Description, m.TargetDate, m.Status, m.CreatedAt, m.UpdatedAt)
	return mapError("create milestone", err)
}

func (r *PlanningRepository) CreateMilestone(ctx context.Context, m *entity.Milestone) error {
	return insertMilestone(ctx, r.db, m)
}

func (r *PlanningRepository) FindMilestoneByID(ctx context.Context, id string) (*entity.Milestone, error) {
	m, err := scanMilestone(r.db.QueryRowContext(ctx, `SELECT `+milestoneColumns+` FROM milestones WHERE id = $1`, id))
	if err != nil {
		return nil, mapError("find milestone", err)
	}
	return m, nil
}

func (r *PlanningRepository) FindMilestones(ctx context.Context, filter outbound.MilestoneFilter) ([]*entity.Milestone, error) {
	var c conditions
	c.addIf(filter.ProjectID != "", "project_id = $%d", filter.ProjectID)
	c.addIf(filter.Status != "", "estado = $%d", filter.Status)
	query := `SELECT ` + milestoneColumns + ` FROM milestones` + c.where() + ` ORDER BY target_date`

	rows, err := r.db.QueryContext(ctx, query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list milestones: %w", err)
	}
	defer rows.Close()

	milestones := []*entity.Milestone{}
	for rows.Next() {
		m, err := scanMilestone(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan milestone: %w", err)
		}
		milestones = append(milestones, m)
	}
	return milestones, rows.Err()
}

func (r *PlanningRepository) UpdateMilestone(ctx context.Context, m *entity.Milestone) error {
	query := `
		UPDATE milestones
		SET title = $2, description = $3, target_date = $4, estado = $5, updated_at = $6
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, m.ID, m.Title, m.Description, m.TargetDate, m.Status, m.UpdatedAt)
	if err != nil {
		return mapError("update milestone", err)
	}
	return expectRow(result)
}

func (r *PlanningRepository) DeleteMilestone(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM milestones WHERE id = $1`, id)
	if err != nil {
		return mapError("delete milestone", err)
	}
	return expectRow(result)
}
