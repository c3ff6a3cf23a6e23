package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
)

type CrewRepository struct{ db *sql.DB }

func NewCrewRepository(db *sql.DB) outbound.CrewRepository {
	return &CrewRepository{db: db}
}

const crewColumns = `id, name, project_id, fecha_inicio, estado, created_at, updated_at`

func scanCrew(row interface{ Scan(...any) error }) (*entity.Crew, error) {
	var c entity.Crew
	err := row.Scan(&c.ID, &c.Name, &c.ProjectID, &c.StartDate, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// findCrewLinks loads crew_workers rows matching where, which must use $1.
func findCrewLinks(ctx context.Context, q queryer, where string, arg string) ([]*entity.CrewWorker, error) {
	query := `SELECT id, crew_id, worker_id, role, fecha_asignacion FROM crew_workers WHERE ` + where +
		` ORDER BY fecha_asignacion`
	rows, err := q.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list crew workers: %w", err)
	}
	defer rows.Close()

	links := []*entity.CrewWorker{}
	for rows.Next() {
		var link entity.CrewWorker
		if err := rows.Scan(&link.ID, &link.CrewID, &link.WorkerID, &link.Role, &link.AssignedAt); err != nil {
			return nil, fmt.Errorf("failed to scan crew worker: %w", err)
		}
		links = append(links, &link)
	}
	return links, rows.Err()
}

func (r *CrewRepository) Create(ctx context.Context, c *entity.Crew) error {
	query := `
		INSERT INTO crews (id, name, project_id, fecha_inicio, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.ProjectID, c.StartDate, c.Status, c.CreatedAt, c.UpdatedAt)
	return mapError("create crew", err)
}

// FindByID loads the crew and its members.
func (r *CrewRepository) FindByID(ctx context.Context, id string) (*entity.Crew, error) {
	query := `SELECT ` + crewColumns + ` FROM crews WHERE id = $1`
	c, err := scanCrew(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError("find crew", err)
	}
	c.Members, err = findCrewLinks(ctx, r.db, `crew_id = $1`, id)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CrewRepository) FindAll(ctx context.Context) ([]*entity.Crew, error) {
	query := `SELECT ` + crewColumns + ` FROM crews ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list crews: %w", err)
	}
	defer rows.Close()

	crews := []*entity.Crew{}
	for rows.Next() {
		c, err := scanCrew(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan crew: %w", err)
		}
		crews = append(crews, c)
	}
	return crews, rows.Err()
}

func (r *CrewRepository) Update(ctx context.Context, c *entity.Crew) error {
	query := `
		UPDATE crews
		SET name = $2, project_id = $3, fecha_inicio = $4, estado = $5, updated_at = $6
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.ProjectID, c.StartDate, c.Status, c.UpdatedAt)
	if err != nil {
		return mapError("update crew", err)
	}
	return expectRow(result)
}

// Delete removes the crew's worker links before the crew itself.
func (r *CrewRepository) Delete(ctx context.Context, id string) error {
	return withTx(ctx, r.db, "delete crew", func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM crew_workers WHERE crew_id = $1`, id); err != nil {
			return mapError("delete crew workers", err)
		}
		result, err := tx.ExecContext(ctx, `DELETE FROM crews WHERE id = $1`, id)
		if err != nil {
			return mapError("delete crew", err)
		}
		return expectRow(result)
	})
}

func (r *CrewRepository) AddWorker(ctx context.Context, link *entity.CrewWorker) error {
	query := `
		INSERT INTO crew_workers (id, crew_id, worker_id, role, fecha_asignacion)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, link.ID, link.CrewID, link.WorkerID, link.Role, link.AssignedAt)
	return mapError("add crew worker", err)
}

func (r *CrewRepository) RemoveWorker(ctx context.Context, crewWorkerID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM crew_workers WHERE id = $1`, crewWorkerID)
	if err != nil {
		return mapError("remove crew worker", err)
	}
	return expectRow(result)
}
