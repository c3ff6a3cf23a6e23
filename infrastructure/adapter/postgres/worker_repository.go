package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
)

type WorkerRepository struct{ db *sql.DB }

func NewWorkerRepository(db *sql.DB) outbound.WorkerRepository {
	return &WorkerRepository{db: db}
}

const workerColumns = `id, name, rut, especialidad, certificaciones, experiencia, disponibilidad, estado, created_at, updated_at`

func scanWorker(row interface{ Scan(...any) error }) (*entity.Worker, error) {
	var w entity.Worker
	var rut sql.NullString
	err := row.Scan(
		&w.ID,
		&w.Name,
		&rut,
		&w.Specialty,
		&w.Certifications,
		&w.Experience,
		&w.Available,
		&w.Status,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if rut.Valid {
		w.RUT = &rut.String
	}
	return &w, nil
}

func (r *WorkerRepository) Create(ctx context.Context, w *entity.Worker) error {
	query := `
		INSERT INTO workers (id, name, rut, especialidad, certificaciones, experiencia, disponibilidad, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		w.ID, w.Name, w.RUT, w.Specialty, w.Certifications, w.Experience, w.Available, w.Status, w.CreatedAt, w.UpdatedAt,
	)
	return mapError("create worker", err)
}

// FindByID loads the worker together with its crew assignments.
func (r *WorkerRepository) FindByID(ctx context.Context, id string) (*entity.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers WHERE id = $1`
	w, err := scanWorker(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError("find worker", err)
	}

	links, err := findCrewLinks(ctx, r.db, `worker_id = $1`, id)
	if err != nil {
		return nil, err
	}
	w.CrewLinks = links
	return w, nil
}

func (r *WorkerRepository) FindAll(ctx context.Context) ([]*entity.Worker, error) {
	query := `SELECT ` + workerColumns + ` FROM workers ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	defer rows.Close()

	workers := []*entity.Worker{}
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan worker: %w", err)
		}
		workers = append(workers, w)
	}
	return workers, rows.Err()
}

func (r *WorkerRepository) Update(ctx context.Context, w *entity.Worker) error {
	query := `
		UPDATE workers
		SET name = $2, rut = $3, especialidad = $4, certificaciones = $5, experiencia = $6,
			disponibilidad = $7, estado = $8, updated_at = $9
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		w.ID, w.Name, w.RUT, w.Specialty, w.Certifications, w.Experience, w.Available, w.Status, w.UpdatedAt,
	)
	if err != nil {
		return mapError("update worker", err)
	}
	return expectRow(result)
}

func (r *WorkerRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return mapError("delete worker", err)
	}
	return expectRow(result)
}
