package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
)

type MaterialRepository struct{ db *sql.DB }

func NewMaterialRepository(db *sql.DB) outbound.MaterialRepository {
	return &MaterialRepository{db: db}
}

const (
	materialColumns        = `id, name, descripcion, stock, unidad, precio, created_at, updated_at`
	materialRequestColumns = `id, material_id, project_id, crew_id, cantidad, estado, created_at, updated_at`
)

func scanMaterial(row interface{ Scan(...any) error }) (*entity.Material, error) {
	var m entity.Material
	err := row.Scan(&m.ID, &m.Name, &m.Description, &m.Stock, &m.Unit, &m.Price, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func scanMaterialRequest(row interface{ Scan(...any) error }) (*entity.MaterialRequest, error) {
	var mr entity.MaterialRequest
	err := row.Scan(&mr.ID, &mr.MaterialID, &mr.ProjectID, &mr.CrewID, &mr.Quantity, &mr.Status, &mr.CreatedAt, &mr.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &mr, nil
}

func (r *MaterialRepository) Create(ctx context.Context, m *entity.Material) error {
	query := `
		INSERT INTO materials (id, name, descripcion, stock, unidad, precio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query, m.ID, m.Name, m.Description, m.Stock, m.Unit, m.Price, m.CreatedAt, m.UpdatedAt)
	return mapError("create material", err)
}

func (r *MaterialRepository) FindByID(ctx context.Context, id string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE id = $1`
	m, err := scanMaterial(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError("find material", err)
	}
	return m, nil
}

func (r *MaterialRepository) FindAll(ctx context.Context) ([]*entity.Material, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+materialColumns+` FROM materials ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	defer rows.Close()

	materials := []*entity.Material{}
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan material: %w", err)
		}
		materials = append(materials, m)
	}
	return materials, rows.Err()
}

func (r *MaterialRepository) Update(ctx context.Context, m *entity.Material) error {
	query := `
		UPDATE materials
		SET name = $2, descripcion = $3, stock = $4, unidad = $5, precio = $6, updated_at = $7
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, m.ID, m.Name, m.Description, m.Stock, m.Unit, m.Price, m.UpdatedAt)
	if err != nil {
		return mapError("update material", err)
	}
	return expectRow(result)
}

func (r *MaterialRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return mapError("delete material", err)
	}
	return expectRow(result)
}

func (r *MaterialRepository) CreateRequest(ctx context.Context, mr *entity.MaterialRequest) error {
	query := `
		INSERT INTO material_requests (id, material_id, project_id, crew_id, cantidad, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		mr.ID, mr.MaterialID, mr.ProjectID, mr.CrewID, mr.Quantity, mr.Status, mr.CreatedAt, mr.UpdatedAt,
	)
	return mapError("create material request", err)
}

func (r *MaterialRepository) FindRequestByID(ctx context.Context, id string) (*entity.MaterialRequest, error) {
	query := `SELECT ` + materialRequestColumns + ` FROM material_requests WHERE id = $1`
	mr, err := scanMaterialRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError("find material request", err)
	}
	return mr, nil
}

func (r *MaterialRepository) FindAllRequests(ctx context.Context) ([]*entity.MaterialRequest, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+materialRequestColumns+` FROM material_requests ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list material requests: %w", err)
	}
	defer rows.Close()

	requests := []*entity.MaterialRequest{}
	for rows.Next() {
		mr, err := scanMaterialRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan material request: %w", err)
		}
		requests = append(requests, mr)
	}
	return requests, rows.Err()
}

func (r *MaterialRepository) UpdateRequest(ctx context.Context, mr *entity.MaterialRequest) error {
	query := `UPDATE material_requests SET cantidad = $2, estado = $3, updated_at = $4 WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, mr.ID, mr.Quantity, mr.Status, mr.UpdatedAt)
	if err != nil {
		return mapError("update material request", err)
	}
	return expectRow(result)
}

func (r *MaterialRepository) DeleteRequest(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM material_requests WHERE id = $1`, id)
	if err != nil {
		return mapError("delete material request", err)
	}
	return expectRow(result)
}
