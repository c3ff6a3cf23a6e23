package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
)

type CertificateRepository struct{ db *sql.DB }

func NewCertificateRepository(db *sql.DB) outbound.CertificateRepository {
	return &CertificateRepository{db: db}
}

// certificateSelect aggregates the holders of each certificate into one array column.
const certificateSelect = `
	SELECT c.id, c.name, c.description, c.created_at, c.updated_at,
		COALESCE(array_agg(cw.worker_id ORDER BY cw.worker_id) FILTER (WHERE cw.worker_id IS NOT NULL), '{}') AS worker_ids
	FROM certificates c
	LEFT JOIN certificate_workers cw ON cw.certificate_id = c.id
`

func scanCertificate(row interface{ Scan(...any) error }) (*entity.Certificate, error) {
	var c entity.Certificate
	var workerIDs pq.StringArray
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt, &workerIDs); err != nil {
		return nil, err
	}
	c.WorkerIDs = []string(workerIDs)
	if c.WorkerIDs == nil {
		c.WorkerIDs = []string{}
	}
	return &c, nil
}

func (r *CertificateRepository) Create(ctx context.Context, c *entity.Certificate) error {
	query := `INSERT INTO certificates (id, name, description, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Description, c.CreatedAt, c.UpdatedAt)
	return mapError("create certificate", err)
}

func (r *CertificateRepository) FindByID(ctx context.Context, id string) (*entity.Certificate, error) {
	query := certificateSelect + ` WHERE c.id = $1 GROUP BY c.id`
	c, err := scanCertificate(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError("find certificate", err)
	}
	return c, nil
}

func (r *CertificateRepository) FindAll(ctx context.Context) ([]*entity.Certificate, error) {
	rows, err := r.db.QueryContext(ctx, certificateSelect+` GROUP BY c.id ORDER BY c.name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	defer rows.Close()

	certificates := []*entity.Certificate{}
	for rows.Next() {
		c, err := scanCertificate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan certificate: %w", err)
		}
		certificates = append(certificates, c)
	}
	return certificates, rows.Err()
}

func (r *CertificateRepository) Update(ctx context.Context, c *entity.Certificate) error {
	query := `UPDATE certificates SET name = $2, description = $3, updated_at = $4 WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Description, c.UpdatedAt)
	if err != nil {
		return mapError("update certificate", err)
	}
	return expectRow(result)
}

func (r *CertificateRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM certificates WHERE id = $1`, id)
	if err != nil {
		return mapError("delete certificate", err)
	}
	return expectRow(result)
}

// AddWorker is idempotent for a worker that already holds the certificate.
func (r *CertificateRepository) AddWorker(ctx context.Context, certificateID, workerID string) error {
	return withTx(ctx, r.db, "add certificate worker", func(tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM certificates WHERE id = $1)`, certificateID).Scan(&exists)
		if err != nil {
			return mapError("find certificate", err)
		}
		if !exists {
			return outbound.ErrNotFound
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO certificate_workers (certificate_id, worker_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			certificateID, workerID,
		)
		return mapError("add certificate worker", err)
	})
}

func (r *CertificateRepository) RemoveWorker(ctx context.Context, certificateID, workerID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM certificate_workers WHERE certificate_id = $1 AND worker_id = $2`,
		certificateID, workerID,
	)
	if err != nil {
		return mapError("remove certificate worker", err)
	}
	return expectRow(result)
}
