package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/pradera/pradera/application/port/outbound"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"no rows", sql.ErrNoRows, outbound.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", sql.ErrNoRows), outbound.ErrNotFound},
		{"unique violation", &pq.Error{Code: "23505", Constraint: "workers_rut_key"}, outbound.ErrDuplicate},
		{"foreign key violation", &pq.Error{Code: "23503", Constraint: "crews_project_id_fkey"}, outbound.ErrReferenceViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapError("do thing", tt.err), tt.want)
		})
	}
}

func TestMapError_PassThrough(t *testing.T) {
	assert.NoError(t, mapError("noop", nil))

	boom := errors.New("connection refused")
	err := mapError("create crew", boom)
	assert.ErrorIs(t, err, boom)
	assert.EqualError(t, err, "failed to create crew: connection refused")

	err = mapError("create crew", &pq.Error{Code: "23514", Message: "check violation"})
	assert.False(t, errors.Is(err, outbound.ErrDuplicate))
	assert.False(t, errors.Is(err, outbound.ErrReferenceViolation))
}

type fakeResult int64

func (fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) {
	return int64(r), nil
}

func TestExpectRow(t *testing.T) {
	assert.NoError(t, expectRow(fakeResult(1)))
	assert.ErrorIs(t, expectRow(fakeResult(0)), outbound.ErrNotFound)
}
