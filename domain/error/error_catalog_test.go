package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", ErrInvalidToken("bad signature"), http.StatusUnauthorized},
		{"missing field", ErrMissingField("name"), http.StatusBadRequest},
		{"invalid rut", ErrInvalidRUT("1-1"), http.StatusBadRequest},
		{"rate limit", ErrRateLimitExceeded(5, "15m"), http.StatusTooManyRequests},
		{"not found", ErrResourceNotFound("Project", "p1"), http.StatusNotFound},
		{"duplicate", ErrDuplicateResource("Worker", nil), http.StatusConflict},
		{"reference", ErrReferenceViolation("Crew", nil), http.StatusConflict},
		{"database", ErrDatabaseError("insert", errors.New("boom")), http.StatusInternalServerError},
		{"wrapped app error", fmt.Errorf("create: %w", ErrMissingField("title")), http.StatusBadRequest},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatusCode(tt.err))
		})
	}
}

func TestErrMissingFieldMessage(t *testing.T) {
	assert.Equal(t, "name is required", ErrMissingField("name").Message)
	assert.Equal(t, "crewId and title are required", ErrMissingField("crewId", "title").Message)
	assert.Equal(t, "name, tipo_obra and zona_trabajo are required", ErrMissingField("name", "tipo_obra", "zona_trabajo").Message)
}

func TestErrOutOfRangeMessage(t *testing.T) {
	assert.Equal(t, "duracion_estimada cannot be lower than 0", ErrOutOfRange("duracion_estimada", 0, 0).Message)
	assert.Equal(t, "experiencia must be between 0 and 60", ErrOutOfRange("experiencia", 0, 60).Message)
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := ErrDatabaseError("select", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "DB_5001")
}
