package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/application/usecase"
	"github.com/pradera/pradera/domain/entity"
	"github.com/pradera/pradera/infrastructure/config"
	"github.com/pradera/pradera/infrastructure/http/response"
	"github.com/pradera/pradera/infrastructure/metrics"
	"github.com/pradera/pradera/infrastructure/service/jwt"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

type memoryProjects struct {
	mu       sync.Mutex
	projects map[string]*entity.Project
}

func (m *memoryProjects) Create(_ context.Context, project *entity.Project, _ []*entity.Milestone) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.projects[project.ID] = project
	return nil
}

func (m *memoryProjects) FindByID(_ context.Context, id string) (*entity.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.projects[id]; ok {
		return p, nil
	}
	return nil, outbound.ErrNotFound
}

func (m *memoryProjects) FindAll(_ context.Context) ([]*entity.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Project, 0, len(m.projects))
	for _, p := range m.projects {
		out = append(out, p)
	}
	return out, nil
}

func (m *memoryProjects) Update(_ context.Context, project *entity.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.projects[project.ID]; !ok {
		return outbound.ErrNotFound
	}
	m.projects[project.ID] = project
	return nil
}

func (m *memoryProjects) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.projects[id]; !ok {
		return outbound.ErrNotFound
	}
	delete(m.projects, id)
	return nil
}

type memoryAudit struct {
	mu      sync.Mutex
	records []*entity.AuditRecord
}

func (m *memoryAudit) Append(_ context.Context, record *entity.AuditRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, record)
	return nil
}

func (m *memoryAudit) Find(_ context.Context, filter outbound.AuditFilter) ([]*entity.AuditRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.AuditRecord
	for i := len(m.records) - 1; i >= 0; i-- {
		r := m.records[i]
		if filter.EntityKind != "" && r.EntityKind != filter.EntityKind {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *memoryAudit) CountByAction(_ context.Context, _ string, _ time.Time) (map[entity.AuditAction]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := map[entity.AuditAction]int{}
	for _, r := range m.records {
		counts[r.Action]++
	}
	return counts, nil
}

func (m *memoryAudit) all() []*entity.AuditRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*entity.AuditRecord(nil), m.records...)
}

type fixture struct {
	router *Router
	audit  *memoryAudit
	token  string
}

func newFixture(t *testing.T, ping func(context.Context) error) *fixture {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:              "test-secret",
		JWTExpiration:          time.Hour,
		AuditWriteTimeout:      time.Second,
		LogCorrelationIDHeader: "X-Correlation-ID",
		MetricsEnabled:         true,
		CORSEnabled:            true,
		CORSAllowedOrigins:     []string{"http://localhost:5173"},
	}
	tokens, err := jwt.NewJWTService(cfg)
	require.NoError(t, err)

	log := logger.NewNopLogger()
	audit := &memoryAudit{}
	projects := &memoryProjects{projects: map[string]*entity.Project{}}

	router := New(Dependencies{
		Config:   cfg,
		Logger:   log,
		Metrics:  metrics.New(),
		Tokens:   tokens,
		Ping:     ping,
		Projects: usecase.NewProjectUseCase(projects, log, usecase.Options{}),
		Audit:    usecase.NewAuditUseCase(audit, usecase.Options{}),
	})

	token, err := tokens.GenerateAccessToken(outbound.TokenClaims{UserID: "user-1", Email: "jefe@obra.cl", Role: "SUPERVISOR"})
	require.NoError(t, err)

	return &fixture{router: router, audit: audit, token: token}
}

func (f *fixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	f.router.Audit.Wait()
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

const validProject = `{"name":"Edificio Central","tipo_obra":"Edificacion","zona_trabajo":"Santiago"}`

func TestRouter_CreateProjectWithoutToken(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(http.MethodPost, "/api/projects", validProject, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Status)
	assert.Equal(t, "Authorization header required", env.Message)
	assert.Empty(t, f.audit.all())
}

func TestRouter_CreateProjectMissingFields(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(http.MethodPost, "/api/projects", `{"name":"Edificio Central"}`, f.token)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Status)
	assert.Equal(t, "tipo_obra and zona_trabajo are required", env.Message)
	assert.Empty(t, f.audit.all())
}

func TestRouter_CreateProjectIsAudited(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(http.MethodPost, "/api/projects", validProject, f.token)

	require.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Status)

	records := f.audit.all()
	require.Len(t, records, 1)
	assert.Equal(t, entity.AuditActionCreate, records[0].Action)
	assert.Equal(t, "Project", records[0].EntityKind)
	assert.Equal(t, "user-1", records[0].ActorID)
	assert.JSONEq(t, validProject, string(records[0].Payload))

	// The trail is readable through the API.
	rec = f.do(http.MethodGet, "/api/audit?entity=Project", "", f.token)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed struct {
		Data []entity.AuditRecord `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed.Data, 1)
	assert.Equal(t, "user-1", listed.Data[0].ActorID)
}

func TestRouter_UpdateAndDeleteUseThePathID(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(http.MethodPost, "/api/projects", validProject, f.token)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		Data entity.Project `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	id := created.Data.ID
	require.NotEmpty(t, id)

	rec = f.do(http.MethodPut, "/api/projects/"+id, `{"estado":"pausado"}`, f.token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodDelete, "/api/projects/"+id, "", f.token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodDelete, "/api/projects/"+id, "", f.token)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	records := f.audit.all()
	require.Len(t, records, 3)
	for _, r := range records[1:] {
		require.NotNil(t, r.EntityID)
		assert.Equal(t, id, *r.EntityID)
	}
	assert.Equal(t, entity.AuditActionUpdate, records[1].Action)
	assert.NotNil(t, records[1].Payload)
	assert.Equal(t, entity.AuditActionDelete, records[2].Action)
	assert.Nil(t, records[2].Payload)

	rec = f.do(http.MethodGet, "/api/audit/statistics/summary", "", f.token)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats struct {
		Data map[string]int `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, map[string]int{"CREATE": 1, "UPDATE": 1, "DELETE": 1}, stats.Data)
}

func TestRouter_Plumbing(t *testing.T) {
	f := newFixture(t, nil)

	rec := f.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))

	rec = f.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pradera_http_requests_total")

	rec = f.do(http.MethodGet, "/api/nowhere", "", f.token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Status)

	rec = f.do(http.MethodPatch, "/api/projects", "", f.token)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Method not allowed", decodeEnvelope(t, rec).Message)

	rec = f.do(http.MethodPatch, "/api/auth/login", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = f.do(http.MethodGet, "/api/projects/p-1/extra", "", f.token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Route not found", decodeEnvelope(t, rec).Message)

	req := httptest.NewRequest(http.MethodOptions, "/api/projects", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	pre := httptest.NewRecorder()
	f.router.ServeHTTP(pre, req)
	assert.Equal(t, http.StatusNoContent, pre.Code)
	assert.Equal(t, "http://localhost:5173", pre.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_HealthReportsStorage(t *testing.T) {
	f := newFixture(t, func(context.Context) error { return errors.New("db down") })

	rec := f.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
