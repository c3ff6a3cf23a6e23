package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
	"github.com/pradera/pradera/infrastructure/metrics"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

type fakeRecorder struct {
	mu      sync.Mutex
	records []*entity.AuditRecord
	err     error
	ctxErr  error
	delay   time.Duration
}

func (f *fakeRecorder) Record(ctx context.Context, record *entity.AuditRecord) error {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ctxErr = ctx.Err()
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, record)
	return nil
}

func (f *fakeRecorder) all() []*entity.AuditRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*entity.AuditRecord(nil), f.records...)
}

type auditCase struct {
	method string
	path   string
	body   string
	status int
	claims *outbound.TokenClaims
}

func serveAudited(t *testing.T, mw *AuditMiddleware, action entity.AuditAction, tc auditCase) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var handlerBody string
	r := mux.NewRouter()
	r.Handle("/api/items", mw.Record(action, "item")(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		b, _ := io.ReadAll(req.Body)
		handlerBody = string(b)
		w.WriteHeader(tc.status)
	})))
	r.Handle("/api/items/{id}", mw.Record(action, "item")(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		b, _ := io.ReadAll(req.Body)
		handlerBody = string(b)
		w.WriteHeader(tc.status)
	})))

	var reqBody io.Reader
	if tc.body != "" {
		reqBody = strings.NewReader(tc.body)
	}
	req := httptest.NewRequest(tc.method, tc.path, reqBody)
	if tc.claims != nil {
		req = req.WithContext(WithUserClaims(req.Context(), tc.claims))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	mw.Wait()
	return rec, handlerBody
}

var auditActor = &outbound.TokenClaims{UserID: "user-1", Role: "SUPERVISOR"}

func TestAuditMiddleware_RecordsSuccessfulCreate(t *testing.T) {
	recorder := &fakeRecorder{}
	m := metrics.New()
	mw := NewAuditMiddleware(recorder, logger.NewNopLogger(), m, time.Second)

	body := `{"name":"Torre A","projectId":"p-1","crewId":"c-1"}`
	rec, seen := serveAudited(t, mw, entity.AuditActionCreate, auditCase{
		method: http.MethodPost, path: "/api/items", body: body, status: http.StatusCreated, claims: auditActor,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, body, seen, "handler must see the full body")

	records := recorder.all()
	require.Len(t, records, 1)
	got := records[0]
	assert.Equal(t, "user-1", got.ActorID)
	assert.Equal(t, entity.AuditActionCreate, got.Action)
	assert.Equal(t, "item", got.EntityKind)
	assert.Nil(t, got.EntityID)
	require.NotNil(t, got.ProjectID)
	assert.Equal(t, "p-1", *got.ProjectID)
	assert.JSONEq(t, body, string(got.Payload))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuditWritten.WithLabelValues("CREATE", "item")))
}

func TestAuditMiddleware_FieldPrecedence(t *testing.T) {
	tests := []struct {
		name          string
		action        entity.AuditAction
		method        string
		path          string
		body          string
		wantEntityID  *string
		wantProjectID *string
		wantPayload   bool
	}{
		{
			name:   "body id wins over path id",
			action: entity.AuditActionUpdate, method: http.MethodPut, path: "/api/items/path-id",
			body:         `{"id":"body-id"}`,
			wantEntityID: strRef("body-id"), wantPayload: true,
		},
		{
			name:   "path id when body has none",
			action: entity.AuditActionUpdate, method: http.MethodPut, path: "/api/items/path-id",
			body:         `{"name":"x"}`,
			wantEntityID: strRef("path-id"), wantPayload: true,
		},
		{
			name:   "crew id used as project id fallback",
			action: entity.AuditActionUpdate, method: http.MethodPut, path: "/api/items/path-id",
			body:         `{"crewId":"c-9"}`,
			wantEntityID: strRef("path-id"), wantProjectID: strRef("c-9"), wantPayload: true,
		},
		{
			name:   "trailing data is not captured",
			action: entity.AuditActionUpdate, method: http.MethodPut, path: "/api/items/path-id",
			body:         `{"id":"body-id","projectId":"p"} trailing`,
			wantEntityID: strRef("path-id"),
		},
		{
			name:   "delete keeps no payload",
			action: entity.AuditActionDelete, method: http.MethodDelete, path: "/api/items/path-id",
			wantEntityID: strRef("path-id"),
		},
		{
			name:   "delete with body still has no payload",
			action: entity.AuditActionDelete, method: http.MethodDelete, path: "/api/items/path-id",
			body:         `{"projectId":"p-2"}`,
			wantEntityID: strRef("path-id"), wantProjectID: strRef("p-2"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &fakeRecorder{}
			mw := NewAuditMiddleware(recorder, logger.NewNopLogger(), nil, time.Second)

			serveAudited(t, mw, tt.action, auditCase{
				method: tt.method, path: tt.path, body: tt.body, status: http.StatusOK, claims: auditActor,
			})

			records := recorder.all()
			require.Len(t, records, 1)
			got := records[0]
			assert.Equal(t, tt.wantEntityID, got.EntityID)
			assert.Equal(t, tt.wantProjectID, got.ProjectID)
			if tt.wantPayload {
				assert.JSONEq(t, tt.body, string(got.Payload))
			} else {
				assert.Nil(t, got.Payload)
			}
		})
	}
}

func TestAuditMiddleware_SkipsWithoutRecord(t *testing.T) {
	tests := []struct {
		name   string
		status int
		claims *outbound.TokenClaims
	}{
		{"client error", http.StatusBadRequest, auditActor},
		{"not found", http.StatusNotFound, auditActor},
		{"server error", http.StatusInternalServerError, auditActor},
		{"redirect", http.StatusFound, auditActor},
		{"no actor", http.StatusCreated, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &fakeRecorder{}
			mw := NewAuditMiddleware(recorder, logger.NewNopLogger(), nil, time.Second)

			rec, _ := serveAudited(t, mw, entity.AuditActionCreate, auditCase{
				method: http.MethodPost, path: "/api/items", body: `{"name":"x"}`, status: tt.status, claims: tt.claims,
			})

			assert.Equal(t, tt.status, rec.Code)
			assert.Empty(t, recorder.all())
		})
	}
}

func TestAuditMiddleware_FailureDoesNotChangeResponse(t *testing.T) {
	recorder := &fakeRecorder{err: errors.New("connection refused")}
	m := metrics.New()
	mw := NewAuditMiddleware(recorder, logger.NewNopLogger(), m, time.Second)

	rec, _ := serveAudited(t, mw, entity.AuditActionDelete, auditCase{
		method: http.MethodDelete, path: "/api/items/i-1", status: http.StatusOK, claims: auditActor,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, recorder.all())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AuditWriteFailures.WithLabelValues("DELETE", "item")))
}

func TestAuditMiddleware_OversizedBody(t *testing.T) {
	recorder := &fakeRecorder{}
	mw := NewAuditMiddleware(recorder, logger.NewNopLogger(), nil, time.Second)

	called := false
	handler := BodyLimit(16)(mw.Record(entity.AuditActionCreate, "item")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusCreated)
	})))

	req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(`{"name":"`+strings.Repeat("x", 64)+`"}`))
	req = req.WithContext(WithUserClaims(req.Context(), auditActor))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	mw.Wait()

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.False(t, called)
	assert.Empty(t, recorder.all())
}

func TestAuditMiddleware_WriteOutlivesRequest(t *testing.T) {
	recorder := &fakeRecorder{delay: 20 * time.Millisecond}
	mw := NewAuditMiddleware(recorder, logger.NewNopLogger(), nil, time.Second)

	handler := mw.Record(entity.AuditActionCreate, "item")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	ctx, cancel := context.WithCancel(WithUserClaims(context.Background(), auditActor))
	req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(`{"name":"x"}`)).WithContext(ctx)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	cancel()

	mw.Wait()
	require.Len(t, recorder.all(), 1)
	assert.NoError(t, recorder.ctxErr)
}

func strRef(s string) *string { return &s }
