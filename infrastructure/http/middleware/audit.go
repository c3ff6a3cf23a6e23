package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/pradera/pradera/domain/entity"
	"github.com/pradera/pradera/infrastructure/http/response"
	"github.com/pradera/pradera/infrastructure/metrics"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

const DefaultAuditWriteTimeout = 5 * time.Second

// AuditRecorder persists audit records.
type AuditRecorder interface {
	Record(ctx context.Context, record *entity.AuditRecord) error
}

// AuditMiddleware records successful mutations. Records are written in the
// background and never affect the response.
type AuditMiddleware struct {
	recorder AuditRecorder
	logger   logger.Logger
	metrics  *metrics.Metrics
	timeout  time.Duration
	wg       sync.WaitGroup
}

func NewAuditMiddleware(recorder AuditRecorder, log logger.Logger, m *metrics.Metrics, timeout time.Duration) *AuditMiddleware {
	if timeout <= 0 {
		timeout = DefaultAuditWriteTimeout
	}
	return &AuditMiddleware{
		recorder: recorder,
		logger:   log,
		metrics:  m,
		timeout:  timeout,
	}
}

// Record wraps next so that a 2xx response produces one audit record of
// action on entityKind.
func (m *AuditMiddleware) Record(action entity.AuditAction, entityKind string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body []byte
			if r.Body != nil {
				var err error
				body, err = io.ReadAll(r.Body)
				_ = r.Body.Close()
				if IsBodyTooLarge(err) {
					response.Error(w, http.StatusRequestEntityTooLarge, "Request body too large")
					return
				}
				if err != nil {
					m.logger.Warn(r.Context(), "Failed to buffer request body for audit", map[string]interface{}{
						"path":  r.URL.Path,
						"error": err.Error(),
					})
				}
				r.Body = io.NopCloser(bytes.NewReader(body))
			}

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status < 200 || rec.status > 299 {
				return
			}

			claims := GetUserClaims(r.Context())
			if claims == nil || claims.UserID == "" {
				return
			}

			record := buildAuditRecord(action, entityKind, claims.UserID, mux.Vars(r)["id"], body)
			m.write(r.Context(), record)
		})
	}
}

// Wait blocks until every audit write started so far has finished.
func (m *AuditMiddleware) Wait() {
	m.wg.Wait()
}

func (m *AuditMiddleware) write(reqCtx context.Context, record *entity.AuditRecord) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(reqCtx), m.timeout)
		defer cancel()

		err := m.recorder.Record(ctx, record)
		if err != nil {
			m.metrics.IncAuditWriteFailure(string(record.Action), record.EntityKind)
		} else {
			m.metrics.IncAuditWritten(string(record.Action), record.EntityKind)
		}

		fields := map[string]interface{}{"user_id": record.ActorID}
		if record.EntityID != nil {
			fields["entity_id"] = *record.EntityID
		}
		logger.LogAuditEvent(ctx, m.logger, string(record.Action), record.EntityKind, err, fields)
	}()
}

func buildAuditRecord(action entity.AuditAction, entityKind, actorID, pathID string, body []byte) *entity.AuditRecord {
	record := &entity.AuditRecord{
		ActorID:    actorID,
		Action:     action,
		EntityKind: entityKind,
	}

	// Bodies that are not exactly one JSON value contribute nothing.
	var fields map[string]interface{}
	if len(bytes.TrimSpace(body)) > 0 && json.Valid(body) {
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.UseNumber()
		_ = dec.Decode(&fields)
	}

	if id := bodyString(fields, "id"); id != "" {
		record.EntityID = &id
	} else if pathID != "" {
		record.EntityID = &pathID
	}

	if projectID := bodyString(fields, "projectId"); projectID != "" {
		record.ProjectID = &projectID
	} else if crewID := bodyString(fields, "crewId"); crewID != "" {
		record.ProjectID = &crewID
	}

	if action.CapturesPayload() && fields != nil {
		record.Payload = json.RawMessage(body)
	}
	return record
}

func bodyString(fields map[string]interface{}, key string) string {
	switch v := fields[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

// statusRecorder remembers the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.status = code
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.wroteHeader = true
	}
	return r.ResponseWriter.Write(b)
}
