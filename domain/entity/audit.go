package entity

import (
	"encoding/json"
	"time"
)

// AuditAction is the kind of mutation an audit record describes.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

// AuditActions lists every action in reporting order.
var AuditActions = []AuditAction{AuditActionCreate, AuditActionUpdate, AuditActionDelete}

func (a AuditAction) Valid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}

// CapturesPayload reports whether records of this action keep a body snapshot.
func (a AuditAction) CapturesPayload() bool {
	return a == AuditActionCreate || a == AuditActionUpdate
}

// AuditRecord is an append-only entry describing who changed what.
type AuditRecord struct {
	ID         string          `json:"id"`
	ActorID    string          `json:"userId"`
	Action     AuditAction     `json:"action"`
	EntityKind string          `json:"entity"`
	EntityID   *string         `json:"entityId"`
	ProjectID  *string         `json:"projectId"`
	Payload    json.RawMessage `json:"changes"`
	RecordedAt time.Time       `json:"createdAt"`
}
