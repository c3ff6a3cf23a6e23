package entity

import (
	"sort"
	"strings"
	"time"
)

const (
	RequestStatusPending  = "PENDIENTE"
	RequestStatusApproved = "APROBADA"
	RequestStatusRejected = "RECHAZADA"

	UrgencyNormal = "NORMAL"
)

type Message struct {
	ID             string    `json:"id"`
	SenderID       string    `json:"senderId"`
	ReceiverID     string    `json:"receiverId"`
	Content        string    `json:"content"`
	ConversationID string    `json:"conversationId"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ConversationID is stable for a pair of users regardless of who sends.
func ConversationID(userA, userB string) string {
	ids := []string{userA, userB}
	sort.Strings(ids)
	return strings.Join(ids, "_")
}

// CommunicationRequest is a crew request raised to supervision.
type CommunicationRequest struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	RequestType string    `json:"requestType"`
	Description string    `json:"description"`
	Urgency     string    `json:"urgency"`
	CrewID      string    `json:"crewId"`
	Status      string    `json:"estado"`
	Answer      *string   `json:"respuesta"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func IsValidRequestStatus(status string) bool {
	switch status {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected:
		return true
	}
	return false
}
