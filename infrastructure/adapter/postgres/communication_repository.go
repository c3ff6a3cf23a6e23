package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
)

type CommunicationRepository struct{ db *sql.DB }

func NewCommunicationRepository(db *sql.DB) outbound.CommunicationRepository {
	return &CommunicationRepository{db: db}
}

const requestColumns = `id, sender_id, request_type, description, urgency, crew_id, estado, respuesta, created_at, updated_at`

func scanRequest(row interface{ Scan(...any) error }) (*entity.CommunicationRequest, error) {
	var cr entity.CommunicationRequest
	var answer sql.NullString
	err := row.Scan(
		&cr.ID, &cr.SenderID, &cr.RequestType, &cr.Description, &cr.Urgency,
		&cr.CrewID, &cr.Status, &answer, &cr.CreatedAt, &cr.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if answer.Valid {
		cr.Answer = &answer.String
	}
	return &cr, nil
}

func (r *CommunicationRepository) CreateMessage(ctx context.Context, m *entity.Message) error {
	query := `
		INSERT INTO messages (id, sender_id, receiver_id, content, conversation_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query, m.ID, m.SenderID, m.ReceiverID, m.Content, m.ConversationID, m.CreatedAt)
	return mapError("create message", err)
}

// FindMessages returns messages oldest first so a conversation reads in order.
func (r *CommunicationRepository) FindMessages(ctx context.Context, filter outbound.MessageFilter) ([]*entity.Message, error) {
	var c conditions
	c.addIf(filter.ConversationID != "", "conversation_id = $%d", filter.ConversationID)
	c.addIf(filter.UserID != "", "(sender_id = $%[1]d OR receiver_id = $%[1]d)", filter.UserID)
	query := `SELECT id, sender_id, receiver_id, content, conversation_id, created_at FROM messages` +
		c.where() + ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	messages := []*entity.Message{}
	for rows.Next() {
		var m entity.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.ConversationID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

func (r *CommunicationRepository) CreateRequest(ctx context.Context, cr *entity.CommunicationRequest) error {
	query := `
		INSERT INTO communication_requests (id, sender_id, request_type, description, urgency, crew_id, estado, respuesta, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.ExecContext(ctx, query,
		cr.ID, cr.SenderID, cr.RequestType, cr.Description, cr.Urgency, cr.CrewID, cr.Status, cr.Answer, cr.CreatedAt, cr.UpdatedAt,
	)
	return mapError("create request", err)
}

func (r *CommunicationRepository) FindRequestByID(ctx context.Context, id string) (*entity.CommunicationRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM communication_requests WHERE id = $1`
	cr, err := scanRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError("find request", err)
	}
	return cr, nil
}

func (r *CommunicationRepository) FindRequests(ctx context.Context, filter outbound.RequestFilter) ([]*entity.CommunicationRequest, error) {
	var c conditions
	c.addIf(filter.Status != "", "estado = $%d", filter.Status)
	c.addIf(filter.SenderID != "", "sender_id = $%d", filter.SenderID)
	query := `SELECT ` + requestColumns + ` FROM communication_requests` + c.where() + ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	defer rows.Close()

	requests := []*entity.CommunicationRequest{}
	for rows.Next() {
		cr, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}
		requests = append(requests, cr)
	}
	return requests, rows.Err()
}

func (r *CommunicationRepository) UpdateRequest(ctx context.Context, cr *entity.CommunicationRequest) error {
	query := `
		UPDATE communication_requests
		SET request_type = $2, description = $3, urgency = $4, crew_id = $5, estado = $6, respuesta = $7, updated_at = $8
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		cr.ID, cr.RequestType, cr.Description, cr.Urgency, cr.CrewID, cr.Status, cr.Answer, cr.UpdatedAt,
	)
	if err != nil {
		return mapError("update request", err)
	}
	return expectRow(result)
}

func (r *CommunicationRepository) DeleteRequest(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM communication_requests WHERE id = $1`, id)
	if err != nil {
		return mapError("delete request", err)
	}
	return expectRow(result)
}
