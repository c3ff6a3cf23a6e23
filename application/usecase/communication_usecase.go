package usecase

import (
	"context"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
	domainerr "github.com/pradera/pradera/domain/error"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

type CommunicationUseCase struct {
	communication outbound.CommunicationRepository
	logger        logger.Logger
	opts          Options
}

func NewCommunicationUseCase(communication outbound.CommunicationRepository, log logger.Logger, opts Options) *CommunicationUseCase {
	return &CommunicationUseCase{communication: communication, logger: log, opts: opts.withDefaults()}
}

var _ inbound.CommunicationUseCase = (*CommunicationUseCase)(nil)

func (uc *CommunicationUseCase) ListMessages(ctx context.Context, filter outbound.MessageFilter) ([]*entity.Message, error) {
	messages, err := uc.communication.FindMessages(ctx, filter)
	return messages, mapRepoError("message", "", "list messages", err)
}

// SendMessage stores a direct message from the actor. Both directions of a
// conversation share one conversation id.
func (uc *CommunicationUseCase) SendMessage(ctx context.Context, actor outbound.TokenClaims, in inbound.MessageInput) (*entity.Message, error) {
	if err := requireFields(field{"receiverId", in.ReceiverID}, field{"content", in.Content}); err != nil {
		return nil, err
	}
	if err := checkBanned(uc.opts.BannedWords, field{"content", in.Content}); err != nil {
		return nil, err
	}

	message := &entity.Message{
		ID:             uc.opts.NewID(),
		SenderID:       actor.UserID,
		ReceiverID:     in.ReceiverID,
		Content:        in.Content,
		ConversationID: entity.ConversationID(actor.UserID, in.ReceiverID),
		CreatedAt:      uc.opts.Now(),
	}
	if err := uc.communication.CreateMessage(ctx, message); err != nil {
		return nil, mapRepoError("message", message.ID, "create message", err)
	}

	uc.logger.Debug(ctx, "Message sent", map[string]interface{}{
		"message_id":      message.ID,
		"conversation_id": message.ConversationID,
	})
	return message, nil
}

func (uc *CommunicationUseCase) ListRequests(ctx context.Context, filter outbound.RequestFilter) ([]*entity.CommunicationRequest, error) {
	requests, err := uc.communication.FindRequests(ctx, filter)
	return requests, mapRepoError("request", "", "list requests", err)
}

func (uc *CommunicationUseCase) CreateRequest(ctx context.Context, actor outbound.TokenClaims, in inbound.CommunicationRequestInput) (*entity.CommunicationRequest, error) {
	if err := requireFields(
		field{"requestType", in.RequestType},
		field{"description", in.Description},
		field{"crewId", in.CrewID},
	); err != nil {
		return nil, err
	}
	if err := uc.checkContent(in); err != nil {
		return nil, err
	}

	urgency := in.Urgency
	if urgency == "" {
		urgency = entity.UrgencyNormal
	}
	now := uc.opts.Now()
	request := &entity.CommunicationRequest{
		ID:          uc.opts.NewID(),
		SenderID:    actor.UserID,
		RequestType: in.RequestType,
		Description: in.Description,
		Urgency:     urgency,
		CrewID:      in.CrewID,
		Status:      entity.RequestStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.communication.CreateRequest(ctx, request); err != nil {
		return nil, mapRepoError("request", request.ID, "create request", err)
	}

	uc.logger.Info(ctx, "Request created", map[string]interface{}{
		"request_id": request.ID,
		"crew_id":    request.CrewID,
		"urgency":    request.Urgency,
		"user_id":    actor.UserID,
	})
	return request, nil
}

func (uc *CommunicationUseCase) UpdateRequest(ctx context.Context, actor outbound.TokenClaims, id string, in inbound.CommunicationRequestInput) (*entity.CommunicationRequest, error) {
	if in.Status != "" && !entity.IsValidRequestStatus(in.Status) {
		return nil, domainerr.ErrInvalidValue("estado", in.Status)
	}
	if err := uc.checkContent(in); err != nil {
		return nil, err
	}

	request, err := uc.communication.FindRequestByID(ctx, id)
	if err != nil {
		return nil, mapRepoError("request", id, "get request", err)
	}
	if in.RequestType != "" {
		request.RequestType = in.RequestType
	}
	if in.Description != "" {
		request.Description = in.Description
	}
	if in.Urgency != "" {
		request.Urgency = in.Urgency
	}
	if in.CrewID != "" {
		request.CrewID = in.CrewID
	}
	if in.Status != "" {
		request.Status = in.Status
	}
	if v := nonEmpty(in.Answer); v != nil {
		request.Answer = v
	}
	request.UpdatedAt = uc.opts.Now()

	if err := uc.communication.UpdateRequest(ctx, request); err != nil {
		return nil, mapRepoError("request", id, "update request", err)
	}

	uc.logger.Info(ctx, "Request updated", map[string]interface{}{"request_id": id, "estado": request.Status, "user_id": actor.UserID})
	return request, nil
}

func (uc *CommunicationUseCase) DeleteRequest(ctx context.Context, actor outbound.TokenClaims, id string) error {
	if err := uc.communication.DeleteRequest(ctx, id); err != nil {
		return mapRepoError("request", id, "delete request", err)
	}
	uc.logger.Info(ctx, "Request deleted", map[string]interface{}{"request_id": id, "user_id": actor.UserID})
	return nil
}

func (uc *CommunicationUseCase) checkContent(in inbound.CommunicationRequestInput) error {
	var answer string
	if in.Answer != nil {
		answer = *in.Answer
	}
	return checkBanned(uc.opts.BannedWords,
		field{"description", in.Description},
		field{"respuesta", answer},
	)
}
