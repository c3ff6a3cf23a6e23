package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
	domainerr "github.com/pradera/pradera/domain/error"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

func TestSendMessage_ConversationIsSymmetric(t *testing.T) {
	repo := newFakeCommunicationRepo()
	uc := NewCommunicationUseCase(repo, logger.NewNopLogger(), testOptions())
	ctx := context.Background()

	alice := outbound.TokenClaims{UserID: "u-b"}
	bob := outbound.TokenClaims{UserID: "u-a"}

	first, err := uc.SendMessage(ctx, alice, inbound.MessageInput{ReceiverID: bob.UserID, Content: "hola"})
	require.NoError(t, err)
	reply, err := uc.SendMessage(ctx, bob, inbound.MessageInput{ReceiverID: alice.UserID, Content: "buenas"})
	require.NoError(t, err)

	assert.Equal(t, "u-a_u-b", first.ConversationID)
	assert.Equal(t, first.ConversationID, reply.ConversationID)
	assert.Equal(t, alice.UserID, first.SenderID)

	messages, err := uc.ListMessages(ctx, outbound.MessageFilter{ConversationID: first.ConversationID})
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}

func TestSendMessage_Validation(t *testing.T) {
	uc := NewCommunicationUseCase(newFakeCommunicationRepo(), logger.NewNopLogger(), testOptions("idiota"))
	ctx := context.Background()

	_, err := uc.SendMessage(ctx, actor, inbound.MessageInput{Content: "hola"})
	requireAppError(t, err, domainerr.ErrCodeMissingField)

	_, err = uc.SendMessage(ctx, actor, inbound.MessageInput{ReceiverID: "u2", Content: "eres un Idiota"})
	requireAppError(t, err, domainerr.ErrCodeBannedContent)
}

func TestCommunicationRequestLifecycle(t *testing.T) {
	repo := newFakeCommunicationRepo()
	uc := NewCommunicationUseCase(repo, logger.NewNopLogger(), testOptions())
	ctx := context.Background()

	request, err := uc.CreateRequest(ctx, actor, inbound.CommunicationRequestInput{
		RequestType: "EPP",
		Description: "faltan guantes",
		CrewID:      "c1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.UrgencyNormal, request.Urgency)
	assert.Equal(t, entity.RequestStatusPending, request.Status)
	assert.Equal(t, actor.UserID, request.SenderID)

	answered, err := uc.UpdateRequest(ctx, actor, request.ID, inbound.CommunicationRequestInput{
		Status: entity.RequestStatusApproved,
		Answer: strPtr("llegan el lunes"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusApproved, answered.Status)
	require.NotNil(t, answered.Answer)
	assert.Equal(t, "faltan guantes", answered.Description)

	_, err = uc.UpdateRequest(ctx, actor, request.ID, inbound.CommunicationRequestInput{Status: "ARCHIVADA"})
	requireAppError(t, err, domainerr.ErrCodeInvalidValue)

	_, err = uc.CreateRequest(ctx, actor, inbound.CommunicationRequestInput{RequestType: "EPP"})
	appErr := requireAppError(t, err, domainerr.ErrCodeMissingField)
	assert.Equal(t, "description and crewId are required", appErr.Message)
}
