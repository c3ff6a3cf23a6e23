package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
	domainerr "github.com/pradera/pradera/domain/error"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

func newAuthUseCase(t *testing.T) (*AuthUseCase, *fakeUserRepo, *fakeTokenService) {
	t.Helper()
	users := newFakeUserRepo()
	tokens := &fakeTokenService{}
	uc := NewAuthUseCase(users, tokens, fakePasswordService{}, logger.NewNopLogger(), 24*time.Hour, testOptions())
	return uc, users, tokens
}

func TestRegister(t *testing.T) {
	uc, users, _ := newAuthUseCase(t)

	resp, err := uc.Register(context.Background(), inbound.RegisterRequest{
		Name:     "Ana Rojas",
		Email:    "  Ana@Pradera.CL ",
		Password: "hormigon123",
	})
	require.NoError(t, err)

	assert.Equal(t, "ana@pradera.cl", resp.Email)
	stored := users.users[resp.ID]
	require.NotNil(t, stored)
	assert.Equal(t, entity.RoleWorker, stored.Role)
	assert.Equal(t, "hashed:hormigon123", stored.Password)
}

func TestRegister_Rejections(t *testing.T) {
	tests := []struct {
		name string
		req  inbound.RegisterRequest
		code domainerr.ErrorCode
	}{
		{"missing name", inbound.RegisterRequest{Email: "a@b.cl", Password: "12345678"}, domainerr.ErrCodeMissingField},
		{"bad email", inbound.RegisterRequest{Name: "A", Email: "nope", Password: "12345678"}, domainerr.ErrCodeInvalidEmail},
		{"short password", inbound.RegisterRequest{Name: "A", Email: "a@b.cl", Password: "1234"}, domainerr.ErrCodeInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, users, _ := newAuthUseCase(t)
			_, err := uc.Register(context.Background(), tt.req)
			requireAppError(t, err, tt.code)
			assert.Empty(t, users.users)
		})
	}
}

func TestRegister_IgnoresRequestedRole(t *testing.T) {
	uc, users, _ := newAuthUseCase(t)

	body := []byte(`{"name":"Intruso","email":"x@b.cl","password":"12345678","role":"ADMIN"}`)
	var req inbound.RegisterRequest
	require.NoError(t, json.Unmarshal(body, &req))

	resp, err := uc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleWorker, users.users[resp.ID].Role)
}

func TestCreateUser(t *testing.T) {
	uc, users, _ := newAuthUseCase(t)
	ctx := context.Background()

	resp, err := uc.CreateUser(ctx, inbound.RegisterRequest{Name: "Jefa", Email: "jefa@b.cl", Password: "12345678"}, entity.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, users.users[resp.ID].Role)

	_, err = uc.CreateUser(ctx, inbound.RegisterRequest{Name: "B", Email: "b@b.cl", Password: "12345678"}, "JEFE")
	requireAppError(t, err, domainerr.ErrCodeInvalidValue)
	assert.Len(t, users.users, 1)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _, _ := newAuthUseCase(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, inbound.RegisterRequest{Name: "A", Email: "a@b.cl", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.Register(ctx, inbound.RegisterRequest{Name: "B", Email: "A@B.cl", Password: "87654321"})
	requireAppError(t, err, domainerr.ErrCodeEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	uc, _, tokens := newAuthUseCase(t)
	ctx := context.Background()

	reg, err := uc.CreateUser(ctx, inbound.RegisterRequest{Name: "A", Email: "a@b.cl", Password: "12345678"}, entity.RoleSupervisor)
	require.NoError(t, err)

	resp, err := uc.Login(ctx, inbound.LoginRequest{Email: "a@b.cl", Password: "12345678"})
	require.NoError(t, err)

	assert.Equal(t, "token-for-"+reg.ID, resp.Token)
	assert.Equal(t, 86400, resp.ExpiresIn)
	assert.Equal(t, reg.ID, resp.User.ID)
	require.Len(t, tokens.issued, 1)
	assert.Equal(t, entity.RoleSupervisor, tokens.issued[0].Role)
}

func TestLogin_FailuresLookTheSame(t *testing.T) {
	uc, _, tokens := newAuthUseCase(t)
	ctx := context.Background()

	_, err := uc.Register(ctx, inbound.RegisterRequest{Name: "A", Email: "a@b.cl", Password: "12345678"})
	require.NoError(t, err)

	for _, req := range []inbound.LoginRequest{
		{Email: "a@b.cl", Password: "wrong-password"},
		{Email: "ghost@b.cl", Password: "12345678"},
		{Email: "not-an-email", Password: "12345678"},
	} {
		_, err := uc.Login(ctx, req)
		appErr := requireAppError(t, err, domainerr.ErrCodeInvalidCredentials)
		assert.Equal(t, "Invalid credentials", appErr.Message)
	}
	assert.Empty(t, tokens.issued)

	_, err = uc.Login(ctx, inbound.LoginRequest{Email: "a@b.cl"})
	requireAppError(t, err, domainerr.ErrCodeMissingField)
}

func TestMe(t *testing.T) {
	uc, _, _ := newAuthUseCase(t)
	ctx := context.Background()

	reg, err := uc.Register(ctx, inbound.RegisterRequest{Name: "A", Email: "a@b.cl", Password: "12345678"})
	require.NoError(t, err)

	user, err := uc.Me(ctx, outbound.TokenClaims{UserID: reg.ID})
	require.NoError(t, err)
	assert.Equal(t, "a@b.cl", user.Email)

	_, err = uc.Me(ctx, outbound.TokenClaims{UserID: "deleted"})
	requireAppError(t, err, domainerr.ErrCodeResourceNotFound)
}
