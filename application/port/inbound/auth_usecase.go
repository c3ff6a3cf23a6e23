package inbound

import (
	"context"

	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expires_in"`
	User      *entity.User `json:"user"`
}

type AuthUseCase interface {
	// Register is the public sign-up. It always creates a TRABAJADOR.
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
	// CreateUser is for operator tooling and assigns any known role.
	CreateUser(ctx context.Context, req RegisterRequest, role string) (*RegisterResponse, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Me(ctx context.Context, actor outbound.TokenClaims) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
