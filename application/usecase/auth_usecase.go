package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/pradera/pradera/application/port/inbound"
	"github.com/pradera/pradera/application/port/outbound"
	"github.com/pradera/pradera/domain/entity"
	domainerr "github.com/pradera/pradera/domain/error"
	"github.com/pradera/pradera/domain/valueobject"
	"github.com/pradera/pradera/infrastructure/service/logger"
)

type AuthUseCase struct {
	userRepository  outbound.UserRepository
	tokenService    outbound.TokenService
	passwordService outbound.PasswordService
	logger          logger.Logger
	tokenTTL        time.Duration
	opts            Options
}

func NewAuthUseCase(
	userRepo outbound.UserRepository,
	tokenService outbound.TokenService,
	passwordService outbound.PasswordService,
	log logger.Logger,
	tokenTTL time.Duration,
	opts Options,
) *AuthUseCase {
	return &AuthUseCase{
		userRepository:  userRepo,
		tokenService:    tokenService,
		passwordService: passwordService,
		logger:          log,
		tokenTTL:        tokenTTL,
		opts:            opts.withDefaults(),
	}
}

var _ inbound.AuthUseCase = (*AuthUseCase)(nil)

func (uc *AuthUseCase) Register(ctx context.Context, req inbound.RegisterRequest) (*inbound.RegisterResponse, error) {
	return uc.CreateUser(ctx, req, entity.RoleWorker)
}

func (uc *AuthUseCase) CreateUser(ctx context.Context, req inbound.RegisterRequest, role string) (*inbound.RegisterResponse, error) {
	if err := requireFields(
		field{"name", req.Name},
		field{"email", req.Email},
		field{"password", req.Password},
	); err != nil {
		return nil, err
	}

	credentials, err := valueobject.NewCredentials(req.Email, req.Password)
	switch {
	case errors.Is(err, valueobject.ErrInvalidEmail):
		return nil, domainerr.ErrInvalidEmail(req.Email)
	case errors.Is(err, valueobject.ErrPasswordTooShort):
		return nil, domainerr.ErrInvalidPassword("")
	case err != nil:
		return nil, domainerr.ErrInvalidRequest(err.Error())
	}

	if !entity.IsValidRole(role) {
		return nil, domainerr.ErrInvalidValue("role", role)
	}

	exists, err := uc.userRepository.ExistsByEmail(ctx, credentials.Email())
	if err != nil {
		return nil, domainerr.ErrDatabaseError("check email", err)
	}
	if exists {
		return nil, domainerr.ErrEmailAlreadyExists(credentials.Email())
	}

	hash, err := uc.passwordService.HashPassword(credentials.Password())
	if err != nil {
		return nil, domainerr.ErrInternalServerError("hash password", err)
	}

	user := entity.NewUser(uc.opts.NewID(), req.Name, credentials.Email(), hash, role)
	if err := uc.userRepository.Create(ctx, user); err != nil {
		if errors.Is(err, outbound.ErrDuplicate) {
			return nil, domainerr.ErrEmailAlreadyExists(credentials.Email())
		}
		return nil, domainerr.ErrDatabaseError("create user", err)
	}

	logger.LogAuthEvent(ctx, uc.logger, "register", user.ID, "", true, map[string]interface{}{"role": role})
	return &inbound.RegisterResponse{ID: user.ID, Email: user.Email}, nil
}

// Login answers unknown emails and wrong passwords with the same error.
func (uc *AuthUseCase) Login(ctx context.Context, req inbound.LoginRequest) (*inbound.LoginResponse, error) {
	if err := requireFields(field{"email", req.Email}, field{"password", req.Password}); err != nil {
		return nil, err
	}

	credentials, err := valueobject.NewCredentials(req.Email, req.Password)
	if err != nil {
		logger.LogAuthEvent(ctx, uc.logger, "login_invalid_format", "", "", false, nil)
		return nil, domainerr.ErrInvalidCredentials("")
	}

	user, err := uc.userRepository.FindByEmail(ctx, credentials.Email())
	if err != nil {
		return nil, domainerr.ErrDatabaseError("find user", err)
	}
	if user == nil {
		logger.LogAuthEvent(ctx, uc.logger, "login_failed_user_not_found", "", "", false, map[string]interface{}{
			"email": credentials.Email(),
		})
		return nil, domainerr.ErrInvalidCredentials("")
	}

	ok, err := uc.passwordService.VerifyPassword(credentials.Password(), user.Password)
	if err != nil {
		uc.logger.Error(ctx, "Password verification error", err, map[string]interface{}{"user_id": user.ID})
		return nil, domainerr.ErrInvalidCredentials("")
	}
	if !ok {
		logger.LogAuthEvent(ctx, uc.logger, "login_failed_invalid_password", user.ID, "", false, nil)
		return nil, domainerr.ErrInvalidCredentials("")
	}

	token, err := uc.tokenService.GenerateAccessToken(outbound.TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, domainerr.ErrInternalServerError("issue token", err)
	}

	logger.LogAuthEvent(ctx, uc.logger, "login_success", user.ID, "", true, nil)
	return &inbound.LoginResponse{
		Token:     token,
		ExpiresIn: int(uc.tokenTTL.Seconds()),
		User:      user,
	}, nil
}

func (uc *AuthUseCase) Me(ctx context.Context, actor outbound.TokenClaims) (*entity.User, error) {
	user, err := uc.userRepository.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, mapRepoError("user", actor.UserID, "get user", err)
	}
	return user, nil
}

func (uc *AuthUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := uc.userRepository.FindAll(ctx)
	return users, mapRepoError("user", "", "list users", err)
}
