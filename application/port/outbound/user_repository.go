package outbound

import (
	"context"

	"github.com/pradera/pradera/domain/entity"
)

var ErrUserNotFound = ErrNotFound

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
	// FindByEmail returns nil, nil when no user has that email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	FindAll(ctx context.Context) ([]*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
