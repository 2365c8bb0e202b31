package contract

import (
	"context"

	"github.com/kilhoshin/aissam/internal/entity"
	"github.com/kilhoshin/aissam/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
