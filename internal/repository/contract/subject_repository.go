package contract

import (
	"context"

	"github.com/kilhoshin/aissam/internal/entity"
	"github.com/kilhoshin/aissam/internal/repository/specification"
)

type SubjectRepository interface {
	Create(ctx context.Context, subject *entity.Subject) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subject, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subject, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
