package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/kilhoshin/aissam/internal/entity"
	"github.com/kilhoshin/aissam/internal/repository/specification"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// FindRecentQuestions returns the newest text-bearing student questions
	// across all of the user's sessions, oldest first, capped at limit.
	FindRecentQuestions(ctx context.Context, userId uuid.UUID, limit int) ([]string, error)
}
