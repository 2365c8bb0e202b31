package contract

import (
	"context"

	"github.com/google/uuid"

	"github.com/kilhoshin/aissam/internal/entity"
	"github.com/kilhoshin/aissam/internal/repository/specification"
)

type ChatSessionRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error)
	// FindAllActive returns the user's sessions holding at least one message,
	// newest first, with their message counts.
	FindAllActive(ctx context.Context, userId uuid.UUID) ([]*entity.ChatSessionSummary, error)
}
