package implementation

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kilhoshin/aissam/internal/entity"
	"github.com/kilhoshin/aissam/internal/mapper"
	"github.com/kilhoshin/aissam/internal/model"
	"github.com/kilhoshin/aissam/internal/repository/contract"
	"github.com/kilhoshin/aissam/internal/repository/specification"
)

type ChatSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatSessionRepository(db *gorm.DB) contract.ChatSessionRepository {
	return &ChatSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatSessionRepositoryImpl) Create(ctx context.Context, session *entity.ChatSession) error {
	m := r.mapper.ChatSessionToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ChatSessionToEntity(m)
	return nil
}

func (r *ChatSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	var m model.ChatSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ChatSessionToEntity(&m), nil
}

// activeSessionRow is the scan target for the joined listing query.
type activeSessionRow struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	SubjectId    uuid.UUID
	Title        string
	CreatedAt    time.Time
	MessageCount int64
}

func (r *ChatSessionRepositoryImpl) FindAllActive(ctx context.Context, userId uuid.UUID) ([]*entity.ChatSessionSummary, error) {
	var rows []activeSessionRow
	err := r.db.WithContext(ctx).
		Model(&model.ChatSession{}).
		Select("chat_sessions.id, chat_sessions.user_id, chat_sessions.subject_id, chat_sessions.title, chat_sessions.created_at, COUNT(messages.id) AS message_count").
		Joins("JOIN messages ON messages.session_id = chat_sessions.id").
		Where("chat_sessions.user_id = ?", userId).
		Group("chat_sessions.id").
		Order("chat_sessions.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]*entity.ChatSessionSummary, len(rows))
	for i, row := range rows {
		summaries[i] = &entity.ChatSessionSummary{
			ChatSession: entity.ChatSession{
				Id:        row.Id,
				UserId:    row.UserId,
				SubjectId: row.SubjectId,
				Title:     row.Title,
				CreatedAt: row.CreatedAt,
			},
			MessageCount: row.MessageCount,
		}
	}
	return summaries, nil
}
