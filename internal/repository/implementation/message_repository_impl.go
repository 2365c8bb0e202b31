package implementation

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kilhoshin/aissam/internal/entity"
	"github.com/kilhoshin/aissam/internal/mapper"
	"github.com/kilhoshin/aissam/internal/model"
	"github.com/kilhoshin/aissam/internal/repository/contract"
	"github.com/kilhoshin/aissam/internal/repository/specification"
)

type MessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewMessageRepository(db *gorm.DB) contract.MessageRepository {
	return &MessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *MessageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MessageRepositoryImpl) Create(ctx context.Context, message *entity.Message) error {
	m := r.mapper.MessageToModel(message)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*message = *r.mapper.MessageToEntity(m)
	return nil
}

func (r *MessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	var models []*model.Message
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.MessagesToEntities(models), nil
}

func (r *MessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Message{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MessageRepositoryImpl) FindRecentQuestions(ctx context.Context, userId uuid.UUID, limit int) ([]string, error) {
	var contents []string
	query := r.db.WithContext(ctx).
		Model(&model.Message{}).
		Joins("JOIN chat_sessions ON chat_sessions.id = messages.session_id").
		Where("chat_sessions.user_id = ?", userId)
	query = r.applySpecifications(query,
		specification.UserTurnsOnly{},
		specification.NonEmptyContent{},
	)
	err := query.
		Order("messages.created_at DESC").
		Limit(limit).
		Pluck("messages.content", &contents).Error
	if err != nil {
		return nil, err
	}

	// Newest-first from the query; callers want chronological order.
	for i, j := 0, len(contents)-1; i < j; i, j = i+1, j-1 {
		contents[i], contents[j] = contents[j], contents[i]
	}
	return contents, nil
}
