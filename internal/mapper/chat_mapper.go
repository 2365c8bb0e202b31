package mapper

import (
	"github.com/kilhoshin/aissam/internal/entity"
	"github.com/kilhoshin/aissam/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}
	return &entity.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		SubjectId: s.SubjectId,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}
	return &model.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		SubjectId: s.SubjectId,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
	}
}

// Message Mappers

func (m *ChatMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}
	return &entity.Message{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		Content:   msg.Content,
		IsUser:    msg.IsUser,
		ImagePath: msg.ImagePath,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}
	return &model.Message{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		Content:   msg.Content,
		IsUser:    msg.IsUser,
		ImagePath: msg.ImagePath,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *ChatMapper) MessagesToEntities(models []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(models))
	for i, msg := range models {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}

// Uploaded Image Mappers

func (m *ChatMapper) UploadedImageToEntity(img *model.UploadedImage) *entity.UploadedImage {
	if img == nil {
		return nil
	}
	return &entity.UploadedImage{
		Id:        img.Id,
		SessionId: img.SessionId,
		Filename:  img.Filename,
		Filepath:  img.Filepath,
		CreatedAt: img.CreatedAt,
	}
}

func (m *ChatMapper) UploadedImageToModel(img *entity.UploadedImage) *model.UploadedImage {
	if img == nil {
		return nil
	}
	return &model.UploadedImage{
		Id:        img.Id,
		SessionId: img.SessionId,
		Filename:  img.Filename,
		Filepath:  img.Filepath,
		CreatedAt: img.CreatedAt,
	}
}
