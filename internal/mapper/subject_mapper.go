package mapper

import (
	"github.com/kilhoshin/aissam/internal/entity"
	"github.com/kilhoshin/aissam/internal/model"
)

type SubjectMapper struct{}

func NewSubjectMapper() *SubjectMapper {
	return &SubjectMapper{}
}

func (m *SubjectMapper) ToEntity(s *model.Subject) *entity.Subject {
	if s == nil {
		return nil
	}
	return &entity.Subject{
		Id:    s.Id,
		Name:  s.Name,
		Color: s.Color,
		Icon:  s.Icon,
	}
}

func (m *SubjectMapper) ToModel(s *entity.Subject) *model.Subject {
	if s == nil {
		return nil
	}
	return &model.Subject{
		Id:    s.Id,
		Name:  s.Name,
		Color: s.Color,
		Icon:  s.Icon,
	}
}

func (m *SubjectMapper) ToEntities(models []*model.Subject) []*entity.Subject {
	entities := make([]*entity.Subject, len(models))
	for i, s := range models {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
