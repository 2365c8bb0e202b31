package mapper

import (
	"github.com/kilhoshin/aissam/internal/entity"
	"github.com/kilhoshin/aissam/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:           u.Id,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Grade:        entity.UserGrade(u.Grade),
		CreatedAt:    u.CreatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:           u.Id,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Grade:        string(u.Grade),
		CreatedAt:    u.CreatedAt,
	}
}
