package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"` // User ownership for data isolation
	SubjectId uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
