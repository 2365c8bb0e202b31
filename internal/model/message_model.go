package model

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"` // empty only when an image is attached
	IsUser    bool      `gorm:"not null;default:true"`
	ImagePath *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Message) TableName() string {
	return "messages"
}
