package model

import (
	"time"

	"github.com/google/uuid"
)

type UploadedImage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId uuid.UUID `gorm:"type:uuid;not null;index"`
	Filename  string    `gorm:"type:text;not null"`
	Filepath  string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (UploadedImage) TableName() string {
	return "uploaded_images"
}
