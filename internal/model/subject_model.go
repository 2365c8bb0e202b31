package model

import "github.com/google/uuid"

type Subject struct {
	Id    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name  string    `gorm:"type:varchar(50);not null"`
	Color string    `gorm:"type:varchar(20);not null"`
	Icon  string    `gorm:"type:varchar(50);not null"`
}

func (Subject) TableName() string {
	return "subjects"
}
