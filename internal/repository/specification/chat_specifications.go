package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySessionID filters messages and upload metadata by owning chat session
type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// UserTurnsOnly keeps only student-authored messages
type UserTurnsOnly struct{}

func (s UserTurnsOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_user = ?", true)
}

// NonEmptyContent drops image-only turns that carry no text
type NonEmptyContent struct{}

func (s NonEmptyContent) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("content <> ''")
}
