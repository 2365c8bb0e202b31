package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChatSession struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	SubjectId uuid.UUID
	Title     string
	CreatedAt time.Time
}

// ChatSessionSummary carries the joined listing row: the session plus how many
// messages it holds. Sessions with zero messages are never listed.
type ChatSessionSummary struct {
	ChatSession
	MessageCount int64
}
