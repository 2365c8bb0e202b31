package entity

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Content   string
	IsUser    bool
	ImagePath *string
	CreatedAt time.Time
}
