package entity

import (
	"time"

	"github.com/google/uuid"
)

// UploadedImage is auxiliary metadata about a stored upload. The row is
// written best-effort; message flow must never block on it.
type UploadedImage struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Filename  string
	Filepath  string
	CreatedAt time.Time
}
