package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubjectResponse struct {
	Id    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
	Icon  string    `json:"icon"`
}

type CreateSessionRequest struct {
	SubjectId uuid.UUID `json:"subject_id" validate:"required"`
	Title     string    `json:"title"`
}

type SessionResponse struct {
	Id           uuid.UUID       `json:"id"`
	UserId       uuid.UUID       `json:"user_id"`
	SubjectId    uuid.UUID       `json:"subject_id"`
	Subject      SubjectResponse `json:"subject"`
	Title        string          `json:"title"`
	MessageCount int64           `json:"message_count"`
	CreatedAt    time.Time       `json:"created_at"`
}

type MessageResponse struct {
	Id        uuid.UUID `json:"id"`
	SessionId uuid.UUID `json:"session_id"`
	Content   string    `json:"content"`
	IsUser    bool      `json:"is_user"`
	ImagePath *string   `json:"image_path"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

type AnalysisResponse struct {
	UserId   uuid.UUID `json:"user_id"`
	Analysis string    `json:"analysis"`
}

// QuestionAskedMessage is the payload queued for the pattern analysis worker
// after every answered question.
type QuestionAskedMessage struct {
	UserId    uuid.UUID `json:"user_id"`
	SessionId uuid.UUID `json:"session_id"`
	AskedAt   time.Time `json:"asked_at"`
}
