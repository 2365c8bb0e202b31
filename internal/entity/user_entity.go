package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserGrade string

const (
	UserGradeFirst  UserGrade = "grade1"
	UserGradeSecond UserGrade = "grade2"
	UserGradeThird  UserGrade = "grade3"
)

type User struct {
	Id           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Grade        UserGrade
	CreatedAt    time.Time
}
