package entity

import "github.com/google/uuid"

type Subject struct {
	Id    uuid.UUID
	Name  string
	Color string
	Icon  string
}
