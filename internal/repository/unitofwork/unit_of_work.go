package unitofwork

import (
	"context"

	"github.com/kilhoshin/aissam/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	SubjectRepository() contract.SubjectRepository
	ChatSessionRepository() contract.ChatSessionRepository
	MessageRepository() contract.MessageRepository
	UploadedImageRepository() contract.UploadedImageRepository
}
