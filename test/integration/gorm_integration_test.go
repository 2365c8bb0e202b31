package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"

	"github.com/kilhoshin/aissam/internal/entity"
	"github.com/kilhoshin/aissam/internal/repository/specification"
	"github.com/kilhoshin/aissam/internal/repository/unitofwork"
	"github.com/kilhoshin/aissam/pkg/database"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ChatSessionRepository())

	// Basic ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Subject Repository", func(t *testing.T) {
		count, err := uow.SubjectRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Subject count: %d", count)
	})

	t.Run("Check Transactional Chat Flow", func(t *testing.T) {
		ctx := context.Background()

		userId := uuid.New()
		user := &entity.User{
			Id:           userId,
			Email:        "test-integration-" + uuid.New().String() + "@example.com",
			Name:         "Integration Test User",
			PasswordHash: "x",
			Grade:        entity.UserGradeFirst,
			CreatedAt:    time.Now(),
		}
		err := uow.UserRepository().Create(ctx, user)
		assert.NoError(t, err)

		subjectId := uuid.New()
		subject := &entity.Subject{
			Id:    subjectId,
			Name:  "integration-" + uuid.New().String(),
			Color: "#000000",
			Icon:  "calculator",
		}
		err = uow.SubjectRepository().Create(ctx, subject)
		assert.NoError(t, err)

		// Transaction test: session + message created together, then rolled
		// back so the DB stays clean.
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		sessionId := uuid.New()
		session := &entity.ChatSession{
			Id:        sessionId,
			UserId:    userId,
			SubjectId: subjectId,
			Title:     "integration session",
			CreatedAt: time.Now(),
		}
		err = uow.ChatSessionRepository().Create(ctx, session)
		assert.NoError(t, err)

		message := &entity.Message{
			Id:        uuid.New(),
			SessionId: sessionId,
			Content:   "integration question",
			IsUser:    true,
			CreatedAt: time.Now(),
		}
		err = uow.MessageRepository().Create(ctx, message)
		assert.NoError(t, err)

		found, err := uow.ChatSessionRepository().FindOne(ctx,
			specification.ByID{ID: sessionId},
			specification.ByUserID{UserID: userId},
		)
		assert.NoError(t, err)
		assert.NotNil(t, found)

		count, err := uow.MessageRepository().Count(ctx, specification.BySessionID{SessionID: sessionId})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}
