package service

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/kilhoshin/aissam/internal/dto"
	"github.com/kilhoshin/aissam/internal/entity"
	"github.com/kilhoshin/aissam/internal/pkg/logger"
	"github.com/kilhoshin/aissam/internal/repository/specification"
	"github.com/kilhoshin/aissam/internal/repository/unitofwork"
	"github.com/kilhoshin/aissam/pkg/media"
	"github.com/kilhoshin/aissam/pkg/tutor"
)

// ImageUpload is an incoming multipart image attachment.
type ImageUpload struct {
	Reader   io.Reader
	Filename string
}

type IChatService interface {
	CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	GetSessions(ctx context.Context, userId uuid.UUID) ([]*dto.SessionResponse, error)
	GetSession(ctx context.Context, userId, sessionId uuid.UUID) (*dto.SessionResponse, error)
	SendMessage(ctx context.Context, userId, sessionId uuid.UUID, text string, image *ImageUpload) (*dto.MessageResponse, error)
	GetMessages(ctx context.Context, userId, sessionId uuid.UUID) ([]*dto.MessageResponse, error)
}

type chatService struct {
	uowFactory    unitofwork.RepositoryFactory
	storage       media.Storage
	generator     *tutor.Generator
	publisher     message.Publisher
	analysisTopic string
	baseURL       string
	logger        logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	storage media.Storage,
	generator *tutor.Generator,
	publisher message.Publisher,
	analysisTopic string,
	baseURL string,
	logger logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:    uowFactory,
		storage:       storage,
		generator:     generator,
		publisher:     publisher,
		analysisTopic: analysisTopic,
		baseURL:       strings.TrimSuffix(baseURL, "/"),
		logger:        logger,
	}
}

func (s *chatService) CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subject, err := uow.SubjectRepository().FindOne(ctx, specification.ByID{ID: req.SubjectId})
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, ErrSubjectNotFound
	}

	title := req.Title
	if title == "" {
		title = time.Now().Format("2006-01-02 15:04") + " 질문"
	}

	session := &entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		SubjectId: subject.Id,
		Title:     title,
		CreatedAt: time.Now(),
	}
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	return s.toSessionResponse(session, subject, 0), nil
}

// GetSessions lists the user's sessions that hold at least one message,
// newest first.
func (s *chatService) GetSessions(ctx context.Context, userId uuid.UUID) ([]*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	summaries, err := uow.ChatSessionRepository().FindAllActive(ctx, userId)
	if err != nil {
		return nil, err
	}

	subjects, err := uow.SubjectRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}
	subjectsById := make(map[uuid.UUID]*entity.Subject, len(subjects))
	for _, subject := range subjects {
		subjectsById[subject.Id] = subject
	}

	responses := make([]*dto.SessionResponse, 0, len(summaries))
	for _, summary := range summaries {
		subject := subjectsById[summary.SubjectId]
		if subject == nil {
			continue
		}
		responses = append(responses, s.toSessionResponse(&summary.ChatSession, subject, summary.MessageCount))
	}
	return responses, nil
}

func (s *chatService) GetSession(ctx context.Context, userId, sessionId uuid.UUID) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.findOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	subject, err := uow.SubjectRepository().FindOne(ctx, specification.ByID{ID: session.SubjectId})
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, ErrSubjectNotFound
	}

	count, err := uow.MessageRepository().Count(ctx, specification.BySessionID{SessionID: session.Id})
	if err != nil {
		return nil, err
	}

	return s.toSessionResponse(session, subject, count), nil
}

// SendMessage stores the student's turn, asks the tutor for an answer, stores
// that as the AI turn, and returns it. Generation failures come back as
// apology replies rather than errors, so the student turn is never lost.
func (s *chatService) SendMessage(ctx context.Context, userId, sessionId uuid.UUID, text string, image *ImageUpload) (*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.findOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	subject, err := uow.SubjectRepository().FindOne(ctx, specification.ByID{ID: session.SubjectId})
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, ErrSubjectNotFound
	}

	// 1. Store the attachment, if any
	var imagePath *string
	if image != nil {
		stored, err := s.storage.Store(ctx, image.Reader, image.Filename)
		if err != nil {
			return nil, err
		}
		imagePath = &stored.Path

		// Metadata row is best-effort
		metadata := &entity.UploadedImage{
			Id:        uuid.New(),
			SessionId: session.Id,
			Filename:  image.Filename,
			Filepath:  stored.Path,
			CreatedAt: time.Now(),
		}
		if err := uow.UploadedImageRepository().Create(ctx, metadata); err != nil {
			s.logger.Warn("chat_service", "failed to record image metadata", map[string]interface{}{
				"session_id": session.Id.String(),
				"error":      err.Error(),
			})
		}
	}

	// 2. Persist the student turn before generation so it survives failures
	userMessage := &entity.Message{
		Id:        uuid.New(),
		SessionId: session.Id,
		Content:   text,
		IsUser:    true,
		ImagePath: imagePath,
		CreatedAt: time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, userMessage); err != nil {
		return nil, err
	}

	// 3. Load the full session history, current question included
	history, err := uow.MessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: session.Id},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}
	turns := make([]tutor.Turn, 0, len(history))
	for _, msg := range history {
		turns = append(turns, tutor.Turn{Content: msg.Content, IsUser: msg.IsUser})
	}

	// 4. Prepare the image for the model
	var imageData []byte
	if imagePath != nil {
		imageData = s.loadModelImage(ctx, *imagePath)
	}

	question := tutor.Question{
		Subject:   tutor.SubjectFromName(subject.Name),
		Text:      text,
		History:   turns,
		ImageData: imageData,
		ImageMIME: "image/jpeg",
	}
	answer := s.generator.Reply(ctx, question)

	// 5. Persist the tutor's turn
	aiMessage := &entity.Message{
		Id:        uuid.New(),
		SessionId: session.Id,
		Content:   answer,
		IsUser:    false,
		CreatedAt: time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, aiMessage); err != nil {
		return nil, err
	}

	s.publishQuestionAsked(userId, session.Id)

	response := s.toMessageResponse(aiMessage)
	if imagePath != nil {
		url := s.absoluteURL(s.storage.URL(*imagePath))
		response.ImageURL = &url
	}
	return response, nil
}

func (s *chatService) GetMessages(ctx context.Context, userId, sessionId uuid.UUID) ([]*dto.MessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := s.findOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.BySessionID{SessionID: session.Id},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		responses = append(responses, s.toMessageResponse(msg))
	}
	return responses, nil
}

func (s *chatService) findOwnedSession(ctx context.Context, uow unitofwork.UnitOfWork, userId, sessionId uuid.UUID) (*entity.ChatSession, error) {
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// loadModelImage re-reads the stored upload and downscales it for the model.
// Any failure here downgrades the question to text-only.
func (s *chatService) loadModelImage(ctx context.Context, path string) []byte {
	rc, err := s.storage.Open(ctx, path)
	if err != nil {
		s.logger.Warn("chat_service", "failed to open stored image", map[string]interface{}{"path": path, "error": err.Error()})
		return nil
	}
	defer rc.Close()

	data, err := media.ScaleForModel(rc)
	if err != nil {
		s.logger.Warn("chat_service", "failed to prepare image for model", map[string]interface{}{"path": path, "error": err.Error()})
		return nil
	}
	return data
}

func (s *chatService) publishQuestionAsked(userId, sessionId uuid.UUID) {
	if s.publisher == nil {
		return
	}
	payload, err := json.Marshal(dto.QuestionAskedMessage{
		UserId:    userId,
		SessionId: sessionId,
		AskedAt:   time.Now(),
	})
	if err != nil {
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.publisher.Publish(s.analysisTopic, msg); err != nil {
		s.logger.Warn("chat_service", "failed to queue analysis job", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}
}

func (s *chatService) toSessionResponse(session *entity.ChatSession, subject *entity.Subject, messageCount int64) *dto.SessionResponse {
	return &dto.SessionResponse{
		Id:        session.Id,
		UserId:    session.UserId,
		SubjectId: session.SubjectId,
		Subject: dto.SubjectResponse{
			Id:    subject.Id,
			Name:  subject.Name,
			Color: subject.Color,
			Icon:  subject.Icon,
		},
		Title:        session.Title,
		MessageCount: messageCount,
		CreatedAt:    session.CreatedAt,
	}
}

func (s *chatService) toMessageResponse(msg *entity.Message) *dto.MessageResponse {
	response := &dto.MessageResponse{
		Id:        msg.Id,
		SessionId: msg.SessionId,
		Content:   msg.Content,
		IsUser:    msg.IsUser,
		CreatedAt: msg.CreatedAt,
	}
	if msg.ImagePath != nil {
		path := s.storage.URL(*msg.ImagePath)
		url := s.absoluteURL(path)
		response.ImagePath = &path
		response.ImageURL = &url
	}
	return response
}

func (s *chatService) absoluteURL(url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return s.baseURL + url
}
