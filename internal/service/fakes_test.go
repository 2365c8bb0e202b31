package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/kilhoshin/aissam/internal/entity"
	"github.com/kilhoshin/aissam/internal/repository/contract"
	"github.com/kilhoshin/aissam/internal/repository/specification"
	"github.com/kilhoshin/aissam/internal/repository/unitofwork"
	"github.com/kilhoshin/aissam/pkg/llm"
	"github.com/kilhoshin/aissam/pkg/media"
)

// memoryStore backs the in-memory repository fakes used by service tests.
type memoryStore struct {
	mu       sync.Mutex
	users    []*entity.User
	subjects []*entity.Subject
	sessions []*entity.ChatSession
	messages []*entity.Message
	images   []*entity.UploadedImage

	failImageCreate bool
}

type fakeFactory struct {
	store *memoryStore
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{store: &memoryStore{}}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct {
	store *memoryStore
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}

func (u *fakeUow) SubjectRepository() contract.SubjectRepository {
	return &fakeSubjectRepo{store: u.store}
}

func (u *fakeUow) ChatSessionRepository() contract.ChatSessionRepository {
	return &fakeSessionRepo{store: u.store}
}

func (u *fakeUow) MessageRepository() contract.MessageRepository {
	return &fakeMessageRepo{store: u.store}
}

func (u *fakeUow) UploadedImageRepository() contract.UploadedImageRepository {
	return &fakeImageRepo{store: u.store}
}

type fakeUserRepo struct {
	store *memoryStore
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.users = append(r.store.users, user)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, u := range r.store.users {
		if matchUser(u, specs) {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var n int64
	for _, u := range r.store.users {
		if matchUser(u, specs) {
			n++
		}
	}
	return n, nil
}

func matchUser(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		}
	}
	return true
}

type fakeSubjectRepo struct {
	store *memoryStore
}

func (r *fakeSubjectRepo) Create(ctx context.Context, subject *entity.Subject) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.subjects = append(r.store.subjects, subject)
	return nil
}

func (r *fakeSubjectRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subject, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, subject := range r.store.subjects {
		if matchSubject(subject, specs) {
			return subject, nil
		}
	}
	return nil, nil
}

func (r *fakeSubjectRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subject, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*entity.Subject, len(r.store.subjects))
	copy(out, r.store.subjects)
	return out, nil
}

func (r *fakeSubjectRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return int64(len(r.store.subjects)), nil
}

func matchSubject(subject *entity.Subject, specs []specification.Specification) bool {
	for _, spec := range specs {
		if s, ok := spec.(specification.ByID); ok && subject.Id != s.ID {
			return false
		}
	}
	return true
}

type fakeSessionRepo struct {
	store *memoryStore
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.ChatSession) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.sessions = append(r.store.sessions, session)
	return nil
}

func (r *fakeSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatSession, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, session := range r.store.sessions {
		if matchSession(session, specs) {
			return session, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) FindAllActive(ctx context.Context, userId uuid.UUID) ([]*entity.ChatSessionSummary, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.ChatSessionSummary
	for _, session := range r.store.sessions {
		if session.UserId != userId {
			continue
		}
		count := r.countMessagesLocked(session.Id)
		if count == 0 {
			continue
		}
		out = append(out, &entity.ChatSessionSummary{ChatSession: *session, MessageCount: count})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeSessionRepo) countMessagesLocked(sessionId uuid.UUID) int64 {
	var n int64
	for _, msg := range r.store.messages {
		if msg.SessionId == sessionId {
			n++
		}
	}
	return n
}

func matchSession(session *entity.ChatSession, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if session.Id != s.ID {
				return false
			}
		case specification.ByUserID:
			if session.UserId != s.UserID {
				return false
			}
		}
	}
	return true
}

type fakeMessageRepo struct {
	store *memoryStore
}

func (r *fakeMessageRepo) Create(ctx context.Context, msg *entity.Message) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.messages = append(r.store.messages, msg)
	return nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Message
	for _, msg := range r.store.messages {
		if matchMessage(msg, specs) {
			out = append(out, msg)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	msgs, _ := r.FindAll(ctx, specs...)
	return int64(len(msgs)), nil
}

func (r *fakeMessageRepo) FindRecentQuestions(ctx context.Context, userId uuid.UUID, limit int) ([]string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	owned := make(map[uuid.UUID]bool)
	for _, session := range r.store.sessions {
		if session.UserId == userId {
			owned[session.Id] = true
		}
	}
	var questions []string
	for _, msg := range r.store.messages {
		if msg.IsUser && msg.Content != "" && owned[msg.SessionId] {
			questions = append(questions, msg.Content)
		}
	}
	if len(questions) > limit {
		questions = questions[len(questions)-limit:]
	}
	return questions, nil
}

func matchMessage(msg *entity.Message, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.BySessionID:
			if msg.SessionId != s.SessionID {
				return false
			}
		case specification.UserTurnsOnly:
			if !msg.IsUser {
				return false
			}
		case specification.NonEmptyContent:
			if msg.Content == "" {
				return false
			}
		}
	}
	return true
}

type fakeImageRepo struct {
	store *memoryStore
}

func (r *fakeImageRepo) Create(ctx context.Context, image *entity.UploadedImage) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.failImageCreate {
		return errors.New("metadata insert failed")
	}
	r.store.images = append(r.store.images, image)
	return nil
}

func (r *fakeImageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UploadedImage, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	out := make([]*entity.UploadedImage, len(r.store.images))
	copy(out, r.store.images)
	return out, nil
}

// fakeStorage keeps uploads in memory.
type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	counter int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (s *fakeStorage) Store(ctx context.Context, r io.Reader, originalName string) (*media.Object, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter++
	path := fmt.Sprintf("stored_%d_%s", s.counter, originalName)
	s.objects[path] = data
	return &media.Object{Filename: originalName, Path: path, URL: s.URL(path)}, nil
}

func (s *fakeStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[path]
	if !ok {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *fakeStorage) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, path)
	return nil
}

func (s *fakeStorage) URL(path string) string {
	return "/uploads/" + path
}

// capturePublisher records published analysis jobs.
type capturePublisher struct {
	mu     sync.Mutex
	topics []string
	msgs   []*message.Message
}

func (p *capturePublisher) Publish(topic string, messages ...*message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, msg := range messages {
		p.topics = append(p.topics, topic)
		p.msgs = append(p.msgs, msg)
	}
	return nil
}

func (p *capturePublisher) Close() error { return nil }

// scriptedProvider replays fixed LLM results.
type scriptedProvider struct {
	mu      sync.Mutex
	results []scriptedResult
	calls   int
	prompts []string
}

type scriptedResult struct {
	text string
	err  error
}

func (p *scriptedProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prompts = append(p.prompts, prompt)
	if p.calls >= len(p.results) {
		return "", errors.New("unexpected call")
	}
	r := p.results[p.calls]
	p.calls++
	return r.text, r.err
}

// nopLogger discards all log output.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
