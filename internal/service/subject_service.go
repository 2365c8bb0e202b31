package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/kilhoshin/aissam/internal/dto"
	"github.com/kilhoshin/aissam/internal/entity"
	"github.com/kilhoshin/aissam/internal/repository/unitofwork"
)

const subjectCacheKey = "subjects:all"

// defaultSubjects is the catalog seeded on first read.
var defaultSubjects = []entity.Subject{
	{Name: "수학", Color: "#3B82F6", Icon: "calculator"},
	{Name: "영어", Color: "#EF4444", Icon: "globe"},
	{Name: "국어", Color: "#10B981", Icon: "book"},
	{Name: "사회탐구", Color: "#F97316", Icon: "building"},
	{Name: "과학탐구", Color: "#8B5CF6", Icon: "beaker"},
}

type ISubjectService interface {
	GetSubjects(ctx context.Context) ([]*dto.SubjectResponse, error)
}

type subjectService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *gocache.Cache
}

func NewSubjectService(uowFactory unitofwork.RepositoryFactory, cache *gocache.Cache) ISubjectService {
	return &subjectService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// GetSubjects returns the subject catalog, seeding the defaults when the
// table is empty. The catalog rarely changes so it is served from cache.
func (s *subjectService) GetSubjects(ctx context.Context) ([]*dto.SubjectResponse, error) {
	if cached, found := s.cache.Get(subjectCacheKey); found {
		return cached.([]*dto.SubjectResponse), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	subjects, err := uow.SubjectRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if len(subjects) == 0 {
		subjects, err = s.seedDefaults(ctx)
		if err != nil {
			return nil, err
		}
	}

	responses := make([]*dto.SubjectResponse, 0, len(subjects))
	for _, subject := range subjects {
		responses = append(responses, &dto.SubjectResponse{
			Id:    subject.Id,
			Name:  subject.Name,
			Color: subject.Color,
			Icon:  subject.Icon,
		})
	}

	s.cache.Set(subjectCacheKey, responses, 10*time.Minute)
	return responses, nil
}

func (s *subjectService) seedDefaults(ctx context.Context) ([]*entity.Subject, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// Re-check inside the transaction, a concurrent request may have seeded
	// already.
	count, err := uow.SubjectRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		if err := uow.Commit(); err != nil {
			return nil, err
		}
		return uow.SubjectRepository().FindAll(ctx)
	}

	seeded := make([]*entity.Subject, 0, len(defaultSubjects))
	for _, def := range defaultSubjects {
		subject := &entity.Subject{
			Id:    uuid.New(),
			Name:  def.Name,
			Color: def.Color,
			Icon:  def.Icon,
		}
		if err := uow.SubjectRepository().Create(ctx, subject); err != nil {
			return nil, err
		}
		seeded = append(seeded, subject)
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}
	return seeded, nil
}
