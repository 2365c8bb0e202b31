package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/kilhoshin/aissam/internal/entity"
	"github.com/kilhoshin/aissam/internal/mapper"
	"github.com/kilhoshin/aissam/internal/model"
	"github.com/kilhoshin/aissam/internal/repository/contract"
	"github.com/kilhoshin/aissam/internal/repository/specification"
)

type SubjectRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubjectMapper
}

func NewSubjectRepository(db *gorm.DB) contract.SubjectRepository {
	return &SubjectRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubjectMapper(),
	}
}

func (r *SubjectRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SubjectRepositoryImpl) Create(ctx context.Context, subject *entity.Subject) error {
	m := r.mapper.ToModel(subject)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*subject = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubjectRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subject, error) {
	var m model.Subject
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SubjectRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subject, error) {
	var models []*model.Subject
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SubjectRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Subject{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
