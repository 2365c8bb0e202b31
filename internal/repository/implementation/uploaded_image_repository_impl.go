package implementation

import (
	"context"

	"gorm.io/gorm"

	"github.com/kilhoshin/aissam/internal/entity"
	"github.com/kilhoshin/aissam/internal/mapper"
	"github.com/kilhoshin/aissam/internal/model"
	"github.com/kilhoshin/aissam/internal/repository/contract"
	"github.com/kilhoshin/aissam/internal/repository/specification"
)

type UploadedImageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewUploadedImageRepository(db *gorm.DB) contract.UploadedImageRepository {
	return &UploadedImageRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *UploadedImageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UploadedImageRepositoryImpl) Create(ctx context.Context, image *entity.UploadedImage) error {
	m := r.mapper.UploadedImageToModel(image)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*image = *r.mapper.UploadedImageToEntity(m)
	return nil
}

func (r *UploadedImageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UploadedImage, error) {
	var models []*model.UploadedImage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.UploadedImage, len(models))
	for i, m := range models {
		entities[i] = r.mapper.UploadedImageToEntity(m)
	}
	return entities, nil
}
