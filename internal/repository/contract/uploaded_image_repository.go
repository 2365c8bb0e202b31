package contract

import (
	"context"

	"github.com/kilhoshin/aissam/internal/entity"
	"github.com/kilhoshin/aissam/internal/repository/specification"
)

type UploadedImageRepository interface {
	Create(ctx context.Context, image *entity.UploadedImage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UploadedImage, error)
}
