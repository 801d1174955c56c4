package contract

import (
	"context"

	"plant-hub-be/internal/entity"
	"plant-hub-be/internal/repository/specification"
)

type PhotoHistoryRepository interface {
	Create(ctx context.Context, photo *entity.PhotoHistory) error
	Delete(ctx context.Context, id int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PhotoHistory, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PhotoHistory, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
