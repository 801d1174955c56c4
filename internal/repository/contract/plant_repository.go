package contract

import (
	"context"

	"plant-hub-be/internal/entity"
	"plant-hub-be/internal/repository/specification"
)

type PlantRepository interface {
	Create(ctx context.Context, plant *entity.Plant) error
	Delete(ctx context.Context, id int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Plant, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Plant, error)
	// FindAllRanked returns every plant ordered notes-due-first, then by
	// photo recency, annotated with the ordering keys.
	FindAllRanked(ctx context.Context) ([]*entity.RankedPlant, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
