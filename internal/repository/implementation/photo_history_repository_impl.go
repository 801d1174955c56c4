package implementation

import (
	"context"
	"errors"

	"plant-hub-be/internal/entity"
	"plant-hub-be/internal/mapper"
	"plant-hub-be/internal/model"
	"plant-hub-be/internal/repository/contract"
	"plant-hub-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PhotoHistoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PhotoHistoryMapper
}

func NewPhotoHistoryRepository(db *gorm.DB) contract.PhotoHistoryRepository {
	return &PhotoHistoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewPhotoHistoryMapper(),
	}
}

func (r *PhotoHistoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PhotoHistoryRepositoryImpl) Create(ctx context.Context, photo *entity.PhotoHistory) error {
	m := r.mapper.ToModel(photo)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*photo = *r.mapper.ToEntity(m)
	return nil
}

func (r *PhotoHistoryRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.PhotoHistory{}, id).Error
}

func (r *PhotoHistoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.PhotoHistory, error) {
	var m model.PhotoHistory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PhotoHistoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PhotoHistory, error) {
	var models []*model.PhotoHistory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PhotoHistoryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.PhotoHistory{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
