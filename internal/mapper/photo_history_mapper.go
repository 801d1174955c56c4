package mapper

import (
	"plant-hub-be/internal/entity"
	"plant-hub-be/internal/model"
)

type PhotoHistoryMapper struct{}

func NewPhotoHistoryMapper() *PhotoHistoryMapper {
	return &PhotoHistoryMapper{}
}

func (m *PhotoHistoryMapper) ToEntity(p *model.PhotoHistory) *entity.PhotoHistory {
	if p == nil {
		return nil
	}

	return &entity.PhotoHistory{
		Id:            p.Id,
		PlantId:       p.PlantId,
		ImageLocation: p.ImageLocation,
		CreatedAt:     p.CreatedAt,
	}
}

func (m *PhotoHistoryMapper) ToModel(p *entity.PhotoHistory) *model.PhotoHistory {
	if p == nil {
		return nil
	}

	return &model.PhotoHistory{
		Id:            p.Id,
		PlantId:       p.PlantId,
		ImageLocation: p.ImageLocation,
		CreatedAt:     p.CreatedAt,
	}
}

func (m *PhotoHistoryMapper) ToEntities(photos []*model.PhotoHistory) []*entity.PhotoHistory {
	entities := make([]*entity.PhotoHistory, len(photos))
	for i, p := range photos {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
