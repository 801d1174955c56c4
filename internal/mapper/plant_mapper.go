package mapper

import (
	"plant-hub-be/internal/entity"
	"plant-hub-be/internal/model"
)

type PlantMapper struct{}

func NewPlantMapper() *PlantMapper {
	return &PlantMapper{}
}

func (m *PlantMapper) ToEntity(p *model.Plant) *entity.Plant {
	if p == nil {
		return nil
	}

	return &entity.Plant{
		Id:        p.Id,
		Nickname:  p.Nickname,
		Species:   p.Species,
		CreatedAt: p.CreatedAt,
	}
}

func (m *PlantMapper) ToModel(p *entity.Plant) *model.Plant {
	if p == nil {
		return nil
	}

	return &model.Plant{
		Id:        p.Id,
		Nickname:  p.Nickname,
		Species:   p.Species,
		CreatedAt: p.CreatedAt,
	}
}

func (m *PlantMapper) ToEntities(plants []*model.Plant) []*entity.Plant {
	entities := make([]*entity.Plant, len(plants))
	for i, p := range plants {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
