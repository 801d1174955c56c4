package mapper

import (
	"plant-hub-be/internal/entity"
	"plant-hub-be/internal/model"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	return &entity.Note{
		Id:             n.Id,
		PlantId:        n.PlantId,
		PhotoHistoryId: n.PhotoHistoryId,
		Content:        n.Content,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
		DueDate:        n.DueDate,
		CompletedAt:    n.CompletedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	return &model.Note{
		Id:             n.Id,
		PlantId:        n.PlantId,
		PhotoHistoryId: n.PhotoHistoryId,
		Content:        n.Content,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
		DueDate:        n.DueDate,
		CompletedAt:    n.CompletedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
