package service

import (
	"plant-hub-be/internal/dto"
	"plant-hub-be/internal/entity"
)

func plantToResponse(p *entity.Plant) dto.PlantResponse {
	return dto.PlantResponse{
		Id:        p.Id,
		Nickname:  p.Nickname,
		Species:   p.Species,
		CreatedAt: p.CreatedAt,
	}
}

func rankedPlantToResponse(p *entity.RankedPlant) dto.RankedPlantResponse {
	return dto.RankedPlantResponse{
		Id:                 p.Id,
		Nickname:           p.Nickname,
		Species:            p.Species,
		CreatedAt:          p.CreatedAt,
		NextDueDate:        p.NextDueDate,
		LastPhotoAt:        p.LastPhotoAt,
		HasIncompleteNotes: p.HasIncompleteNotes,
	}
}

func photoToResponse(p *entity.PhotoHistory) dto.PhotoHistoryResponse {
	return dto.PhotoHistoryResponse{
		Id:            p.Id,
		PlantId:       p.PlantId,
		ImageLocation: p.ImageLocation,
		CreatedAt:     p.CreatedAt,
	}
}

func noteToResponse(n *entity.Note) dto.NoteResponse {
	return dto.NoteResponse{
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
