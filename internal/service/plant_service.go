package service

import (
	"context"
	"strings"
	"time"

	"plant-hub-be/internal/apperror"
	"plant-hub-be/internal/dto"
	"plant-hub-be/internal/entity"
	"plant-hub-be/internal/pkg/logger"
	"plant-hub-be/internal/repository/specification"
	"plant-hub-be/internal/repository/unitofwork"
	"plant-hub-be/pkg/events"
)

type IPlantService interface {
	Create(ctx context.Context, req *dto.CreatePlantRequest) (*dto.PlantResponse, error)
	List(ctx context.Context) ([]*dto.RankedPlantResponse, error)
	Show(ctx context.Context, id int64) (*dto.ShowPlantResponse, error)
	Delete(ctx context.Context, id int64) error
}

type plantService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewPlantService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IPlantService {
	return &plantService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *plantService) Create(ctx context.Context, req *dto.CreatePlantRequest) (*dto.PlantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	nickname := strings.TrimSpace(req.Nickname)
	if nickname == "" {
		return nil, apperror.Validation("nickname is required")
	}

	taken, err := uow.PlantRepository().Count(ctx, specification.Filter("nickname", nickname))
	if err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, apperror.Validation("nickname already exists")
	}

	plant := entity.Plant{
		Nickname:  nickname,
		Species:   strings.TrimSpace(req.Species),
		CreatedAt: time.Now().UTC(),
	}
	if err := uow.PlantRepository().Create(ctx, &plant); err != nil {
		// A concurrent insert can slip past the pre-check; the unique
		// index is the arbiter, so recheck before surfacing the error.
		taken, countErr := uow.PlantRepository().Count(ctx, specification.Filter("nickname", nickname))
		if countErr == nil && taken > 0 {
			return nil, apperror.Validation("nickname already exists")
		}
		return nil, err
	}

	publishActivity(ctx, s.publisherService, s.logger, events.NewActivity(events.TypePlantCreated, map[string]interface{}{
		"plant_id": plant.Id,
		"nickname": plant.Nickname,
	}))

	resp := plantToResponse(&plant)
	return &resp, nil
}

func (s *plantService) List(ctx context.Context) ([]*dto.RankedPlantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ranked, err := uow.PlantRepository().FindAllRanked(ctx)
	if err != nil {
		return nil, err
	}

	photos, err := uow.PhotoHistoryRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}
	photosByPlant := make(map[int64][]dto.PhotoHistoryResponse)
	for _, p := range photos {
		photosByPlant[p.PlantId] = append(photosByPlant[p.PlantId], photoToResponse(p))
	}

	responses := make([]*dto.RankedPlantResponse, len(ranked))
	for i, p := range ranked {
		resp := rankedPlantToResponse(p)
		if resp.PhotoHistories = photosByPlant[p.Id]; resp.PhotoHistories == nil {
			resp.PhotoHistories = []dto.PhotoHistoryResponse{}
		}
		responses[i] = &resp
	}
	return responses, nil
}

func (s *plantService) Show(ctx context.Context, id int64) (*dto.ShowPlantResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plant, err := uow.PlantRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, apperror.NotFound("plant not found")
	}

	photos, err := uow.PhotoHistoryRepository().FindAll(ctx,
		specification.Filter("plant_id", id),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	resp := &dto.ShowPlantResponse{
		PlantResponse:  plantToResponse(plant),
		PhotoHistories: make([]dto.PhotoHistoryResponse, len(photos)),
	}
	for i, p := range photos {
		resp.PhotoHistories[i] = photoToResponse(p)
	}
	return resp, nil
}

func (s *plantService) Delete(ctx context.Context, id int64) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plant, err := uow.PlantRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if plant == nil {
		return apperror.NotFound("plant not found")
	}

	// Row deletion cascades to notes and photo histories; the stored
	// image files are left behind for the operator to reclaim.
	if err := uow.PlantRepository().Delete(ctx, id); err != nil {
		return err
	}

	publishActivity(ctx, s.publisherService, s.logger, events.NewActivity(events.TypePlantDeleted, map[string]interface{}{
		"plant_id": id,
		"nickname": plant.Nickname,
	}))
	return nil
}
