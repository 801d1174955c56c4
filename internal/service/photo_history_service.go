package service

import (
	"context"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"plant-hub-be/internal/apperror"
	"plant-hub-be/internal/dto"
	"plant-hub-be/internal/entity"
	"plant-hub-be/internal/pkg/logger"
	"plant-hub-be/internal/repository/specification"
	"plant-hub-be/internal/repository/unitofwork"
	"plant-hub-be/pkg/events"
	"plant-hub-be/pkg/imaging"
	"plant-hub-be/pkg/storage"

	"github.com/google/uuid"
)

const defaultImageMimeType = "image/jpeg"

type IPhotoHistoryService interface {
	Create(ctx context.Context, req *dto.CreatePhotoHistoryRequest) (*dto.PhotoHistoryResponse, error)
	ListByPlant(ctx context.Context, plantId int64) ([]*dto.PhotoHistoryResponse, error)
	FetchImage(ctx context.Context, plantId, photoId int64) (*dto.PhotoImageResponse, error)
	Delete(ctx context.Context, plantId, photoId int64) error
}

type photoHistoryService struct {
	uowFactory       unitofwork.RepositoryFactory
	store            *storage.LocalStore
	compressor       *imaging.Compressor
	publisherService IPublisherService
	logger           logger.ILogger
	now              func() time.Time
}

func NewPhotoHistoryService(
	uowFactory unitofwork.RepositoryFactory,
	store *storage.LocalStore,
	compressor *imaging.Compressor,
	publisherService IPublisherService,
	log logger.ILogger,
) IPhotoHistoryService {
	return &photoHistoryService{
		uowFactory:       uowFactory,
		store:            store,
		compressor:       compressor,
		publisherService: publisherService,
		logger:           log,
		now:              time.Now,
	}
}

// Create runs the upload gates in order: plant exists, file present,
// extension allowed, image decodable. The compressed bytes are written
// first and the row inserted after; a failed insert rolls back the row
// and leaves the file orphaned on disk (logged, not reclaimed).
func (s *photoHistoryService) Create(ctx context.Context, req *dto.CreatePhotoHistoryRequest) (*dto.PhotoHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plant, err := uow.PlantRepository().FindOne(ctx, specification.ByID{ID: req.PlantId})
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, apperror.NotFound("plant not found")
	}

	if req.FileName == "" || len(req.Data) == 0 {
		return nil, apperror.Validation("no file selected")
	}

	if _, ok := imaging.ExtensionOf(req.FileName); !ok {
		return nil, apperror.InvalidFileType("invalid file type", imaging.AllowedExtensions())
	}

	compressed, err := s.compressor.Compress(req.Data)
	if err != nil {
		return nil, apperror.InvalidFileType("invalid file type", imaging.AllowedExtensions())
	}

	// Always store as .jpg under a collision-free name.
	fileName := strings.ReplaceAll(uuid.NewString(), "-", "") + ".jpg"
	location, err := s.store.Save(fileName, compressed)
	if err != nil {
		return nil, apperror.Internal("failed to store image", err)
	}

	createdAt := imaging.ResolveCaptureTime(req.Data, req.ClientDate, s.now)

	photo := entity.PhotoHistory{
		PlantId:       req.PlantId,
		ImageLocation: location,
		CreatedAt:     createdAt,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	if err := uow.PhotoHistoryRepository().Create(ctx, &photo); err != nil {
		_ = uow.Rollback()
		s.logger.Warn("photo_history", "insert failed, stored file orphaned", map[string]interface{}{
			"plant_id": req.PlantId,
			"location": location,
			"error":    err.Error(),
		})
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		_ = uow.Rollback()
		s.logger.Warn("photo_history", "commit failed, stored file orphaned", map[string]interface{}{
			"plant_id": req.PlantId,
			"location": location,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Info("photo_history", "photo ingested", map[string]interface{}{
		"plant_id":   req.PlantId,
		"location":   location,
		"input_size": len(req.Data),
		"final_size": len(compressed),
	})

	publishActivity(ctx, s.publisherService, s.logger, events.NewActivity(events.TypePhotoIngested, map[string]interface{}{
		"plant_id":         req.PlantId,
		"photo_history_id": photo.Id,
		"image_location":   location,
	}))

	resp := photoToResponse(&photo)
	return &resp, nil
}

func (s *photoHistoryService) ListByPlant(ctx context.Context, plantId int64) ([]*dto.PhotoHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plant, err := uow.PlantRepository().FindOne(ctx, specification.ByID{ID: plantId})
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, apperror.NotFound("plant not found")
	}

	photos, err := uow.PhotoHistoryRepository().FindAll(ctx,
		specification.Filter("plant_id", plantId),
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.PhotoHistoryResponse, len(photos))
	for i, p := range photos {
		resp := photoToResponse(p)
		responses[i] = &resp
	}
	return responses, nil
}

func (s *photoHistoryService) FetchImage(ctx context.Context, plantId, photoId int64) (*dto.PhotoImageResponse, error) {
	photo, err := s.findForPlant(ctx, plantId, photoId)
	if err != nil {
		return nil, err
	}

	data, err := s.store.Read(photo.ImageLocation)
	if err != nil {
		if err == storage.ErrNotFound {
			// Dangling record: the file was removed out of band.
			return nil, apperror.NotFound("image file not found")
		}
		return nil, err
	}

	mimeType := mime.TypeByExtension(filepath.Ext(photo.ImageLocation))
	if mimeType == "" {
		mimeType = defaultImageMimeType
	}
	return &dto.PhotoImageResponse{Data: data, MimeType: mimeType}, nil
}

func (s *photoHistoryService) Delete(ctx context.Context, plantId, photoId int64) error {
	photo, err := s.findForPlant(ctx, plantId, photoId)
	if err != nil {
		return err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	// Notes referencing this photo get their photo_history_id nulled by
	// the FK constraint, never deleted.
	if err := uow.PhotoHistoryRepository().Delete(ctx, photoId); err != nil {
		return err
	}

	if err := s.store.Delete(photo.ImageLocation); err != nil {
		s.logger.Warn("photo_history", "failed to remove stored file", map[string]interface{}{
			"location": photo.ImageLocation,
			"error":    err.Error(),
		})
	}

	publishActivity(ctx, s.publisherService, s.logger, events.NewActivity(events.TypePhotoDeleted, map[string]interface{}{
		"plant_id":         plantId,
		"photo_history_id": photoId,
	}))
	return nil
}

func (s *photoHistoryService) findForPlant(ctx context.Context, plantId, photoId int64) (*entity.PhotoHistory, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plant, err := uow.PlantRepository().FindOne(ctx, specification.ByID{ID: plantId})
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, apperror.NotFound("plant not found")
	}

	photo, err := uow.PhotoHistoryRepository().FindOne(ctx,
		specification.ByID{ID: photoId},
		specification.Filter("plant_id", plantId),
	)
	if err != nil {
		return nil, err
	}
	if photo == nil {
		return nil, apperror.NotFound("photo history not found")
	}
	return photo, nil
}
