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
	"plant-hub-be/pkg/timeutil"
)

type INoteService interface {
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	ListByPlant(ctx context.Context, plantId int64, q *dto.ListNotesQuery) ([]*dto.NoteResponse, error)
	ListAll(ctx context.Context, q *dto.ListNotesQuery) ([]*dto.NoteResponse, error)
	Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, plantId, noteId int64) error
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	photoService     IPhotoHistoryService
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	photoService IPhotoHistoryService,
	publisherService IPublisherService,
	log logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		photoService:     photoService,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plant, err := uow.PlantRepository().FindOne(ctx, specification.ByID{ID: req.PlantId})
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, apperror.NotFound("plant not found")
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperror.Validation("content is required")
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		t, ok := timeutil.ParseISO(req.DueDate)
		if !ok {
			return nil, apperror.Validation("due_date must be an ISO datetime string")
		}
		dueDate = &t
	}

	var photoHistoryId *int64
	if req.PhotoHistoryId != nil {
		photo, err := uow.PhotoHistoryRepository().FindOne(ctx,
			specification.ByID{ID: *req.PhotoHistoryId},
			specification.Filter("plant_id", req.PlantId),
		)
		if err != nil {
			return nil, err
		}
		if photo == nil {
			return nil, apperror.NotFound("photo history not found")
		}
		photoHistoryId = &photo.Id
	}

	// An inline image upload becomes a fresh photo history the note
	// attaches to, going through the full ingestion pipeline.
	if len(req.ImageData) > 0 && req.ImageName != "" {
		created, err := s.photoService.Create(ctx, &dto.CreatePhotoHistoryRequest{
			PlantId:    req.PlantId,
			FileName:   req.ImageName,
			Data:       req.ImageData,
			ClientDate: req.ImageDate,
		})
		if err != nil {
			return nil, err
		}
		photoHistoryId = &created.Id
	}

	note := entity.Note{
		PlantId:        req.PlantId,
		PhotoHistoryId: photoHistoryId,
		Content:        content,
		DueDate:        dueDate,
		CreatedAt:      time.Now().UTC(),
	}
	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	publishActivity(ctx, s.publisherService, s.logger, events.NewActivity(events.TypeNoteCreated, map[string]interface{}{
		"plant_id": note.PlantId,
		"note_id":  note.Id,
	}))

	resp := noteToResponse(&note)
	return &resp, nil
}

func (s *noteService) ListByPlant(ctx context.Context, plantId int64, q *dto.ListNotesQuery) ([]*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plant, err := uow.PlantRepository().FindOne(ctx, specification.ByID{ID: plantId})
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, apperror.NotFound("plant not found")
	}

	scoped := *q
	scoped.PlantId = &plantId
	return s.list(ctx, &scoped)
}

func (s *noteService) ListAll(ctx context.Context, q *dto.ListNotesQuery) ([]*dto.NoteResponse, error) {
	return s.list(ctx, q)
}

func (s *noteService) list(ctx context.Context, q *dto.ListNotesQuery) ([]*dto.NoteResponse, error) {
	specs, err := noteFilterSpecs(q)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.NoteResponse, len(notes))
	for i, n := range notes {
		resp := noteToResponse(n)
		responses[i] = &resp
	}
	return responses, nil
}

// noteFilterSpecs converts the listing filters to query specifications,
// rejecting malformed datetime strings.
func noteFilterSpecs(q *dto.ListNotesQuery) ([]specification.Specification, error) {
	var specs []specification.Specification
	if q.PlantId != nil {
		specs = append(specs, specification.Filter("plant_id", *q.PlantId))
	}

	bounds := []struct {
		value string
		field string
		build func(time.Time) specification.Specification
	}{
		{q.CreatedFrom, "created_from", func(t time.Time) specification.Specification { return specification.CreatedFrom{Time: t} }},
		{q.CreatedTo, "created_to", func(t time.Time) specification.Specification { return specification.CreatedTo{Time: t} }},
		{q.DueFrom, "due_from", func(t time.Time) specification.Specification { return specification.DueFrom{Time: t} }},
		{q.DueTo, "due_to", func(t time.Time) specification.Specification { return specification.DueTo{Time: t} }},
	}
	for _, b := range bounds {
		if b.value == "" {
			continue
		}
		t, ok := timeutil.ParseISO(b.value)
		if !ok {
			return nil, apperror.Validation(b.field + " must be an ISO datetime string")
		}
		specs = append(specs, b.build(t))
	}

	specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})
	return specs, nil
}

func (s *noteService) Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plant, err := uow.PlantRepository().FindOne(ctx, specification.ByID{ID: req.PlantId})
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, apperror.NotFound("plant not found")
	}

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: req.NoteId},
		specification.Filter("plant_id", req.PlantId),
	)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperror.NotFound("note not found")
	}

	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			return nil, apperror.Validation("content must be a non-empty string")
		}
		note.Content = content
	}

	if req.ClearDueDate {
		note.DueDate = nil
	} else if req.DueDate != nil {
		t, ok := timeutil.ParseISO(*req.DueDate)
		if !ok {
			return nil, apperror.Validation("due_date must be an ISO datetime string")
		}
		note.DueDate = &t
	}

	if req.ClearPhoto {
		note.PhotoHistoryId = nil
	} else if req.PhotoHistoryId != nil {
		photo, err := uow.PhotoHistoryRepository().FindOne(ctx,
			specification.ByID{ID: *req.PhotoHistoryId},
			specification.Filter("plant_id", req.PlantId),
		)
		if err != nil {
			return nil, err
		}
		if photo == nil {
			return nil, apperror.NotFound("photo history not found")
		}
		note.PhotoHistoryId = &photo.Id
	}

	if req.ClearCompletedAt {
		note.CompletedAt = nil
	} else if req.Complete {
		now := time.Now().UTC()
		note.CompletedAt = &now
	}

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	publishActivity(ctx, s.publisherService, s.logger, events.NewActivity(events.TypeNoteUpdated, map[string]interface{}{
		"plant_id": note.PlantId,
		"note_id":  note.Id,
	}))

	resp := noteToResponse(note)
	return &resp, nil
}

func (s *noteService) Delete(ctx context.Context, plantId, noteId int64) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plant, err := uow.PlantRepository().FindOne(ctx, specification.ByID{ID: plantId})
	if err != nil {
		return err
	}
	if plant == nil {
		return apperror.NotFound("plant not found")
	}

	note, err := uow.NoteRepository().FindOne(ctx,
		specification.ByID{ID: noteId},
		specification.Filter("plant_id", plantId),
	)
	if err != nil {
		return err
	}
	if note == nil {
		return apperror.NotFound("note not found")
	}

	if err := uow.NoteRepository().Delete(ctx, noteId); err != nil {
		return err
	}

	publishActivity(ctx, s.publisherService, s.logger, events.NewActivity(events.TypeNoteDeleted, map[string]interface{}{
		"plant_id": plantId,
		"note_id":  noteId,
	}))
	return nil
}
