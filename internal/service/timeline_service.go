package service

import (
	"context"
	"sort"

	"plant-hub-be/internal/apperror"
	"plant-hub-be/internal/dto"
	"plant-hub-be/internal/entity"
	"plant-hub-be/internal/repository/specification"
	"plant-hub-be/internal/repository/unitofwork"
	"plant-hub-be/pkg/timeutil"
)

type ITimelineService interface {
	GetTimeline(ctx context.Context, q *dto.TimelineQuery) ([]*dto.TimelineItem, error)
}

type timelineService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewTimelineService(uowFactory unitofwork.RepositoryFactory) ITimelineService {
	return &timelineService{
		uowFactory: uowFactory,
	}
}

func (s *timelineService) GetTimeline(ctx context.Context, q *dto.TimelineQuery) ([]*dto.TimelineItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	plant, err := uow.PlantRepository().FindOne(ctx, specification.ByID{ID: q.PlantId})
	if err != nil {
		return nil, err
	}
	if plant == nil {
		return nil, apperror.NotFound("plant not found")
	}

	specs := []specification.Specification{specification.Filter("plant_id", q.PlantId)}
	if q.CreatedFrom != "" {
		t, ok := timeutil.ParseISO(q.CreatedFrom)
		if !ok {
			return nil, apperror.Validation("created_from must be an ISO datetime string")
		}
		specs = append(specs, specification.CreatedFrom{Time: t})
	}
	if q.CreatedTo != "" {
		t, ok := timeutil.ParseISO(q.CreatedTo)
		if !ok {
			return nil, apperror.Validation("created_to must be an ISO datetime string")
		}
		specs = append(specs, specification.CreatedTo{Time: t})
	}
	specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})

	photos, err := uow.PhotoHistoryRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	notes, err := uow.NoteRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	return MergeTimeline(photos, notes), nil
}

// MergeTimeline interleaves photos and notes newest-first. A note whose
// referenced photo is in the filtered set rides along under that photo;
// every other note (including notes whose photo fell out of the date
// range) becomes a standalone item. Ties keep photos before notes.
func MergeTimeline(photos []*entity.PhotoHistory, notes []*entity.Note) []*dto.TimelineItem {
	photoIds := make(map[int64]bool, len(photos))
	for _, p := range photos {
		photoIds[p.Id] = true
	}

	notesByPhoto := make(map[int64][]dto.NoteResponse)
	var standalone []*entity.Note
	for _, n := range notes {
		if n.PhotoHistoryId != nil && photoIds[*n.PhotoHistoryId] {
			notesByPhoto[*n.PhotoHistoryId] = append(notesByPhoto[*n.PhotoHistoryId], noteToResponse(n))
		} else {
			standalone = append(standalone, n)
		}
	}

	items := make([]*dto.TimelineItem, 0, len(photos)+len(standalone))
	for _, p := range photos {
		resp := photoToResponse(p)
		notes := notesByPhoto[p.Id]
		if notes == nil {
			// Every item serializes "notes" as an array, never null.
			notes = []dto.NoteResponse{}
		}
		items = append(items, &dto.TimelineItem{
			Kind:         dto.TimelineKindPhoto,
			CreatedAt:    p.CreatedAt,
			PhotoHistory: &resp,
			Notes:        notes,
		})
	}
	for _, n := range standalone {
		resp := noteToResponse(n)
		items = append(items, &dto.TimelineItem{
			Kind:      dto.TimelineKindNote,
			CreatedAt: n.CreatedAt,
			Notes:     []dto.NoteResponse{},
			Note:      &resp,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items
}
