package implementation

import (
	"context"
	"errors"
	"sort"
	"time"

	"plant-hub-be/internal/entity"
	"plant-hub-be/internal/mapper"
	"plant-hub-be/internal/model"
	"plant-hub-be/internal/repository/contract"
	"plant-hub-be/internal/repository/specification"

	"gorm.io/gorm"
)

type PlantRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PlantMapper
}

func NewPlantRepository(db *gorm.DB) contract.PlantRepository {
	return &PlantRepositoryImpl{
		db:     db,
		mapper: mapper.NewPlantMapper(),
	}
}

func (r *PlantRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PlantRepositoryImpl) Create(ctx context.Context, plant *entity.Plant) error {
	m := r.mapper.ToModel(plant)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*plant = *r.mapper.ToEntity(m)
	return nil
}

func (r *PlantRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Plant{}, id).Error
}

func (r *PlantRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Plant, error) {
	var m model.Plant
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *PlantRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Plant, error) {
	var models []*model.Plant
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

// FindAllRanked annotates every plant with its soonest due date over
// incomplete notes and its most recent photo capture time, then orders
// by the key (next_due_date IS NULL, next_due_date ASC, last_photo_at
// IS NULL, last_photo_at DESC). Aggregation happens here rather than in
// SQL so the ordering is identical on postgres and sqlite.
func (r *PlantRepositoryImpl) FindAllRanked(ctx context.Context) ([]*entity.RankedPlant, error) {
	var plants []*model.Plant
	if err := r.db.WithContext(ctx).Order("id").Find(&plants).Error; err != nil {
		return nil, err
	}

	var notes []*model.Note
	if err := r.db.WithContext(ctx).
		Select("plant_id", "due_date").
		Where("completed_at IS NULL").
		Find(&notes).Error; err != nil {
		return nil, err
	}

	var photos []*model.PhotoHistory
	if err := r.db.WithContext(ctx).
		Select("plant_id", "created_at").
		Find(&photos).Error; err != nil {
		return nil, err
	}

	nextDue := make(map[int64]*time.Time)
	hasIncomplete := make(map[int64]bool)
	for _, n := range notes {
		hasIncomplete[n.PlantId] = true
		if n.DueDate == nil {
			continue
		}
		if cur := nextDue[n.PlantId]; cur == nil || n.DueDate.Before(*cur) {
			d := *n.DueDate
			nextDue[n.PlantId] = &d
		}
	}

	lastPhoto := make(map[int64]*time.Time)
	for _, p := range photos {
		if cur := lastPhoto[p.PlantId]; cur == nil || p.CreatedAt.After(*cur) {
			t := p.CreatedAt
			lastPhoto[p.PlantId] = &t
		}
	}

	ranked := make([]*entity.RankedPlant, len(plants))
	for i, p := range plants {
		ranked[i] = &entity.RankedPlant{
			Plant:              *r.mapper.ToEntity(p),
			NextDueDate:        nextDue[p.Id],
			LastPhotoAt:        lastPhoto[p.Id],
			HasIncompleteNotes: hasIncomplete[p.Id],
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if (a.NextDueDate != nil) != (b.NextDueDate != nil) {
			return a.NextDueDate != nil
		}
		if a.NextDueDate != nil && !a.NextDueDate.Equal(*b.NextDueDate) {
			return a.NextDueDate.Before(*b.NextDueDate)
		}
		if (a.LastPhotoAt != nil) != (b.LastPhotoAt != nil) {
			return a.LastPhotoAt != nil
		}
		if a.LastPhotoAt != nil && !a.LastPhotoAt.Equal(*b.LastPhotoAt) {
			return a.LastPhotoAt.After(*b.LastPhotoAt)
		}
		return false
	})
	return ranked, nil
}

func (r *PlantRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Plant{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
