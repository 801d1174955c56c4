package implementation_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"plant-hub-be/internal/entity"
	"plant-hub-be/internal/model"
	"plant-hub-be/internal/repository/implementation"
	"plant-hub-be/internal/repository/specification"

	_ "github.com/ncruces/go-sqlite3/embed"
	sqlite "github.com/ncruces/go-sqlite3/gormlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "plants.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Plant{}, &model.PhotoHistory{}, &model.Note{}))
	return db
}

func seedPlant(t *testing.T, db *gorm.DB, nickname, species string) *entity.Plant {
	t.Helper()
	plant := &entity.Plant{
		Nickname:  nickname,
		Species:   species,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, implementation.NewPlantRepository(db).Create(context.Background(), plant))
	require.NotZero(t, plant.Id)
	return plant
}

func seedPhoto(t *testing.T, db *gorm.DB, plantId int64, capturedAt time.Time) *entity.PhotoHistory {
	t.Helper()
	photo := &entity.PhotoHistory{
		PlantId:       plantId,
		ImageLocation: "histories/test.jpg",
		CreatedAt:     capturedAt,
	}
	require.NoError(t, implementation.NewPhotoHistoryRepository(db).Create(context.Background(), photo))
	return photo
}

func seedNote(t *testing.T, db *gorm.DB, note *entity.Note) *entity.Note {
	t.Helper()
	require.NoError(t, implementation.NewNoteRepository(db).Create(context.Background(), note))
	return note
}

func timePtr(t time.Time) *time.Time { return &t }

func TestPlantCreateFindRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := implementation.NewPlantRepository(db)
	ctx := context.Background()

	created := seedPlant(t, db, "fernando", "Boston fern")

	found, err := repo.FindOne(ctx, specification.ByID{ID: created.Id})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "fernando", found.Nickname)
	assert.Equal(t, "Boston fern", found.Species)

	missing, err := repo.FindOne(ctx, specification.ByID{ID: created.Id + 100})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPlantNicknameUnique(t *testing.T) {
	db := newTestDB(t)
	repo := implementation.NewPlantRepository(db)
	ctx := context.Background()

	seedPlant(t, db, "monty", "Monstera deliciosa")

	err := repo.Create(ctx, &entity.Plant{
		Nickname:  "monty",
		Species:   "Monstera adansonii",
		CreatedAt: time.Now().UTC(),
	})
	assert.Error(t, err)
}

func TestFindAllRankedOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := implementation.NewPlantRepository(db)
	ctx := context.Background()

	jan5 := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	jan10 := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	jan15 := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	feb1 := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	basil := seedPlant(t, db, "basil", "Ocimum basilicum")
	monstera := seedPlant(t, db, "monty", "Monstera deliciosa")
	cactus := seedPlant(t, db, "spike", "Echinocactus grusonii")
	fern := seedPlant(t, db, "fernando", "Boston fern")
	aloe := seedPlant(t, db, "vera", "Aloe vera")
	seedPlant(t, db, "poison", "Hedera helix")

	seedNote(t, db, &entity.Note{PlantId: basil.Id, Content: "water", DueDate: timePtr(jan10)})
	seedNote(t, db, &entity.Note{PlantId: monstera.Id, Content: "repot", DueDate: timePtr(jan5)})
	// Completed notes never contribute to the due ordering, even with
	// an earlier due date.
	seedNote(t, db, &entity.Note{
		PlantId:     monstera.Id,
		Content:     "fertilize",
		DueDate:     timePtr(jan5.AddDate(0, 0, -4)),
		CompletedAt: timePtr(time.Now().UTC()),
	})
	// An incomplete note without a due date flags the plant but does
	// not move it into the dated group.
	seedNote(t, db, &entity.Note{PlantId: aloe.Id, Content: "check for pests"})

	seedPhoto(t, db, cactus.Id, jan15)
	seedPhoto(t, db, cactus.Id, feb1)
	seedPhoto(t, db, fern.Id, jan15)

	ranked, err := repo.FindAllRanked(ctx)
	require.NoError(t, err)
	require.Len(t, ranked, 6)

	var nicknames []string
	for _, r := range ranked {
		nicknames = append(nicknames, r.Nickname)
	}
	assert.Equal(t, []string{"monty", "basil", "spike", "fernando", "vera", "poison"}, nicknames)

	require.NotNil(t, ranked[0].NextDueDate)
	assert.WithinDuration(t, jan5, *ranked[0].NextDueDate, time.Second)
	assert.True(t, ranked[0].HasIncompleteNotes)

	require.NotNil(t, ranked[1].NextDueDate)
	assert.WithinDuration(t, jan10, *ranked[1].NextDueDate, time.Second)

	assert.Nil(t, ranked[2].NextDueDate)
	require.NotNil(t, ranked[2].LastPhotoAt)
	assert.WithinDuration(t, feb1, *ranked[2].LastPhotoAt, time.Second)
	assert.False(t, ranked[2].HasIncompleteNotes)

	assert.Nil(t, ranked[4].NextDueDate)
	assert.Nil(t, ranked[4].LastPhotoAt)
	assert.True(t, ranked[4].HasIncompleteNotes)

	assert.False(t, ranked[5].HasIncompleteNotes)
}

func TestDeletePlantCascades(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	plantRepo := implementation.NewPlantRepository(db)
	photoRepo := implementation.NewPhotoHistoryRepository(db)
	noteRepo := implementation.NewNoteRepository(db)

	plant := seedPlant(t, db, "goner", "Ficus lyrata")
	photo := seedPhoto(t, db, plant.Id, time.Now().UTC())
	seedNote(t, db, &entity.Note{PlantId: plant.Id, Content: "mist leaves", PhotoHistoryId: &photo.Id})

	require.NoError(t, plantRepo.Delete(ctx, plant.Id))

	photoCount, err := photoRepo.Count(ctx, specification.Filter("plant_id", plant.Id))
	require.NoError(t, err)
	assert.Zero(t, photoCount)

	noteCount, err := noteRepo.Count(ctx, specification.Filter("plant_id", plant.Id))
	require.NoError(t, err)
	assert.Zero(t, noteCount)
}

func TestDeletePhotoDetachesNotes(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	photoRepo := implementation.NewPhotoHistoryRepository(db)
	noteRepo := implementation.NewNoteRepository(db)

	plant := seedPlant(t, db, "keeper", "Calathea orbifolia")
	photo := seedPhoto(t, db, plant.Id, time.Now().UTC())
	note := seedNote(t, db, &entity.Note{PlantId: plant.Id, Content: "new leaf", PhotoHistoryId: &photo.Id})

	require.NoError(t, photoRepo.Delete(ctx, photo.Id))

	found, err := noteRepo.FindOne(ctx, specification.ByID{ID: note.Id})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Nil(t, found.PhotoHistoryId)
	assert.Equal(t, "new leaf", found.Content)
}

func TestNoteUpdatePersistsClearedFields(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	noteRepo := implementation.NewNoteRepository(db)

	plant := seedPlant(t, db, "clearing", "Pilea peperomioides")
	photo := seedPhoto(t, db, plant.Id, time.Now().UTC())
	note := seedNote(t, db, &entity.Note{
		PlantId:        plant.Id,
		Content:        "rotate pot",
		PhotoHistoryId: &photo.Id,
		DueDate:        timePtr(time.Now().UTC().AddDate(0, 0, 7)),
		CompletedAt:    timePtr(time.Now().UTC()),
	})

	note.Content = "rotate pot weekly"
	note.PhotoHistoryId = nil
	note.DueDate = nil
	note.CompletedAt = nil
	require.NoError(t, noteRepo.Update(ctx, note))

	found, err := noteRepo.FindOne(ctx, specification.ByID{ID: note.Id})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "rotate pot weekly", found.Content)
	assert.Nil(t, found.PhotoHistoryId)
	assert.Nil(t, found.DueDate)
	assert.Nil(t, found.CompletedAt)
}

func TestNoteDueDateRangeSpecifications(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	noteRepo := implementation.NewNoteRepository(db)

	plant := seedPlant(t, db, "scheduled", "Sansevieria trifasciata")
	jan1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	jan15 := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	feb1 := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	seedNote(t, db, &entity.Note{PlantId: plant.Id, Content: "early", DueDate: timePtr(jan1)})
	mid := seedNote(t, db, &entity.Note{PlantId: plant.Id, Content: "mid", DueDate: timePtr(jan15)})
	seedNote(t, db, &entity.Note{PlantId: plant.Id, Content: "late", DueDate: timePtr(feb1)})

	notes, err := noteRepo.FindAll(ctx,
		specification.Filter("plant_id", plant.Id),
		specification.DueFrom{Time: jan1.AddDate(0, 0, 9)},
		specification.DueTo{Time: jan1.AddDate(0, 0, 19)},
	)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, mid.Id, notes[0].Id)
}
