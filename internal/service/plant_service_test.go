package service

import (
	"context"
	"testing"

	"plant-hub-be/internal/apperror"
	"plant-hub-be/internal/dto"
	"plant-hub-be/internal/repository/implementation"
	"plant-hub-be/internal/repository/unitofwork"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlantCreateAndShow(t *testing.T) {
	db := newServiceDB(t)
	svc := NewPlantService(unitofwork.NewRepositoryFactory(db), nil, newTestLogger(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreatePlantRequest{
		Nickname: "  fernando ",
		Species:  "Boston fern",
	})
	require.NoError(t, err)
	assert.Equal(t, "fernando", created.Nickname)
	assert.Equal(t, "Boston fern", created.Species)
	assert.NotZero(t, created.Id)

	shown, err := svc.Show(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created.Nickname, shown.Nickname)
	assert.Equal(t, created.Species, shown.Species)
	assert.Empty(t, shown.PhotoHistories)
}

func TestPlantCreateDuplicateNickname(t *testing.T) {
	db := newServiceDB(t)
	svc := NewPlantService(unitofwork.NewRepositoryFactory(db), nil, newTestLogger(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreatePlantRequest{Nickname: "monty", Species: "Monstera deliciosa"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &dto.CreatePlantRequest{Nickname: "monty", Species: "Monstera adansonii"})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, "nickname already exists", appErr.Message)
}

func TestPlantCreateDuplicateNicknameRace(t *testing.T) {
	db := newServiceDB(t)
	ctx := context.Background()

	// The winner's row already exists, but the pre-check misses it.
	createPlant(t, db, "race")
	plants := &staleCountPlantRepository{
		PlantRepository: implementation.NewPlantRepository(db),
	}
	uow := &uowOverride{UnitOfWork: unitofwork.NewUnitOfWork(db), plants: plants}
	svc := NewPlantService(&uowOverrideFactory{uow: uow}, nil, newTestLogger(t))

	_, err := svc.Create(ctx, &dto.CreatePlantRequest{Nickname: "race", Species: "Tradescantia zebrina"})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, "nickname already exists", appErr.Message)
}

func TestPlantCreateBlankNickname(t *testing.T) {
	db := newServiceDB(t)
	svc := NewPlantService(unitofwork.NewRepositoryFactory(db), nil, newTestLogger(t))

	_, err := svc.Create(context.Background(), &dto.CreatePlantRequest{Nickname: "   ", Species: "x"})
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Equal(t, "nickname is required", appErr.Message)
}

func TestPlantShowIncludesPhotosNewestFirst(t *testing.T) {
	db := newServiceDB(t)
	plantSvc := NewPlantService(unitofwork.NewRepositoryFactory(db), nil, newTestLogger(t))
	photoSvc, _ := newPhotoService(t, db)
	ctx := context.Background()

	created, err := plantSvc.Create(ctx, &dto.CreatePlantRequest{Nickname: "shooter", Species: "Pilea"})
	require.NoError(t, err)

	older, err := photoSvc.Create(ctx, &dto.CreatePhotoHistoryRequest{
		PlantId:    created.Id,
		FileName:   "old.png",
		Data:       smallPNG(t),
		ClientDate: "2026-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	newer, err := photoSvc.Create(ctx, &dto.CreatePhotoHistoryRequest{
		PlantId:    created.Id,
		FileName:   "new.png",
		Data:       smallPNG(t),
		ClientDate: "2026-02-01T00:00:00Z",
	})
	require.NoError(t, err)

	shown, err := plantSvc.Show(ctx, created.Id)
	require.NoError(t, err)
	require.Len(t, shown.PhotoHistories, 2)
	assert.Equal(t, newer.Id, shown.PhotoHistories[0].Id)
	assert.Equal(t, older.Id, shown.PhotoHistories[1].Id)

	listed, err := plantSvc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Len(t, listed[0].PhotoHistories, 2)
	assert.Equal(t, newer.Id, listed[0].PhotoHistories[0].Id)
	require.NotNil(t, listed[0].LastPhotoAt)
}

func TestPlantDeleteMissing(t *testing.T) {
	db := newServiceDB(t)
	svc := NewPlantService(unitofwork.NewRepositoryFactory(db), nil, newTestLogger(t))

	err := svc.Delete(context.Background(), 12345)
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
}
