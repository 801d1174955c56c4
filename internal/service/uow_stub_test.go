package service

import (
	"context"
	"sync"

	"plant-hub-be/internal/repository/contract"
	"plant-hub-be/internal/repository/specification"
	"plant-hub-be/internal/repository/unitofwork"
)

// uowOverride wraps a real unit of work so single calls can be bent in
// tests; everything else delegates to the embedded implementation.
type uowOverride struct {
	unitofwork.UnitOfWork
	plants    contract.PlantRepository
	commitErr error
}

func (u *uowOverride) PlantRepository() contract.PlantRepository {
	if u.plants != nil {
		return u.plants
	}
	return u.UnitOfWork.PlantRepository()
}

func (u *uowOverride) Commit() error {
	if u.commitErr != nil {
		_ = u.UnitOfWork.Commit()
		return u.commitErr
	}
	return u.UnitOfWork.Commit()
}

type uowOverrideFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *uowOverrideFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// staleCountPlantRepository reports an empty first Count, simulating a
// concurrent insert landing between the pre-check and the insert.
type staleCountPlantRepository struct {
	contract.PlantRepository
	once sync.Once
}

func (r *staleCountPlantRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	stale := false
	r.once.Do(func() { stale = true })
	if stale {
		return 0, nil
	}
	return r.PlantRepository.Count(ctx, specs...)
}

// recordingLogger captures warnings so tests can assert on them.
type recordingLogger struct {
	warns []string
}

func (l *recordingLogger) Debug(module, message string, details map[string]interface{}) {}
func (l *recordingLogger) Info(module, message string, details map[string]interface{})  {}
func (l *recordingLogger) Warn(module, message string, details map[string]interface{}) {
	l.warns = append(l.warns, message)
}
func (l *recordingLogger) Error(module, message string, details map[string]interface{}) {}

func (l *recordingLogger) Sync() error { return nil }
