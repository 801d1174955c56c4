package unitofwork

import (
	"context"

	"plant-hub-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	PlantRepository() contract.PlantRepository
	PhotoHistoryRepository() contract.PhotoHistoryRepository
	NoteRepository() contract.NoteRepository
}
