package repository

import (
	"context"

	"brainstorm/internal/model"

	"github.com/google/uuid"
)

// DisabledArchive stands in for ArchiveRepository when no database is
// configured: writes are dropped and reads come back empty.
type DisabledArchive struct{}

func (DisabledArchive) Create(context.Context, *model.BoardArchive) error { return nil }

func (DisabledArchive) GetRecent(context.Context, int) ([]model.BoardArchive, error) {
	return []model.BoardArchive{}, nil
}

func (DisabledArchive) GetByID(context.Context, uuid.UUID) (*model.BoardArchive, error) {
	return nil, ErrArchiveNotFound
}
