package repository

import (
	"context"
	"errors"
	"fmt"

	"brainstorm/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const DefaultArchiveLimit = 20

type ArchiveRepository struct {
	db *gorm.DB
}

func NewArchiveRepository(db *gorm.DB) *ArchiveRepository {
	return &ArchiveRepository{db: db}
}

// Migrate creates or updates the archive tables.
func (r *ArchiveRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&model.BoardArchive{}, &model.ArchivedNote{}); err != nil {
		return fmt.Errorf("migrate archive tables: %w", err)
	}
	return nil
}

// Create stores a finished board and its ranked notes in one transaction.
func (r *ArchiveRepository) Create(ctx context.Context, archive *model.BoardArchive) error {
	if archive.ID == uuid.Nil {
		archive.ID = uuid.New()
	}
	for i := range archive.Results {
		if archive.Results[i].ID == uuid.Nil {
			archive.Results[i].ID = uuid.New()
		}
		archive.Results[i].ArchiveID = archive.ID
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(archive).Error; err != nil {
			return err
		}
		if len(archive.Results) == 0 {
			return nil
		}
		return tx.Create(&archive.Results).Error
	})
}

// GetRecent returns the latest archives, newest first, with their notes in
// rank order.
func (r *ArchiveRepository) GetRecent(ctx context.Context, limit int) ([]model.BoardArchive, error) {
	if limit <= 0 {
		limit = DefaultArchiveLimit
	}

	var archives []model.BoardArchive
	err := r.db.WithContext(ctx).
		Preload("Results", func(db *gorm.DB) *gorm.DB { return db.Order("rank") }).
		Order("finished_at desc").
		Limit(limit).
		Find(&archives).Error
	return archives, err
}

func (r *ArchiveRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.BoardArchive, error) {
	var archive model.BoardArchive
	err := r.db.WithContext(ctx).
		Preload("Results", func(db *gorm.DB) *gorm.DB { return db.Order("rank") }).
		Where("id = ?", id).
		First(&archive).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrArchiveNotFound
	}
	if err != nil {
		return nil, err
	}
	return &archive, nil
}
