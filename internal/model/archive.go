package model

import (
	"time"

	"github.com/google/uuid"
)

// BoardArchive is the stored outcome of a board that reached FINISHED.
type BoardArchive struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParticipantsCount int       `gorm:"not null"`
	NotesCount        int       `gorm:"not null"`
	FinishedAt        time.Time `gorm:"not null;index"`

	Results []ArchivedNote `gorm:"foreignKey:ArchiveID"`
}

// ArchivedNote is one ranked sticky inside a BoardArchive.
type ArchivedNote struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ArchiveID  uuid.UUID `gorm:"type:uuid;not null;index"`
	NoteID     string    `gorm:"not null"`
	Text       string    `gorm:"not null"`
	AuthorName string    `gorm:"not null"`
	Score      int       `gorm:"not null"`
	Rank       int       `gorm:"not null"`
}
