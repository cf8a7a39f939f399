package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"brainstorm/internal/model"
	"brainstorm/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxArchiveLimit = 100

type ArchiveHandler struct {
	store ArchiveStore
	log   *zap.Logger
}

func NewArchiveHandler(store ArchiveStore, log *zap.Logger) *ArchiveHandler {
	return &ArchiveHandler{store: store, log: log}
}

type ArchivedNoteResponse struct {
	NoteID     string `json:"note_id"`
	Text       string `json:"text"`
	AuthorName string `json:"author_name"`
	Score      int    `json:"score"`
	Rank       int    `json:"rank"`
}

type ArchiveResponse struct {
	ID                string                 `json:"id"`
	ParticipantsCount int                    `json:"participants_count"`
	NotesCount        int                    `json:"notes_count"`
	FinishedAt        string                 `json:"finished_at"`
	Results           []ArchivedNoteResponse `json:"results"`
}

func toArchiveResponse(a model.BoardArchive) ArchiveResponse {
	resp := ArchiveResponse{
		ID:                a.ID.String(),
		ParticipantsCount: a.ParticipantsCount,
		NotesCount:        a.NotesCount,
		FinishedAt:        a.FinishedAt.UTC().Format(time.RFC3339),
		Results:           make([]ArchivedNoteResponse, len(a.Results)),
	}
	for i, n := range a.Results {
		resp.Results[i] = ArchivedNoteResponse{
			NoteID:     n.NoteID,
			Text:       n.Text,
			AuthorName: n.AuthorName,
			Score:      n.Score,
			Rank:       n.Rank,
		}
	}
	return resp
}

// GetRecent lists the latest finished boards
func (h *ArchiveHandler) GetRecent(c *gin.Context) {
	limit := repository.DefaultArchiveLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxArchiveLimit {
			badRequest(c, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	archives, err := h.store.GetRecent(c.Request.Context(), limit)
	if err != nil {
		h.log.Error("failed to list archives", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve archives"})
		return
	}

	response := make([]ArchiveResponse, len(archives))
	for i, a := range archives {
		response[i] = toArchiveResponse(a)
	}
	c.JSON(http.StatusOK, response)
}

// GetByID returns one archived board
func (h *ArchiveHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid archive ID format")
		return
	}

	archive, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrArchiveNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Archive not found"})
			return
		}
		h.log.Error("failed to retrieve archive", zap.Error(err), zap.String("archive_id", id.String()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve archive"})
		return
	}

	c.JSON(http.StatusOK, toArchiveResponse(*archive))
}
