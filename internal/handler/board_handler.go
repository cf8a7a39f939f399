package handler

import (
	"context"
	"net/http"
	"time"

	"brainstorm/internal/board"
	"brainstorm/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ArchiveStore records and reads the results of finished boards.
type ArchiveStore interface {
	Create(ctx context.Context, archive *model.BoardArchive) error
	GetRecent(ctx context.Context, limit int) ([]model.BoardArchive, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.BoardArchive, error)
}

type BoardHandler struct {
	board   *board.Board
	archive ArchiveStore
	log     *zap.Logger
}

func NewBoardHandler(b *board.Board, archive ArchiveStore, log *zap.Logger) *BoardHandler {
	return &BoardHandler{
		board:   b,
		archive: archive,
		log:     log,
	}
}

type JoinRequest struct {
	Name        string `json:"name" binding:"required"`
	IsOrganizer *bool  `json:"is_organizer" binding:"required"`
}

type AddStickyRequest struct {
	Name string   `json:"name" binding:"required"`
	Text string   `json:"text" binding:"required"`
	X    *float64 `json:"x" binding:"required"`
	Y    *float64 `json:"y" binding:"required"`
}

type MoveStickyRequest struct {
	Name string   `json:"name" binding:"required"`
	X    *float64 `json:"x" binding:"required"`
	Y    *float64 `json:"y" binding:"required"`
}

type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

type PhaseRequest struct {
	Name  string `json:"name" binding:"required"`
	Phase string `json:"phase" binding:"required"`
}

type VoteRequest struct {
	Name     string `json:"name" binding:"required"`
	StickyID string `json:"sticky_id" binding:"required"`
	Points   *int   `json:"points" binding:"required"`
}

type StatusResponse struct {
	Phase             string `json:"phase"`
	ParticipantsCount int    `json:"participants_count"`
	NotesCount        int    `json:"notes_count"`
	VotesCount        int    `json:"votes_count"`
}

type ParticipantResponse struct {
	Name        string `json:"name"`
	IsOrganizer bool   `json:"is_organizer"`
	Color       string `json:"color"`
}

type StickyResponse struct {
	ID         string  `json:"id"`
	Text       string  `json:"text"`
	AuthorName string  `json:"author_name"`
	Color      string  `json:"color"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	CreatedAt  string  `json:"created_at"`
}

type BoardResponse struct {
	Phase        string                    `json:"phase"`
	Participants []ParticipantResponse     `json:"participants"`
	Stickies     []StickyResponse          `json:"stickies"`
	Votes        map[string]map[string]int `json:"votes"`
	Scores       map[string]int            `json:"scores"`
}

type ResetResponse struct {
	Status     string `json:"status"`
	AccessCode string `json:"access_code"`
}

func toParticipantResponse(p model.Participant) ParticipantResponse {
	return ParticipantResponse{
		Name:        p.Name,
		IsOrganizer: p.IsOrganizer,
		Color:       p.Color,
	}
}

func toStickyResponse(n model.Note) StickyResponse {
	return StickyResponse{
		ID:         n.ID,
		Text:       n.Text,
		AuthorName: n.AuthorName,
		Color:      n.Color,
		X:          n.X,
		Y:          n.Y,
		CreatedAt:  n.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// Status returns phase and collection sizes
func (h *BoardHandler) Status(c *gin.Context) {
	s := h.board.Status()
	c.JSON(http.StatusOK, StatusResponse{
		Phase:             s.Phase.String(),
		ParticipantsCount: s.ParticipantsCount,
		NotesCount:        s.NotesCount,
		VotesCount:        s.VotesCount,
	})
}

// Join adds a participant to the board
func (h *BoardHandler) Join(c *gin.Context) {
	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindingMessage(err))
		return
	}

	participant, err := h.board.Join(req.Name, *req.IsOrganizer)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Info("participant joined", zap.String("name", participant.Name), zap.Bool("organizer", participant.IsOrganizer))
	c.JSON(http.StatusOK, toParticipantResponse(participant))
}

// Board returns the full board snapshot
func (h *BoardHandler) Board(c *gin.Context) {
	snap := h.board.Snapshot()

	response := BoardResponse{
		Phase:        snap.Phase.String(),
		Participants: make([]ParticipantResponse, len(snap.Participants)),
		Stickies:     make([]StickyResponse, len(snap.Notes)),
		Votes:        snap.Votes,
		Scores:       snap.Scores,
	}
	for i, p := range snap.Participants {
		response.Participants[i] = toParticipantResponse(p)
	}
	for i, n := range snap.Notes {
		response.Stickies[i] = toStickyResponse(n)
	}

	c.JSON(http.StatusOK, response)
}

// AddSticky creates a note for the named participant
func (h *BoardHandler) AddSticky(c *gin.Context) {
	var req AddStickyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindingMessage(err))
		return
	}

	note, err := h.board.AddNote(req.Name, req.Text, *req.X, *req.Y)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, toStickyResponse(note))
}

// MoveSticky repositions a note. The caller must have joined the board.
func (h *BoardHandler) MoveSticky(c *gin.Context) {
	var req MoveStickyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindingMessage(err))
		return
	}

	if !h.board.HasParticipant(req.Name) {
		badRequest(c, "unknown participant")
		return
	}

	if err := h.board.MoveNote(c.Param("id"), *req.X, *req.Y); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "moved"})
}

// DeleteSticky removes a note owned by the caller
func (h *BoardHandler) DeleteSticky(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindingMessage(err))
		return
	}

	if err := h.board.DeleteNote(c.Param("id"), req.Name); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ChangePhase moves the board forward. Reaching FINISHED archives the results.
func (h *BoardHandler) ChangePhase(c *gin.Context) {
	var req PhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindingMessage(err))
		return
	}

	next, err := model.ParsePhase(req.Phase)
	if err != nil {
		badRequest(c, "invalid phase")
		return
	}

	changed, err := h.board.AdvancePhase(req.Name, next)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if changed {
		h.log.Info("phase changed", zap.String("phase", next.String()), zap.String("by", req.Name))
		if next == model.PhaseFinished {
			h.archiveResults(c.Request.Context())
		}
	}

	c.JSON(http.StatusOK, gin.H{"phase": h.board.Phase().String()})
}

// archiveResults stores the ranked notes. A failing archive never fails the
// phase change.
func (h *BoardHandler) archiveResults(ctx context.Context) {
	status := h.board.Status()
	results := h.board.Results()

	archive := &model.BoardArchive{
		ParticipantsCount: status.ParticipantsCount,
		NotesCount:        status.NotesCount,
		FinishedAt:        time.Now().UTC(),
		Results:           make([]model.ArchivedNote, len(results)),
	}
	for i, r := range results {
		archive.Results[i] = model.ArchivedNote{
			NoteID:     r.Note.ID,
			Text:       r.Note.Text,
			AuthorName: r.Note.AuthorName,
			Score:      r.Score,
			Rank:       r.Rank,
		}
	}

	if err := h.archive.Create(ctx, archive); err != nil {
		h.log.Error("failed to archive board results", zap.Error(err))
		return
	}
	h.log.Info("board results archived", zap.String("archive_id", archive.ID.String()), zap.Int("notes", len(results)))
}

// Vote sets the caller's points on a note
func (h *BoardHandler) Vote(c *gin.Context) {
	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindingMessage(err))
		return
	}

	if err := h.board.SetVote(req.Name, req.StickyID, *req.Points); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Reset clears the board and returns the new access code
func (h *BoardHandler) Reset(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, bindingMessage(err))
		return
	}

	if err := h.board.Reset(req.Name); err != nil {
		respondError(c, h.log, err)
		return
	}

	h.log.Info("board reset", zap.String("by", req.Name))
	c.JSON(http.StatusOK, ResetResponse{
		Status:     "reset",
		AccessCode: h.board.AccessCode(),
	})
}
