package handler

import (
	"errors"
	"net/http"

	"brainstorm/internal/board"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errorStatus = []struct {
	err    error
	status int
}{
	{board.ErrNameAlreadyExists, http.StatusConflict},
	{board.ErrNotFound, http.StatusNotFound},
	{board.ErrNotOrganizer, http.StatusForbidden},
	{board.ErrNotAuthor, http.StatusForbidden},
	{board.ErrInvalidPhaseTransition, http.StatusBadRequest},
	{board.ErrForbiddenInPhase, http.StatusForbidden},
	{board.ErrVoteLimitExceeded, http.StatusBadRequest},
	{board.ErrNoteTextTooLong, http.StatusBadRequest},
	{board.ErrStickyLimitExceeded, http.StatusBadRequest},
}

// respondError writes the status and message for a board error. Anything
// outside the board taxonomy is logged and reported as a 500.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	for _, e := range errorStatus {
		if errors.Is(err, e.err) {
			c.JSON(e.status, gin.H{"error": e.err.Error()})
			return
		}
	}

	_ = c.Error(err)
	log.Error("unexpected board error", zap.Error(err), zap.String("path", c.FullPath()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}
