package handler

import (
	"net/http"

	"brainstorm/internal/middleware"

	"github.com/gin-gonic/gin"
)

// PageHandler renders the HTML shells. The pages only carry the access code;
// all data is fetched from /api by the browser.
type PageHandler struct {
	codes middleware.AccessCodeSource
}

func NewPageHandler(codes middleware.AccessCodeSource) *PageHandler {
	return &PageHandler{codes: codes}
}

func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"AccessCode": h.codes.AccessCode()})
}

func (h *PageHandler) Board(c *gin.Context) {
	c.HTML(http.StatusOK, "board.html", gin.H{"AccessCode": h.codes.AccessCode()})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
