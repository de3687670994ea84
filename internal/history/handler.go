package history

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kkkk66/GROWit/internal/shared/server/middleware"
	"github.com/kkkk66/GROWit/internal/shared/server/respond"
)

// Handler exposes the generation log.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches history routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/history", h.listHistory)
	rg.DELETE("/history", h.clearHistory)
}

func (h *Handler) listHistory(c *gin.Context) {
	clientID := middleware.ClientIDFromContext(c)

	entries, err := h.Repo.List(c.Request.Context(), clientID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch history", nil)
		return
	}
	if entries == nil {
		entries = []Entry{}
	}

	respond.JSON(c, http.StatusOK, gin.H{"entries": entries})
}

func (h *Handler) clearHistory(c *gin.Context) {
	clientID := middleware.ClientIDFromContext(c)

	if err := h.Repo.Clear(c.Request.Context(), clientID); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to clear history", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"cleared": true})
}
