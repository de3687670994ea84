package quota

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kkkk66/GROWit/internal/shared/server/middleware"
	"github.com/kkkk66/GROWit/internal/shared/server/respond"
)

// Handler exposes shared-tier usage introspection.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches usage routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/usage", h.getUsage)
}

func (h *Handler) getUsage(c *gin.Context) {
	clientID := middleware.ClientIDFromContext(c)

	counter, err := h.Svc.Get(c.Request.Context(), clientID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch usage", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"count":     counter.Count,
		"date":      counter.Date,
		"limit":     h.Svc.Limit(),
		"remaining": Remaining(counter, counter.Date, h.Svc.Limit()),
	})
}
