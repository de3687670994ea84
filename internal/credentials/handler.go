package credentials

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kkkk66/GROWit/internal/shared/server/middleware"
	"github.com/kkkk66/GROWit/internal/shared/server/respond"
)

// Handler exposes user-supplied API key management.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches credential routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings/api-key", h.getAPIKey)
	rg.PUT("/settings/api-key", h.setAPIKey)
	rg.DELETE("/settings/api-key", h.clearAPIKey)
}

func (h *Handler) getAPIKey(c *gin.Context) {
	clientID := middleware.ClientIDFromContext(c)

	apiKey, err := h.Svc.Get(c.Request.Context(), clientID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch API key", nil)
		return
	}

	resp := gin.H{"configured": apiKey != ""}
	if apiKey != "" {
		resp["maskedKey"] = Mask(apiKey)
	}
	respond.JSON(c, http.StatusOK, resp)
}

type setAPIKeyRequest struct {
	APIKey string `json:"apiKey"`
}

func (h *Handler) setAPIKey(c *gin.Context) {
	clientID := middleware.ClientIDFromContext(c)

	var req setAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.APIKey) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "apiKey is required", nil)
		return
	}

	if err := h.Svc.Set(c.Request.Context(), clientID, req.APIKey); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save API key", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"configured": true})
}

func (h *Handler) clearAPIKey(c *gin.Context) {
	clientID := middleware.ClientIDFromContext(c)

	if err := h.Svc.Clear(c.Request.Context(), clientID); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to clear API key", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"configured": false})
}
